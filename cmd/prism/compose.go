package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/render"
)

func newComposeCmd(flags *rootFlags) *cobra.Command {
	var showAttrs bool

	cmd := &cobra.Command{
		Use:   "compose <file>",
		Short: "Print the class string of every element in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := flags.loadDocument("compose", args[0])
			if err != nil {
				return err
			}
			log, err := flags.commandLogger(cmd, doc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, el := range doc.Elements {
				built := render.Build(el.Request())
				log.With("element", el.Name, "tokens", len(built.Tokens)).Debug("composed element")
				fmt.Fprintf(out, "%s: %s\n", el.Name, built.Class)
				if showAttrs && len(built.Attrs) > 0 {
					pairs := make([]string, 0, len(built.Attrs))
					for _, name := range render.AttrNames(built.Attrs) {
						pairs = append(pairs, name+"="+built.Attrs[name])
					}
					fmt.Fprintf(out, "  attrs: %s\n", strings.Join(pairs, " "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAttrs, "attrs", false, "Also print the pass-through attributes")

	return cmd
}
