package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/pkg/diff"
)

func newDiffCmd(flags *rootFlags) *cobra.Command {
	var exitCode bool

	cmd := &cobra.Command{
		Use:   "diff <before> <after>",
		Short: "Show how composed classes differ between two documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := flags.loadDocument("diff", args[0])
			if err != nil {
				return err
			}
			after, err := flags.loadDocument("diff", args[1])
			if err != nil {
				return err
			}
			log, err := flags.commandLogger(cmd, after)
			if err != nil {
				return err
			}

			a, b := classListing(before), classListing(after)
			out := diff.Unified(a, b, args[0], args[1])
			if out == "" {
				log.Debug("documents compose identically")
				return nil
			}

			inserted, deleted := diff.Changed(a, b)
			log.With("inserted", inserted, "deleted", deleted).Info("composed classes differ")
			fmt.Fprint(cmd.OutOrStdout(), out)
			if exitCode {
				return newCommandError("diff", fmt.Sprintf("%d lines added, %d removed", inserted, deleted),
					errClassesDiffer, "Review the class changes above before updating the stylesheet.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Fail when the documents compose differently")

	return cmd
}

// classListing renders one "name: class" line per element, in document order.
func classListing(doc *config.Document) string {
	var b strings.Builder
	for _, el := range doc.Elements {
		fmt.Fprintf(&b, "%s: %s\n", el.Name, render.Build(el.Request()).Class)
	}
	return b.String()
}
