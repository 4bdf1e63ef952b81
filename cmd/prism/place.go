package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/prism/internal/placement"
	"github.com/alexisbeaulieu97/prism/internal/render"
)

type placedElement struct {
	Name     string             `yaml:"name"`
	Geometry placement.Geometry `yaml:"geometry"`
	Style    map[string]string  `yaml:"style,omitempty"`
}

func newPlaceCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place <file>",
		Short: "Print the resolved geometry of every placed element as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := flags.loadDocument("place", args[0])
			if err != nil {
				return err
			}
			log, err := flags.commandLogger(cmd, doc)
			if err != nil {
				return err
			}

			placed := make([]placedElement, 0, len(doc.Elements))
			for _, el := range doc.Elements {
				if el.Placement == nil {
					log.With("element", el.Name).Debug("element has no placement")
					continue
				}
				built := render.Build(el.Request())
				placed = append(placed, placedElement{Name: el.Name, Geometry: built.Geometry, Style: built.Style})
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(placed); err != nil {
				return newCommandError("place", "encoding geometry", err, "Report this as a bug.")
			}
			return enc.Close()
		},
	}

	return cmd
}
