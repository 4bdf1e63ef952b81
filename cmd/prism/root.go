package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/logger"
)

type rootFlags struct {
	verbose bool
	strict  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "prism",
		Short:         "Prism turns declarative style options into terminal presentation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "Reject style and placement values outside their enumerated domains")

	cmd.AddCommand(newComposeCmd(flags))
	cmd.AddCommand(newPlaceCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newShowcaseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// commandLogger builds the logger for a command. --verbose wins over the
// document's log level.
func (f *rootFlags) commandLogger(cmd *cobra.Command, doc *config.Document) (*logger.Logger, error) {
	level := "warn"
	if doc != nil && doc.Settings.LogLevel != "" {
		level = doc.Settings.LogLevel
	}
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
}

func (f *rootFlags) loadDocument(operation, path string) (*config.Document, error) {
	doc, err := config.ParseDocument(path, config.ParseOptions{Strict: f.strict})
	if err != nil {
		return nil, newCommandError(operation, "loading "+path, err,
			"Check the document syntax, or run without --strict to pass unknown values through.")
	}
	return doc, nil
}
