package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/tui/showcase"
)

var errNotTerminal = errors.New("stdout is not a terminal")

type showcaseOptions struct {
	logFile string
}

func newShowcaseCmd(flags *rootFlags) *cobra.Command {
	opts := &showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase [file]",
		Short: "Run the interactive feedback and modal demo",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return newCommandError("start showcase", "checking the terminal", errNotTerminal,
					"Run prism showcase from an interactive terminal.")
			}

			var doc *config.Document
			if len(args) == 1 {
				loaded, err := flags.loadDocument("start showcase", args[0])
				if err != nil {
					return err
				}
				doc = loaded
			}

			log, closeLog, err := opts.logger(flags, doc)
			if err != nil {
				return err
			}
			defer closeLog()

			m := showcase.New(showcaseFromDocument(doc, log))
			defer m.Close()

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				return newCommandError("run showcase", "running the program", err, "Check that your terminal supports the alternate screen.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.logFile, "log-file", "prism-showcase.log", "File receiving logs while the showcase owns the terminal")

	return cmd
}

// logger writes to a file since the program owns the screen. Logging is
// off unless --verbose or the document asks for a level.
func (o *showcaseOptions) logger(flags *rootFlags, doc *config.Document) (*logger.Logger, func(), error) {
	level := ""
	if doc != nil {
		level = doc.Settings.LogLevel
	}
	if flags.verbose {
		level = "debug"
	}
	if level == "" || o.logFile == "" {
		return logger.Nop(), func() {}, nil
	}

	f, err := tea.LogToFile(o.logFile, "showcase")
	if err != nil {
		return nil, nil, newCommandError("start showcase", "opening "+o.logFile, err, "Pass a writable path with --log-file.")
	}
	log, err := logger.New(logger.Options{Level: level, Writer: f, Component: "showcase"})
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return log, func() { _ = f.Close() }, nil
}

// showcaseFromDocument maps the optional "button" and "modal" elements of
// doc onto the showcase options.
func showcaseFromDocument(doc *config.Document, log *logger.Logger) showcase.Options {
	opts := showcase.Options{Logger: log}
	if doc == nil {
		return opts
	}
	opts.FeedbackDuration = doc.Settings.FeedbackDuration
	if el, ok := doc.Element("button"); ok {
		opts.ButtonStyle = el.Style
	}
	if el, ok := doc.Element("modal"); ok {
		opts.ModalStyle = el.Style
		opts.Placement = el.Placement
	}
	return opts
}
