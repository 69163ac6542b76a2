package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/stalwar-deckers/catalog/pkg/detail"
	"github.com/stalwar-deckers/catalog/pkg/render"
)

var (
	showTabs []string
	showRaw  bool
)

func init() {
	showCmd.Flags().StringSliceVarP(&showTabs, "tab", "t", nil, "tabs to print: overview, endpoints, examples, errors (default all)")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print markdown without terminal styling")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the detail view of one API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer app.close()

		tabs, err := parseTabs(showTabs)
		if err != nil {
			return err
		}

		v, ok := detail.NewPresenter(app.ctrl.Store()).Present(args[0])
		if !ok {
			// Unknown ids are a no-op, like activating a card that is gone.
			app.logger.Debug("show: unknown id", "id", args[0])
			return nil
		}

		md := render.Markdown(v, tabs...)
		if showRaw {
			_, err := io.WriteString(cmd.OutOrStdout(), md)
			return err
		}
		return printMarkdown(cmd.OutOrStdout(), md, app.cfg.Theme)
	},
}

func parseTabs(names []string) ([]detail.Tab, error) {
	var tabs []detail.Tab
	for _, name := range names {
		t, err := detail.ParseTab(name)
		if err != nil {
			return nil, err
		}
		tabs = append(tabs, t)
	}
	return tabs, nil
}

// printMarkdown renders md with glamour, falling back to the source text.
func printMarkdown(w io.Writer, md, theme string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		_, err = fmt.Fprint(w, md) // Fallback to raw output
		return err
	}

	out, err := renderer.Render(md)
	if err != nil {
		_, err = fmt.Fprint(w, md) // Fallback
		return err
	}

	_, err = fmt.Fprint(w, out)
	return err
}
