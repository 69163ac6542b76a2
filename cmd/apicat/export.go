package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/stalwar-deckers/catalog/pkg/core"
	"github.com/stalwar-deckers/catalog/pkg/detail"
	"github.com/stalwar-deckers/catalog/pkg/render"
)

var (
	exportOut    string
	exportTitle  string
	exportSearch string
	exportFilter string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "site", "output directory")
	exportCmd.Flags().StringVar(&exportTitle, "title", "API Catalog", "page title")
	exportCmd.Flags().StringVarP(&exportSearch, "search", "s", "", "only export cards matching this term")
	exportCmd.Flags().StringVarP(&exportFilter, "filter", "f", "", "only export cards matching this filter tag")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as a static HTML page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer app.close()

		if err := applyQuery(app.ctrl, exportSearch, exportFilter); err != nil {
			return err
		}
		path, err := exportSite(app.ctrl, exportOut, exportTitle)
		if err != nil {
			return err
		}
		app.logger.Info("exported catalog", "path", path, "cards", app.ctrl.Grid().Count())
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d of %d APIs to %s\n", app.ctrl.Grid().Count(), app.ctrl.Grid().Total(), path)
		return nil
	},
}

// exportSite renders the controller's current grid to dir/index.html and
// returns the file path.
func exportSite(ctrl *core.Controller, dir, title string) (string, error) {
	page := render.NewPage(title, ctrl.State(), ctrl.Grid(), detail.NewPresenter(ctrl.Store()))

	var buf bytes.Buffer
	if err := render.HTML(&buf, page); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
