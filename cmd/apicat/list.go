package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/stalwar-deckers/catalog/pkg/core"
	"github.com/stalwar-deckers/catalog/pkg/render"
)

var (
	listSearch string
	listFilter string
	listJSON   bool
)

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "search term")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "filter tag (default from config)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print JSON instead of tables")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the cards that match a search and filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer app.close()

		if err := applyQuery(app.ctrl, listSearch, listFilter); err != nil {
			return err
		}
		if listJSON {
			return writeListJSON(cmd.OutOrStdout(), app.ctrl)
		}
		writeListText(cmd.OutOrStdout(), app.ctrl)
		return nil
	},
}

// applyQuery drives the controller the same way the browser does: a search
// input followed by a filter selection.
func applyQuery(ctrl *core.Controller, term, filter string) error {
	if term != "" {
		if _, err := ctrl.Dispatch(core.Event{Name: core.EventSearchInput, Value: term}); err != nil {
			return err
		}
	}
	if filter != "" {
		if _, err := ctrl.Dispatch(core.Event{Name: core.EventFilterSelect, Value: filter}); err != nil {
			return err
		}
	}
	return nil
}

type listCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Owner       string `json:"owner,omitempty"`
	Environment string `json:"environment,omitempty"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description"`
}

type listSection struct {
	Category string     `json:"category"`
	Cards    []listCard `json:"cards"`
}

type listOutput struct {
	Term     string        `json:"term"`
	Filter   string        `json:"filter"`
	Count    int           `json:"count"`
	Total    int           `json:"total"`
	Sections []listSection `json:"sections"`
	Empty    string        `json:"empty,omitempty"`
}

func buildListOutput(ctrl *core.Controller) listOutput {
	grid := ctrl.Grid()
	state := ctrl.State()
	out := listOutput{
		Term:     state.Term,
		Filter:   state.Filter,
		Count:    grid.Count(),
		Total:    grid.Total(),
		Sections: []listSection{},
	}
	for _, s := range grid.Sections() {
		if s.Hidden {
			continue
		}
		section := listSection{Category: s.Category}
		for _, c := range s.Cards {
			if c.Hidden {
				continue
			}
			section.Cards = append(section.Cards, listCard{
				ID:          c.ID,
				Name:        c.Name,
				Version:     c.Version,
				Owner:       c.Owner,
				Environment: c.Environment,
				Status:      c.Status,
				Description: c.Description,
			})
		}
		out.Sections = append(out.Sections, section)
	}
	if ph, ok := grid.Placeholder(); ok {
		out.Empty = ph.Title
	}
	return out
}

func writeListJSON(w io.Writer, ctrl *core.Controller) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildListOutput(ctrl))
}

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	listCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func writeListText(w io.Writer, ctrl *core.Controller) {
	out := buildListOutput(ctrl)
	fmt.Fprintf(w, "%d of %d APIs\n", out.Count, out.Total)

	if out.Empty != "" {
		if ph, ok := ctrl.Grid().Placeholder(); ok {
			fmt.Fprintf(w, "\n%s\n%s\n", ph.Title, ph.Hint)
		}
		return
	}

	for _, s := range out.Sections {
		fmt.Fprintf(w, "\n%s (%d)\n", strings.ToUpper(render.Literal(s.Category)), len(s.Cards))
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "NAME", "VERSION", "OWNER", "BADGES").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return listHeaderStyle
				}
				return listCellStyle
			})
		for _, c := range s.Cards {
			var badges []string
			for _, b := range []string{c.Environment, c.Status} {
				if b != "" {
					badges = append(badges, b)
				}
			}
			t.Row(
				render.Literal(c.ID),
				render.Literal(c.Name),
				render.Literal(c.Version),
				render.Literal(c.Owner),
				render.Literal(strings.Join(badges, ", ")),
			)
		}
		fmt.Fprintln(w, t.Render())
	}
}
