package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/stalwar-deckers/catalog/pkg/catalog"
	"github.com/stalwar-deckers/catalog/pkg/config"
)

var (
	initYes   bool
	initForce bool
)

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "write the defaults without asking")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the .apicat folder with a config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if !initYes {
			if err := runInitForm(&cfg); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
				return err
			}
		}

		res, err := config.Init(".", cfg, initForce)
		if err != nil {
			return err
		}
		if len(res.Created) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already set up (use --force to rewrite the config)\n", res.Dir)
			return nil
		}
		for _, f := range res.Created {
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", f)
		}
		return nil
	},
}

// runInitForm asks for the config values, starting from cfg.
func runInitForm(cfg *config.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Catalog path").
				Description("YAML file or directory. Leave empty for the built-in sample.").
				Placeholder("./apis").
				Value(&cfg.Catalog).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := catalog.Load(s)
					return err
				}),
			huh.NewInput().
				Title("Default filter").
				Placeholder("all").
				Value(&cfg.DefaultFilter),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(config.Themes...)...).
				Value(&cfg.Theme),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions(config.LogLevels...)...).
				Value(&cfg.Log.Level),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if cfg.DefaultFilter == "" {
		cfg.DefaultFilter = "all"
	}
	return nil
}
