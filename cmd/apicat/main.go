package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stalwar-deckers/catalog/pkg/catalog"
	"github.com/stalwar-deckers/catalog/pkg/config"
	"github.com/stalwar-deckers/catalog/pkg/core"
	"github.com/stalwar-deckers/catalog/pkg/logging"
	"github.com/stalwar-deckers/catalog/pkg/tui"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "apicat",
		Short: "apicat - browse your API catalog from the terminal",
		Long: `apicat is a searchable catalog of the APIs your teams own.
Type to filter cards, cycle the category and badge tags, and open a card
to read its endpoints, examples and error codes.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The browser owns the screen, so logs go nowhere unless a file is set.
			app, err := setup(io.Discard)
			if err != nil {
				return err
			}
			defer app.close()

			return tui.Run(app.ctrl, tui.Options{
				Theme:  app.cfg.Theme,
				Logger: app.logger,
			})
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .apicat/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "catalog YAML file or directory (default is the built-in sample)")
	rootCmd.PersistentFlags().String("theme", "", "glamour theme (auto, dark, light, dracula, tokyo-night, pink, ascii, notty)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	_ = viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// .env files are optional; warn only when one exists but is malformed
	if files := config.EnvFiles("."); len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to load .env file: %v\n", err)
		}
	}

	config.Configure(viper.GetViper(), cfgFile)
	if err := config.ReadFile(viper.GetViper()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to read config: %v\n", err)
	}
}

// session bundles what every command needs after startup.
type session struct {
	cfg     *config.Config
	logger  *slog.Logger
	ctrl    *core.Controller
	cleanup func() error
}

func (a *session) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
	}
}

// setup loads the config, the logger and the catalog, then builds the
// controller. logFallback receives log records when no log file is set.
func setup(logFallback io.Writer) (*session, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	logger, cleanup, err := logging.Setup(cfg.Log, logFallback)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	store, err := catalog.Load(cfg.Catalog)
	if err != nil {
		_ = cleanup()
		return nil, err
	}
	logger.Debug("catalog loaded", "path", cfg.Catalog, "records", store.Len())

	ctrl, err := newController(store, cfg, logger)
	if err != nil {
		_ = cleanup()
		return nil, err
	}
	return &session{cfg: cfg, logger: logger, ctrl: ctrl, cleanup: cleanup}, nil
}

func newController(store *catalog.Store, cfg *config.Config, logger *slog.Logger) (*core.Controller, error) {
	opts := []core.Option{
		core.WithLogger(logger),
		core.WithInitialFilter(cfg.DefaultFilter),
	}
	if len(cfg.Filters) > 0 {
		opts = append(opts, core.WithFilters(cfg.Filters))
	}
	return core.NewController(store, opts...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
