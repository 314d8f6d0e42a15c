package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/reoring/gosdmx/i18n"
	"github.com/reoring/gosdmx/internal/config"
	"github.com/reoring/gosdmx/internal/logging"
)

// Version is set at build time.
var Version = "dev"

// app carries the state shared by every subcommand. It is filled in by the
// root command before a subcommand runs.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "sdmx",
		Short: "Inspect and convert SDMX-JSON messages and SDMX-CSV tables",
		Long: color.CyanString(`sdmx - SDMX message tooling

Validates SDMX-JSON data, metadata and structure messages (JSON or YAML),
re-emits them in canonical form, lists item schemes and reads SDMX-CSV
tables into JSON lines.`),
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a config file (default: ./sdmx.yaml or ~/.config/sdmx/sdmx.yaml)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("lang", "", "Issue message language: en, ja")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("i18n.language", flags.Lookup("lang"))

	rootCmd.AddCommand(newCheckCommand(a))
	rootCmd.AddCommand(newFmtCommand(a))
	rootCmd.AddCommand(newSchemesCommand(a))
	rootCmd.AddCommand(newCSVCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	i18n.SetLanguage(cfg.I18n.Language)

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("language", cfg.I18n.Language))
	return nil
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprint(os.Stderr, "Error: ")
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
