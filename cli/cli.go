package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/difysjs/docsite/config"
	"github.com/difysjs/docsite/config/dotenv"
	"github.com/difysjs/docsite/export"
	"github.com/difysjs/docsite/logging"
	"github.com/difysjs/docsite/server"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

type app struct {
	configPath string
	envFile    string
	now        func() time.Time
	cfg        *config.Config
}

func Execute(ctx context.Context) error {
	return NewRootCmd(time.Now).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. now is read once per run, right
// before the configuration is built. Only commands that need the
// configuration load it, so help, completion and version work with a
// broken config file.
func NewRootCmd(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	cmd := &cobra.Command{
		Use:           "docsite",
		Short:         "Build and hand off the difys docs site configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "site config file (default $"+config.ConfigPathEnv+" or "+config.DefaultConfigPath+")")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "environment file (default $"+config.EnvFileEnv+" or "+dotenv.DefaultPath+")")

	cmd.AddCommand(
		a.showCmd(),
		a.exportCmd(),
		a.validateCmd(),
		a.serveCmd(),
		versionCmd(),
	)
	return cmd
}

func (a *app) preRun(_ *cobra.Command, _ []string) error {
	return a.load()
}

func (a *app) load() error {
	envFile := a.envFile
	if envFile == "" {
		envFile = os.Getenv(config.EnvFileEnv)
	}
	if envFile == "" {
		dotenv.LoadEnvironment()
	} else {
		dotenv.LoadEnvironment(envFile)
	}

	// the environment file may have changed the level
	logging.Default()
	if err := logging.LoadLogging(); err != nil {
		return err
	}
	log.Logger = log.Logger.With().Str(logging.FieldRunID, uuid.NewString()).Logger()

	cfg, err := config.Load(config.ConfigPath(a.configPath), a.now())
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) showCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print the site configuration",
		Args:    cobra.NoArgs,
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			return export.Write(cmd.OutOrStdout(), a.cfg.Site, f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var (
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Write the site configuration for the documentation generator",
		Args:    cobra.NoArgs,
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := export.FormatFromPath(out)
			if format != "" {
				var err error
				if f, err = export.ParseFormat(format); err != nil {
					return err
				}
			}
			if err := export.WriteFile(out, a.cfg.Site, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "siteConfig.json", "destination file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default: from file extension)")
	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		Short:   "Load and validate the configuration",
		Args:    cobra.NoArgs,
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// load already validated; reaching this point means success
			fmt.Fprintf(cmd.OutOrStdout(), "configuration ok: %s (%d header links, %d scripts)\n",
				a.cfg.Site.Title, len(a.cfg.Site.Navigation), len(a.cfg.Site.Scripts))
			return nil
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the site configuration over HTTP",
		Args:    cobra.NoArgs,
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *a.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return server.Run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docsite %s (%s)\n", version, commit)
		},
	}
}
