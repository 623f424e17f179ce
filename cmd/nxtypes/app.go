package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/nx-sdk/nxsdk-go/internal/config"
	"github.com/nx-sdk/nxsdk-go/internal/profile"
	"github.com/nx-sdk/nxsdk-go/internal/render"
	"github.com/nx-sdk/nxsdk-go/pkg/common/logger"
	"github.com/nx-sdk/nxsdk-go/pkg/nxtypes"
)

const serviceName = "NXTYPES"

// app carries the state shared by every subcommand once the persistent flags
// have been resolved.
type app struct {
	stdout io.Writer
	stderr io.Writer

	v          *viper.Viper
	configPath string

	// profiles opens the profile named on the command line.
	profiles func(path string) profile.Loader

	cfg *config.Config
	log *logger.Logger

	// errorsLogged counts records written at error level.
	errorsLogged atomic.Int64
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:   stdout,
		stderr:   stderr,
		v:        config.NewViper(),
		profiles: func(path string) profile.Loader { return profile.NewFileLoader(path) },
		log:      logger.Noop(),
	}
}

// errorCount returns how many errors were logged while commands ran.
func (a *app) errorCount() int64 { return a.errorsLogged.Load() }

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nxtypes",
		Short: "Inspect NX-SDK common types",
		Long: `nxtypes lists and resolves the common types shared by NX-SDK applications
(record types, event types, states, encapsulations, address families and
priorities) and validates application profiles that reference them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringP("format", "o", "", "Output record format (text, json, xml)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	_ = a.v.BindPFlag(config.KeyFormat, flags.Lookup("format"))
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	cmd.AddCommand(
		a.listCmd(),
		a.lookupCmd(),
		a.checkCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			// Printing the version must work even when the configuration is broken.
			PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "nxtypes version %s\n", build)
			},
		},
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if err := a.loadConfig(ctx, config.NewViperLoader(a.v, a.configPath)); err != nil {
		return err
	}

	logEvents := logger.Events{
		Error: func(ctx context.Context, r logger.Record) { a.errorsLogged.Add(1) },
	}

	hostname, _ := os.Hostname()
	a.log = logger.NewWithMetadata(a.stderr, a.cfg.LogLevel, serviceName, nil, logEvents, map[string]string{
		"hostname": hostname,
		"build":    build,
	})

	// Set the correct number of threads for the process.
	_, _ = maxprocs.Set(maxprocs.Logger(logger.NewStdLogger(a.log, logger.LevelDebug).Printf))

	a.log.Debug(ctx, "startup", "format", a.cfg.Format.String(), "command", cmd.Name())

	return nil
}

func (a *app) loadConfig(ctx context.Context, l config.Loader) error {
	cfg, err := l.Load(ctx)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [group...]",
		Short: "List the members of every group, or of the named groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			groups := nxtypes.Groups()
			if len(args) > 0 {
				groups = groups[:0:0]
				for _, arg := range args {
					g, err := nxtypes.ParseGroup(arg)
					if err != nil {
						return err
					}
					groups = append(groups, g)
				}
			}

			var members []nxtypes.Member
			for _, g := range groups {
				members = append(members, nxtypes.Members(g)...)
			}
			a.log.Debug(cmd.Context(), "listing members", "groups", len(groups), "members", len(members))

			return render.Render(a.stdout, a.cfg.Format, members)
		},
	}
}

func (a *app) lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <group> <name|value>",
		Short: "Resolve a name or numeric value within a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := nxtypes.ParseGroup(args[0])
			if err != nil {
				return err
			}

			m, err := nxtypes.Lookup(g, args[1])
			if err != nil {
				a.log.Warn(cmd.Context(), "lookup failed", "group", g.String(), "input", args[1], "err", err)
				return err
			}

			return render.Render(a.stdout, a.cfg.Format, []nxtypes.Member{m})
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <profile.yaml>",
		Short: "Validate an application profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lc := logger.NewLoggerContext(a.log.With("command", "check", "path", args[0]))

			p, err := a.profiles(args[0]).Load(ctx)
			if err != nil {
				lc.Error(ctx, "profile rejected", "err", err)
				return err
			}

			lc.Add("profile", p.Name)
			lc.Info(ctx, "profile valid",
				"priority", p.Priority.String(),
				"record_type", p.RecordType.String(),
				"subscriptions", len(p.Subscriptions),
			)

			fmt.Fprintf(a.stdout, "%s: valid (priority %s, record type %s, %d subscriptions)\n",
				p.Name, p.Priority, p.RecordType, len(p.Subscriptions))
			return nil
		},
	}
}
