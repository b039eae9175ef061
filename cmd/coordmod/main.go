package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/coordmod/internal/adapters/fs"
	"github.com/bft-labs/coordmod/internal/adapters/sqlite"
	"github.com/bft-labs/coordmod/internal/cliconfig"
	"github.com/bft-labs/coordmod/internal/commands"
	"github.com/bft-labs/coordmod/internal/domain"
	"github.com/bft-labs/coordmod/internal/ports"
	"github.com/bft-labs/coordmod/internal/session"
	"github.com/bft-labs/coordmod/pkg/log"
)

const longHelp = `
Coordinate-frame instructions for a robot controller.

Sets tool and user frames from values and registers, adjusts numeric
registers, splits vision strings into position registers and computes the
tool-frame shift that keeps a gripped part on its taught path.

The controller is reached through a JSON state file (see "coordmod init").
Configure via file ($HOME/.coordmod/config.toml), COORDMOD_* environment
variables or flags, in increasing order of precedence.
`

var exampleUsage = strings.TrimSpace(`
  coordmod init
  coordmod set-tf 1 3 125.5
  coordmod strp 1 5 10 6
  coordmod tf-shift --result-tf 4
  coordmod watch --debounce 500ms
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the resolved configuration and the wired command handler for
// one invocation.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	out     io.Writer

	logger  log.Logger
	mgr     *session.Manager
	journal *sqlite.Journal
	handler *commands.Handler
}

func main() {
	a := &app{cfg: cliconfig.DefaultConfig(), out: os.Stdout}
	root := a.rootCommand()
	err := root.Execute()
	if cerr := a.close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "coordmod:", err)
		os.Exit(1)
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "coordmod",
		Short:         "Coordinate-frame instructions for a robot controller",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.coordmod/config.toml)")
	f.StringVar(&a.cfg.StateFile, "state-file", a.cfg.StateFile, "controller state file")
	f.StringVar(&a.cfg.JournalPath, "journal", a.cfg.JournalPath, "SQLite correction journal")
	f.BoolVar(&a.cfg.NoJournal, "no-journal", a.cfg.NoJournal, "do not record tool-frame shifts")
	f.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	f.BoolVar(&a.cfg.JSON, "json", a.cfg.JSON, "print results and logs as JSON")
	f.IntVar(&a.cfg.ConnectAttempts, "connect-attempts", a.cfg.ConnectAttempts, "controller connection attempts")
	f.DurationVar(&a.cfg.ConnectBackoff, "connect-backoff", a.cfg.ConnectBackoff, "initial delay between connection attempts")
	f.DurationVar(&a.cfg.ConnectBackoffMax, "connect-backoff-max", a.cfg.ConnectBackoffMax, "maximum delay between connection attempts")
	f.IntVar(&a.cfg.Shift.InputTF, "input-tf", a.cfg.Shift.InputTF, "tool frame the taught program used")
	f.IntVar(&a.cfg.Shift.ResultTF, "result-tf", a.cfg.Shift.ResultTF, "tool frame receiving the shift")
	f.IntVar(&a.cfg.Shift.CamPose, "cam-pose", a.cfg.Shift.CamPose, "PR holding the camera pose")
	f.IntVar(&a.cfg.Shift.RefVis, "ref-vis", a.cfg.Shift.RefVis, "PR holding the template detection")
	f.IntVar(&a.cfg.Shift.ActVis, "act-vis", a.cfg.Shift.ActVis, "PR holding the current detection")

	root.AddCommand(
		a.frameValueCommand(domain.ToolFrame),
		a.frameValueCommand(domain.UserFrame),
		a.frameFromRCommand(domain.ToolFrame),
		a.frameFromRCommand(domain.UserFrame),
		a.frameFromPRCommand(domain.ToolFrame),
		a.frameFromPRCommand(domain.UserFrame),
		a.stepCommand("incr"),
		a.stepCommand("decr"),
		a.decToHexCommand(),
		a.strpCommand(),
		a.tfShiftCommand(),
		a.historyCommand(),
		a.watchCommand(),
		a.initCommand(),
		a.showCommand(),
	)
	return root
}

// loadConfig resolves configuration as file, then COORDMOD_* environment,
// then flags, and wires the logger, connector, journal and handler.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}
	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, _ := log.ParseLevel(a.cfg.LogLevel)
	a.logger = newLogger(os.Stderr, level, a.cfg.JSON)
	a.logger.Debug("configuration",
		log.String("state_file", a.cfg.StateFile),
		log.String("journal", a.cfg.JournalPath),
		log.Any("shift", a.cfg.Shift))

	stateFile := a.cfg.StateFile
	a.mgr = session.NewManager(func(ctx context.Context) (ports.Controller, error) {
		return fs.Open(ctx, stateFile)
	}, session.Config{
		Attempts:       a.cfg.ConnectAttempts,
		BackoffInitial: a.cfg.ConnectBackoff,
		BackoffMax:     a.cfg.ConnectBackoffMax,
	}, a.logger)

	opts := []commands.Option{commands.WithLogger(a.logger)}
	if !a.cfg.NoJournal && needsJournal(cmd) {
		j, err := sqlite.Open(a.cfg.JournalPath, a.logger)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		a.journal = j
		opts = append(opts, commands.WithJournal(j))
	}
	a.handler = commands.New(a.mgr, opts...)
	return nil
}

// needsJournal reports whether cmd records or lists corrections.
func needsJournal(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "tf-shift", "watch", "history":
		return true
	}
	return false
}

func (a *app) close() error {
	var firstErr error
	if a.mgr != nil {
		if err := a.mgr.Close(); err != nil {
			firstErr = err
		}
	}
	if a.journal != nil {
		if err := a.journal.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func newLogger(w io.Writer, level log.Level, jsonOut bool) log.Logger {
	if !jsonOut {
		return log.NewZerologAdapter(w, level)
	}
	zl, _ := zerolog.ParseLevel(string(level))
	return log.NewZerologAdapterWithLogger(zerolog.New(w).Level(zl).With().Timestamp().Logger())
}

// report prints the outcome of one instruction. A failed instruction is
// returned as the command error so the exit status reflects it.
func (a *app) report(msg string, err error) error {
	res := domain.ResultOf(msg, err)
	if a.cfg.JSON {
		enc := json.NewEncoder(a.out)
		if encErr := enc.Encode(res); encErr != nil {
			return encErr
		}
	} else if res.Success {
		fmt.Fprintln(a.out, res.Message)
	}
	return err
}

// commandContext bounds one instruction.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 30*time.Second)
}
