// Package cli implements the ldforge command-line interface.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/ldforge/internal/paths"
	"github.com/mesh-intelligence/ldforge/internal/schema"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// app holds global flag values and the state built before a subcommand runs.
type app struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool

	configPath string // resolved config directory
	cfg        types.Config
	builder    schema.Builder
	logger     *zap.Logger
}

// NewRootCmd creates the top-level "ldforge" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "ldforge",
		Short: "Build Schema.org JSON-LD markup",
		Long: `ldforge builds Schema.org JSON-LD records from plain property values.

It generates single records, processes tables of records in bulk, writes
templates for bulk input, and checks existing JSON-LD against the catalog of
required properties.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: $(CWD)/.ldforge if present)")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "data directory (default: $(CWD)/.ldforge-db)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newTypesCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newBulkCmd(a))
	root.AddCommand(newTemplateCmd(a))
	root.AddCommand(newValidateCmd(a))
	root.AddCommand(newHistoryCmd(a))

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	return exitCode(err)
}

// exitCode maps a command error to a process exit code. Errors that carry
// no code, such as flag parsing errors, are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// setup builds the logger, loads config.yaml and resolves directories.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(a.verbose)
	if err != nil {
		return sysError(fmt.Errorf("initialize logger: %w", err))
	}
	a.logger = logger

	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return userError(err)
	}
	cfg := configFromViper(v)

	dataDir, err := paths.ResolveDataDir(a.dataDir, cfg.DataDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	cfg.DataDir = dataDir

	if err := checkConfig(cfg); err != nil {
		return userError(fmt.Errorf("config %s: %w", configDir, err))
	}

	a.configPath = configDir
	a.cfg = cfg
	a.builder = schema.NewBuilder(cfg)
	logger.Debug("configuration loaded",
		zap.String("config_dir", configDir),
		zap.String("data_dir", dataDir),
		zap.String("default_type", cfg.DefaultType),
		zap.Bool("strict_objects", cfg.StrictObjects),
		zap.Bool("guard_reserved_keys", cfg.GuardReservedKeys),
	)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// schemaType returns the first positional argument or the configured
// default type.
func (a *app) schemaType(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return a.cfg.DefaultType
}
