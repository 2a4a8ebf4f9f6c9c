package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/ldforge/internal/paths"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize ldforge configuration and the record library",
		Long: `Create the configuration directory with a default config.yaml, then
create the data directory holding the library of saved records.

Without --config-dir or LDFORGE_CONFIG_DIR the configuration goes to
$(CWD)/.ldforge. An existing config.yaml is left untouched.`,
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	configDir := a.configPath
	if a.configDir == "" && os.Getenv(paths.EnvConfigDir) == "" {
		local, err := paths.LocalConfigDir()
		if err != nil {
			return sysError(fmt.Errorf("resolve config dir: %w", err))
		}
		configDir = local
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}
	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, a.cfg); err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	if err := store.Detach(); err != nil {
		return sysError(fmt.Errorf("finalize record library: %w", err))
	}

	a.logger.Debug("initialized", zap.String("config", configPath), zap.String("data_dir", a.cfg.DataDir))
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "ldforge initialized successfully")
	fmt.Fprintf(out, "config: %s\ndata:   %s\n", configPath, a.cfg.DataDir)
	return nil
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. An existing file is left as is.
func writeConfigIfMissing(path string, cfg types.Config) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
