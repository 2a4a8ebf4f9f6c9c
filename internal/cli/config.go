package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/ldforge/internal/catalog"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir           = "data_dir"
	cfgKeyOutputDir         = "output_dir"
	cfgKeyDefaultType       = "default_type"
	cfgKeyStrictObjects     = "strict_objects"
	cfgKeyGuardReservedKeys = "guard_reserved_keys"
)

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDefaultType, types.DefaultSchemaType)
	v.SetDefault(cfgKeyOutputDir, types.DefaultOutputDir)
	v.SetDefault(cfgKeyStrictObjects, false)
	v.SetDefault(cfgKeyGuardReservedKeys, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func configFromViper(v *viper.Viper) types.Config {
	return types.Config{
		DataDir:           v.GetString(cfgKeyDataDir),
		OutputDir:         v.GetString(cfgKeyOutputDir),
		DefaultType:       v.GetString(cfgKeyDefaultType),
		StrictObjects:     v.GetBool(cfgKeyStrictObjects),
		GuardReservedKeys: v.GetBool(cfgKeyGuardReservedKeys),
	}
}

// checkConfig validates cfg and requires default_type to be a catalog type.
func checkConfig(cfg types.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !catalog.Known(cfg.DefaultType) {
		return fmt.Errorf("%w: default_type %q", types.ErrUnknownType, cfg.DefaultType)
	}
	return nil
}
