package types

// Config holds the settings loaded from config.yaml and flags.
type Config struct {
	DataDir           string `json:"data_dir" yaml:"data_dir"`
	OutputDir         string `json:"output_dir" yaml:"output_dir"`
	DefaultType       string `json:"default_type" yaml:"default_type"`
	StrictObjects     bool   `json:"strict_objects" yaml:"strict_objects"`
	GuardReservedKeys bool   `json:"guard_reserved_keys" yaml:"guard_reserved_keys"`
}

// Default configuration values.
const (
	DefaultSchemaType = "Article"
	DefaultOutputDir  = "."
)

// Validate checks the fields every command relies on. Whether DefaultType
// names a catalog entry is checked by the caller against the catalog.
func (c Config) Validate() error {
	if c.DefaultType == "" {
		return ErrDefaultTypeEmpty
	}
	return nil
}

// ValidateStore checks the fields needed to attach a record store.
func (c Config) ValidateStore() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
