package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/ldforge/pkg/sqlite"
	"github.com/mesh-intelligence/ldforge/pkg/types"
)

// target says where a command writes its rendered result.
type target struct {
	out      string // explicit file path
	download bool   // write to output_dir under the download name
}

func (t *target) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&t.out, "out", "o", "", "write the result to this file")
	cmd.Flags().BoolVar(&t.download, "download", false, "write the result to output_dir under its download name")
}

// emit writes data to the file selected by t, or to stdout ending in a
// newline. Binary data always goes to a file.
func (a *app) emit(cmd *cobra.Command, t target, fileName string, data []byte, binary bool) error {
	path := t.out
	if path == "" && (t.download || binary) {
		path = filepath.Join(a.cfg.OutputDir, fileName)
	}
	if path == "" {
		out := cmd.OutOrStdout()
		if _, err := out.Write(data); err != nil {
			return sysError(fmt.Errorf("write output: %w", err))
		}
		if !bytes.HasSuffix(data, []byte("\n")) {
			fmt.Fprintln(out)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return sysError(fmt.Errorf("create output directory: %w", err))
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return sysError(fmt.Errorf("write %s: %w", path, err))
	}
	a.logger.Debug("wrote output", zap.String("path", path), zap.Int("bytes", len(data)))
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}

// readSource reads a named file, or stdin when name is "-".
func readSource(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}

// openStore attaches the record library in the configured data directory.
// The caller must Detach the returned store.
func (a *app) openStore() (types.Library, error) {
	store := sqlite.NewLibrary()
	if err := store.Attach(a.cfg); err != nil {
		return nil, sysError(fmt.Errorf("attach record library: %w", err))
	}
	return store, nil
}

// checkFormat rejects formats outside allowed.
func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return userError(fmt.Errorf("%w %q (want one of %v)", types.ErrUnknownFormat, format, allowed))
}
