package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

// readInput reads the document named by path. "-" reads standard input.
func readInput(f *OutputFormatter, cmd *cobra.Command, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, f.fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("input not found: %s", path), nil, nil)
	case err != nil:
		return nil, f.fail(ExitCommandError, ErrCodeReadFailed, fmt.Sprintf("cannot read %s", path), err, nil)
	}
	f.VerboseLog("Read %d bytes from %s", len(data), path)
	return data, nil
}
