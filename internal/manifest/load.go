package manifest

import (
	"io/fs"
	"os"

	"github.com/thoreinstein/mplint/internal/errors"
	"github.com/thoreinstein/mplint/pkg/fileutil"
)

// readManifest reads a manifest file, marking a missing file with
// errors.ErrNotFound.
func readManifest(path string) ([]byte, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err == nil {
		return data, nil
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && os.IsNotExist(pathErr.Err) {
		return nil, errors.Mark(errors.Wrapf(err, "reading %s", path), errors.ErrNotFound)
	}
	return nil, errors.Wrapf(err, "reading %s", path)
}
