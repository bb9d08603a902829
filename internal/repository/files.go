package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"nextskill/internal/qerrors"
)

// FileSource reads "<name>.json" from a file system, such as the embedded data files or a
// directory on disk.
type FileSource struct {
	fsys fs.FS
}

func NewFileSource(fsys fs.FS) *FileSource {
	return &FileSource{fsys: fsys}
}

// NewDirSource reads the data files from a directory.
func NewDirSource(dir string) *FileSource {
	return NewFileSource(os.DirFS(dir))
}

func (s *FileSource) Fetch(ctx context.Context, name string) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fsys, name+".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s.json", qerrors.ResourceNotFoundError, name)
		}
		return nil, err
	}

	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("error parsing %s.json: %w", name, err)
	}

	return out, nil
}
