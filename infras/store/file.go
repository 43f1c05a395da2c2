package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"hotel/shared/constant"
)

const (
	fileExtension = ".json"
	dirPerm       = 0o755
	filePerm      = 0o644
)

type fileStore struct {
	dir string
}

// NewFile stores each collection as <dir>/<collection>.json.
func NewFile(dir string) (Store, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &fileStore{dir: dir}, nil
}

func (f *fileStore) Driver() string {
	return constant.StorageDriverFile
}

func (f *fileStore) path(collection string) string {
	return filepath.Join(f.dir, collection+fileExtension)
}

func (f *fileStore) Get(_ context.Context, collection string) ([]byte, bool, error) {
	if err := ValidateCollection(collection); err != nil {
		return nil, false, err
	}

	payload, err := os.ReadFile(f.path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("read collection %s: %w", collection, err)
	}

	return payload, true, nil
}

// Put writes to a temporary file in the same directory and renames it over
// the target so a reader never sees a partial payload.
func (f *fileStore) Put(_ context.Context, collection string, payload []byte) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("write collection %s: %w", collection, err)
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("close temp file: %w", err)
	}

	if err = os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err = os.Rename(tmpName, f.path(collection)); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("replace collection %s: %w", collection, err)
	}

	return nil
}
