package progress

import (
	"os"
	"path/filepath"
	"strings"
)

// FileStorage keeps one JSON snapshot file per key inside a directory.
// Writes go through a temp file and a rename, so a snapshot on disk is
// always complete.
type FileStorage struct {
	Dir string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{Dir: dir}
}

func (fs *FileStorage) path(key string) string {
	// Keys may carry a user suffix (learningProgress:42); keep filenames tame.
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(fs.Dir, name)
}

func (fs *FileStorage) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (fs *FileStorage) Save(key string, data []byte) error {
	if err := os.MkdirAll(fs.Dir, 0o755); err != nil {
		return err
	}
	target := fs.path(key)
	tmp, err := os.CreateTemp(fs.Dir, "snapshot-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), target)
}
