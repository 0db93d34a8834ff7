package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// DiskStore persists uploaded files on the local filesystem. Only the
// generated filename is handed back to callers; entities store that name,
// never a full path or URL.
type DiskStore struct {
	dir string
	now func() time.Time
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &DiskStore{dir: dir, now: time.Now}, nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}

// Save writes the uploaded file under a timestamped name that keeps the
// original extension. Content is stored as-is; no type or size checks.
func (s *DiskStore) Save(fh *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d%s", s.now().UnixMilli(), filepath.Ext(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return name, nil
}
