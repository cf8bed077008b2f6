package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/ihorchekh/sonic-utilities/internal/flog"
)

var (
	// ErrNotFound means no snapshot is saved for the handle.
	ErrNotFound = errors.New("snapshot not found")
	// ErrCorruptData means a saved snapshot exists but cannot be decoded.
	ErrCorruptData = errors.New("corrupt snapshot data")
)

// Store persists one snapshot per handle. Implementations overwrite on save.
type Store interface {
	Save(h Handle, s *Snapshot) error
	Load(h Handle) (*Snapshot, error)
	DeleteOne(h Handle) error
	DeleteAll(uid int) error
}

// FileStore keeps snapshots as JSON blobs under a per-user directory below
// base, one file per tag. The filesystem is abstracted so tests can run
// against an in-memory one.
type FileStore struct {
	fs   afero.Fs
	base string
}

// NewFileStore returns a store rooted at base on the given filesystem.
func NewFileStore(fs afero.Fs, base string) *FileStore {
	return &FileStore{fs: fs, base: base}
}

func (st *FileStore) Save(h Handle, s *Snapshot) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := st.fs.MkdirAll(h.Dir(st.base), 0o700); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := afero.WriteFile(st.fs, h.Path(st.base), blob, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (st *FileStore) Load(h Handle) (*Snapshot, error) {
	blob, err := afero.ReadFile(st.fs, h.Path(st.base))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(blob, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return &s, nil
}

// DeleteOne removes the snapshot for h. The per-user directory is removed too
// once its last snapshot is gone; failing to remove the directory is not an
// error.
func (st *FileStore) DeleteOne(h Handle) error {
	path := h.Path(st.base)
	if _, err := st.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("stat snapshot: %w", err)
	}
	if err := st.fs.Remove(path); err != nil {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	dir := h.Dir(st.base)
	if rest, err := afero.ReadDir(st.fs, dir); err == nil && len(rest) == 0 {
		if err := st.fs.Remove(dir); err != nil {
			flog.Debugf("could not remove empty snapshot dir %s: %v", dir, err)
		}
	}
	return nil
}

// DeleteAll removes every snapshot of the user. Nothing saved is not an error.
func (st *FileStore) DeleteAll(uid int) error {
	dir := Handle{UID: uid}.Dir(st.base)
	if _, err := st.fs.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat snapshot dir: %w", err)
	}
	if err := st.fs.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove snapshot dir: %w", err)
	}
	return nil
}
