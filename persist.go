package mango

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFarmFile is the snapshot file name used when none is configured.
const DefaultFarmFile = "farm_data.json"

// FileStore persists a ledger as a single JSON snapshot file. It satisfies
// Persister, so an opened ledger writes through it after every mutation.
//
// Writes go to a temporary file in the same directory followed by a
// rename, so a crash mid-write leaves the previous snapshot intact.
type FileStore struct {
	Path string
}

// NewFileStore creates a gateway for the snapshot at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the snapshot and returns the ledger wired to write back to
// the same file. A missing file is not an error: it yields a fresh ledger
// seeded with one example product, immediately persisted so the file
// exists from then on.
func (fs *FileStore) Load() (*Ledger, error) {
	f, err := os.Open(fs.Path)
	if os.IsNotExist(err) {
		return fs.bootstrap()
	}
	if err != nil {
		return nil, fmt.Errorf("could not open farm file %q: %w", fs.Path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode farm file %q: %w", fs.Path, err)
	}
	l.SetPersister(fs)
	return l, nil
}

// bootstrap creates the first snapshot: an empty directory, an empty
// history and a single sample product so a brand-new farm is not a blank
// screen.
func (fs *FileStore) bootstrap() (*Ledger, error) {
	l := NewLedger()
	if _, err := l.products.AddProduct("Heirloom Tomato", Vegetable); err != nil {
		return nil, err
	}
	l.SetPersister(fs)
	if err := l.persist(); err != nil {
		return nil, err
	}
	return l, nil
}

// Persist writes the whole snapshot atomically.
func (fs *FileStore) Persist(l *Ledger) error {
	dir := filepath.Dir(fs.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", fs.Path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(fs.Path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temporary snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not finish snapshot write: %w", err)
	}
	if err := os.Rename(tmp.Name(), fs.Path); err != nil {
		return fmt.Errorf("could not replace snapshot %q: %w", fs.Path, err)
	}
	return nil
}
