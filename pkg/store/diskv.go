package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

const tempDirName = ".tmp"

// Diskv keeps one file per key under a base directory.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

var _ Store = (*Diskv)(nil)

// OpenDiskv creates basePath if needed and returns a Store rooted there.
func OpenDiskv(basePath string) (*Diskv, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:  basePath,
		Transform: flatTransform,
		// Writes land in TempDir first and are renamed into place.
		TempDir: filepath.Join(basePath, tempDirName),
		// No read cache: another process may rewrite a key at any time.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

// BasePath is the directory holding the key files.
func (p *Diskv) BasePath() string {
	return p.basePath
}

func (p *Diskv) Read(key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if !p.d.Has(key) {
		return nil, ErrAbsent
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrAbsent
		}
		return nil, fmt.Errorf("store: read %q: %w", key, err)
	}
	return val, nil
}

func (p *Diskv) Write(key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := p.d.Write(key, value); err != nil {
		return fmt.Errorf("store: write %q: %w", key, err)
	}
	return nil
}

func (p *Diskv) Clear(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := p.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: clear %q: %w", key, err)
	}
	return nil
}

func flatTransform(string) []string {
	return []string{}
}
