package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const filePermissions = 0o644

// WithExt appends Ext to path unless it already carries an extension.
func WithExt(path string) string {
	if path == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + Ext
}

// Save writes p to path atomically: the data goes to path.tmp first and is
// renamed over path once fully written. SavedAt is stamped on p.
// It returns the number of bytes written.
func Save(path string, p *Project) (int, error) {
	if strings.TrimSpace(path) == "" {
		return 0, &Error{Op: "save", Cause: ErrNoPath}
	}

	prev := p.SavedAt
	p.SavedAt = time.Now().UTC()
	data, err := Marshal(p)
	if err != nil {
		p.SavedAt = prev
		return 0, &Error{Op: "save", Path: path, Cause: err}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			p.SavedAt = prev
			return 0, &Error{Op: "save", Path: path, Cause: err}
		}
	}

	tmpPath := path + ".tmp"
	if err := writeSynced(tmpPath, data); err != nil {
		os.Remove(tmpPath)
		p.SavedAt = prev
		return 0, &Error{Op: "save", Path: path, Cause: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		p.SavedAt = prev
		return 0, &Error{Op: "save", Path: path, Cause: fmt.Errorf("failed to rename: %w", err)}
	}
	return len(data), nil
}

func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads the project at path and returns it with the file size.
func Load(path string) (*Project, int, error) {
	if strings.TrimSpace(path) == "" {
		return nil, 0, &Error{Op: "load", Cause: ErrNoPath}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, &Error{Op: "load", Path: path, Cause: err}
	}
	p, err := Unmarshal(data)
	if err != nil {
		return nil, len(data), &Error{Op: "load", Path: path, Cause: err}
	}
	return p, len(data), nil
}
