package deps

import (
	"encoding/json"
	"fmt"
	"os"
)

// LockedPackage is one resolved pin.
type LockedPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Lockfile is the exact outcome of a resolution: every package with
// the single version selected for it, ordered by name.
type Lockfile struct {
	Packages []LockedPackage `json:"packages"`
}

// Version returns the locked version for a package if present.
func (l *Lockfile) Version(name string) (string, bool) {
	for _, p := range l.Packages {
		if p.Name == name {
			return p.Version, true
		}
	}
	return "", false
}

// Write stores the lockfile as indented JSON.
func (l *Lockfile) Write(path string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal lockfile: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write lockfile: %w", err)
	}
	return nil
}

// ReadLockfile loads a lockfile written by Write.
func ReadLockfile(path string) (*Lockfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lockfile: %w", err)
	}
	var l Lockfile
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("parse lockfile %s: %w", path, err)
	}
	return &l, nil
}
