package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SchemaVersion is the current on-disk layout version.
const SchemaVersion = 1

// manifestFileName is the schema manifest written at the data dir root.
const manifestFileName = "manifest.json"

// ErrIncompatibleSchema indicates the data directory was written by a newer
// layout than this binary understands.
var ErrIncompatibleSchema = errors.New("incompatible store schema version")

// manifest records the on-disk schema version for the data directory.
type manifest struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// ensureManifest writes the manifest on first open and verifies the schema
// version on reopen.
func (s *Store) ensureManifest() error {
	path := filepath.Join(s.dir, manifestFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read store manifest: %w", err)
		}
		return s.writeManifest(path)
	}

	var m manifest
	if unmarshalErr := json.Unmarshal(data, &m); unmarshalErr != nil {
		return fmt.Errorf("failed to parse store manifest: %w", unmarshalErr)
	}

	if m.Version > SchemaVersion {
		return fmt.Errorf("%w: data dir has version %d, this build supports up to %d",
			ErrIncompatibleSchema, m.Version, SchemaVersion)
	}

	return nil
}

func (s *Store) writeManifest(path string) error {
	m := manifest{Version: SchemaVersion, CreatedAt: time.Now().UTC()}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store manifest: %w", err)
	}

	if writeErr := os.WriteFile(path, data, 0600); writeErr != nil {
		return fmt.Errorf("failed to write store manifest: %w", writeErr)
	}

	s.log.Debug().Int("version", SchemaVersion).Msg("store manifest created")
	return nil
}
