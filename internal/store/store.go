// Package store provides durable, partitioned record persistence for the
// local waste-tracking database.
//
// Records are stored as one JSON file per key under a subdirectory per
// partition. The store is fully functional without network connectivity and
// survives process restarts. Writes are atomic (temp file + rename) and all
// operations are safe for concurrent use within a single process.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// recordFileExtension is the file extension used for persisted records.
const recordFileExtension = ".json"

// Partition names a logical record collection. Partitions are independent;
// no cross-partition transactions exist.
type Partition string

const (
	// WasteItems holds logged waste records.
	WasteItems Partition = "waste_items"

	// Settings holds the singleton user settings record.
	Settings Partition = "settings"

	// ImpactData holds derived environmental impact records.
	ImpactData Partition = "impact_data"

	// CommunityData holds seeded community fixture records.
	CommunityData Partition = "community_data"
)

// partitions is the closed set of collections the store manages.
var partitions = []Partition{WasteItems, Settings, ImpactData, CommunityData}

// Common store errors.
var (
	// ErrNotFound indicates the key has no record. Absence is not a
	// storage failure and is never wrapped in one.
	ErrNotFound = errors.New("record not found")

	// ErrUnknownPartition indicates a partition outside the defined set.
	ErrUnknownPartition = errors.New("unknown partition")

	// ErrInvalidKey indicates an empty or filesystem-unsafe record key.
	ErrInvalidKey = errors.New("record key cannot be empty")
)

// Store is a file-backed partitioned record store.
type Store struct {
	// dir is the root data directory.
	dir string

	// mu protects concurrent file operations.
	mu sync.RWMutex

	log zerolog.Logger
}

// Open creates a Store rooted at dir, creating the directory tree and
// writing the schema manifest if needed. Returns an error when the medium
// is unavailable or an existing manifest is incompatible.
func Open(dir string, logger zerolog.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("store directory cannot be empty")
	}

	for _, p := range partitions {
		if err := os.MkdirAll(filepath.Join(dir, string(p)), 0750); err != nil {
			return nil, fmt.Errorf("failed to create partition directory %s: %w", p, err)
		}
	}

	s := &Store{
		dir: dir,
		log: logger.With().Str("component", "store").Logger(),
	}

	if err := s.ensureManifest(); err != nil {
		return nil, err
	}

	return s, nil
}

// Put inserts or overwrites the record stored under key in the partition.
// The record is marshaled to JSON and written atomically.
func (s *Store) Put(partition Partition, key string, record any) error {
	path, err := s.recordPath(partition, key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record %s/%s: %w", partition, key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Write to temporary file first, then rename for atomicity.
	tempPath := path + ".tmp"
	if writeErr := os.WriteFile(tempPath, data, 0600); writeErr != nil {
		return fmt.Errorf("failed to write record file: %w", writeErr)
	}

	if renameErr := os.Rename(tempPath, path); renameErr != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename record file: %w", renameErr)
	}

	s.log.Debug().Str("partition", string(partition)).Str("key", key).Msg("record written")
	return nil
}

// Get retrieves the raw record stored under key.
// Returns ErrNotFound when no record exists; absence never surfaces as a
// storage failure.
func (s *Store) Get(partition Partition, key string) (json.RawMessage, error) {
	path, err := s.recordPath(partition, key)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	return json.RawMessage(data), nil
}

// GetAll returns every record in the partition, ordered by key. ULID keys
// make the order match insertion order, though callers must not depend on
// it beyond retrieval completeness.
func (s *Store) GetAll(partition Partition) ([]json.RawMessage, error) {
	if !validPartition(partition) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPartition, partition)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	dir := filepath.Join(s.dir, string(partition))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read partition directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != recordFileExtension {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	records := make([]json.RawMessage, 0, len(names))
	for _, name := range names {
		data, readErr := os.ReadFile(filepath.Join(dir, name))
		if readErr != nil {
			return nil, fmt.Errorf("failed to read record file %s: %w", name, readErr)
		}
		records = append(records, json.RawMessage(data))
	}

	return records, nil
}

// Delete removes the record stored under key.
// Deleting an absent record is a no-op (idempotent).
func (s *Store) Delete(partition Partition, key string) error {
	path, err := s.recordPath(partition, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
		return fmt.Errorf("failed to delete record file: %w", removeErr)
	}
	return nil
}

// Reset removes every record in the partition. This is the only bulk
// deletion path; impact records in particular are never removed any other
// way.
func (s *Store) Reset(partition Partition) error {
	if !validPartition(partition) {
		return fmt.Errorf("%w: %q", ErrUnknownPartition, partition)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Join(s.dir, string(partition))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read partition directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != recordFileExtension {
			continue
		}
		if removeErr := os.Remove(filepath.Join(dir, entry.Name())); removeErr != nil {
			return fmt.Errorf("failed to remove record file %s: %w", entry.Name(), removeErr)
		}
	}

	s.log.Info().Str("partition", string(partition)).Msg("partition reset")
	return nil
}

// Count returns the number of records in the partition.
func (s *Store) Count(partition Partition) (int, error) {
	if !validPartition(partition) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPartition, partition)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(filepath.Join(s.dir, string(partition)))
	if err != nil {
		return 0, fmt.Errorf("failed to read partition directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == recordFileExtension {
			count++
		}
	}
	return count, nil
}

// Dir returns the root data directory.
func (s *Store) Dir() string {
	return s.dir
}

// recordPath validates partition and key and returns the record file path.
func (s *Store) recordPath(partition Partition, key string) (string, error) {
	if !validPartition(partition) {
		return "", fmt.Errorf("%w: %q", ErrUnknownPartition, partition)
	}
	if key == "" {
		return "", ErrInvalidKey
	}

	// Sanitize key for filesystem safety.
	safeKey := strings.ReplaceAll(key, "/", "_")
	safeKey = strings.ReplaceAll(safeKey, "\\", "_")
	safeKey = strings.ReplaceAll(safeKey, ":", "_")
	return filepath.Join(s.dir, string(partition), safeKey+recordFileExtension), nil
}

func validPartition(p Partition) bool {
	for _, known := range partitions {
		if p == known {
			return true
		}
	}
	return false
}

// GetRecord retrieves and unmarshals the record stored under key into a
// value of type T.
func GetRecord[T any](s *Store, partition Partition, key string) (T, error) {
	var out T
	data, err := s.Get(partition, key)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to unmarshal record %s/%s: %w", partition, key, err)
	}
	return out, nil
}

// GetAllRecords retrieves and unmarshals every record in the partition into
// values of type T, preserving store order.
func GetAllRecords[T any](s *Store, partition Partition) ([]T, error) {
	raws, err := s.GetAll(partition)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record in %s: %w", partition, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
