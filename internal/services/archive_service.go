package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"flightops/frms/internal/db/repositories"
	"flightops/frms/internal/logging"
)

// ArchiveService keeps a document-store style JSON file holding the
// latest archived snapshot per flight, for consumers that want rosters
// without a database connection. One file, keyed by flight number; a
// later save for the same flight replaces that flight's entry.
type ArchiveService struct {
	rosters *repositories.RosterRepository
	path    string

	mu sync.Mutex // file read-modify-write is not atomic
}

func NewArchiveService(rosters *repositories.RosterRepository, path string) *ArchiveService {
	if path == "" {
		path = filepath.Join("data", "rosters_archive.json")
	}
	return &ArchiveService{rosters: rosters, path: path}
}

// SaveLatest archives the flight's most recent snapshot into the JSON
// file. Returns repositories.ErrNoRoster when the flight has none.
func (svc *ArchiveService) SaveLatest(ctx context.Context, flightNo string) error {
	snapshot, err := svc.rosters.LatestByFlight(ctx, flightNo)
	if err != nil {
		return err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	archive := make(map[string]json.RawMessage)
	if data, err := os.ReadFile(svc.path); err == nil {
		if err := json.Unmarshal(data, &archive); err != nil {
			return fmt.Errorf("corrupt archive file %s: %w", svc.path, err)
		}
	}

	archive[flightNo] = json.RawMessage(snapshot.DataJSON)

	data, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(svc.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(svc.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	logging.Info("Roster archived", "flight_no", flightNo, "roster_id", snapshot.ID, "path", svc.path)
	return nil
}
