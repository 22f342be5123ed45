package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/edgaromeroc/bioslurry-simulator/internal/metrics"
	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
	"github.com/edgaromeroc/bioslurry-simulator/internal/sim"
)

// ErrNotFound is returned when a run ID has no directory under the store.
var ErrNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Params    reactor.Params   `json:"params"`
	Steps     int              `json:"steps"`
	Summary   *metrics.Summary `json:"summary,omitempty"`
}

// Save writes one run directory holding metadata.json and
// trajectory.csv, and returns the generated run ID.
func (s *Store) Save(p reactor.Params, traj sim.Trajectory, summary *metrics.Summary) (string, error) {
	runID := fmt.Sprintf("glyphosate_%s", strings.Split(uuid.New().String(), "-")[0])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		CreatedAt: time.Now(),
		Params:    p,
		Steps:     len(traj),
		Summary:   summary,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := gocsv.Marshal([]sim.Snapshot(traj), csvFile); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, oldest first. Directories with
// missing or corrupt metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			logrus.WithField("run", entry.Name()).Debug("skipping directory without metadata")
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			logrus.WithField("run", entry.Name()).Warn("skipping run with corrupt metadata")
			continue
		}

		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrajectory(runID string) (sim.Trajectory, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	var snaps []sim.Snapshot
	if err := gocsv.Unmarshal(file, &snaps); err != nil {
		return nil, err
	}

	return sim.Trajectory(snaps), nil
}
