package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/sortviz/internal/step"
)

// Store persists completed runs under a base directory, one subdirectory
// per run holding metadata.json and steps.csv.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one saved run.
type RunMetadata struct {
	ID          string    `json:"id"`
	Algorithm   string    `json:"algorithm"`
	Timestamp   time.Time `json:"timestamp"`
	Seed        int64     `json:"seed"`
	N           int       `json:"n"`
	Steps       int       `json:"steps"`
	Comparisons int       `json:"comparisons"`
	Swaps       int       `json:"swaps"`
	Input       []int     `json:"input"`
	Sorted      []int     `json:"sorted"`
}

// Save writes one completed run and returns its generated ID.
func (s *Store) Save(algorithm string, seed int64, input, sorted []int, c step.Counters, steps []step.Step) (string, error) {
	runID := fmt.Sprintf("%s_%d", algorithm, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Algorithm:   algorithm,
		Timestamp:   time.Now(),
		Seed:        seed,
		N:           len(input),
		Steps:       len(steps),
		Comparisons: c.Comparisons,
		Swaps:       c.Swaps,
		Input:       input,
		Sorted:      sorted,
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

	csvFile, err := os.Create(filepath.Join(runDir, "steps.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()
	if err := WriteCSV(csvFile, steps); err != nil {
		return "", err
	}
	return runID, nil
}

// Load reads the metadata of one saved run.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	meta := &RunMetadata{}
	if err := json.Unmarshal(data, meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return meta, nil
}

// StepsPath returns the path of a saved run's steps.csv.
func (s *Store) StepsPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "steps.csv")
}

// List returns metadata of all saved runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
