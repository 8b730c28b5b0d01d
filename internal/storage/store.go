package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/waveoptics/internal/optics"
	"github.com/san-kum/waveoptics/internal/sim"
)

// Store keeps captures of intensity profiles, one directory per capture.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type CaptureMetadata struct {
	ID        string             `json:"id"`
	Mode      string             `json:"mode"`
	Timestamp time.Time          `json:"timestamp"`
	Params    optics.Params      `json:"params"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Frames    int                `json:"frames"`
	Profiles  int                `json:"profiles"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes metadata.json and profiles.csv for a run and returns the
// capture id.
func (s *Store) Save(result *sim.Result) (string, error) {
	mode := result.Params.Mode.String()
	id := fmt.Sprintf("%s_%d", mode, time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)
	for n := 1; ; n++ {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			break
		}
		id = fmt.Sprintf("%s_%d-%d", mode, time.Now().Unix(), n)
		dir = filepath.Join(s.baseDir, id)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := CaptureMetadata{
		ID:        id,
		Mode:      mode,
		Timestamp: time.Now(),
		Params:    result.Params,
		Width:     result.Geometry.Width,
		Height:    result.Geometry.Height,
		Frames:    result.Frames,
		Profiles:  len(result.Profiles),
		Metrics:   result.Metrics,
	}

	if err := writeJSON(filepath.Join(dir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeProfiles(filepath.Join(dir, "profiles.csv"), result); err != nil {
		return "", err
	}
	return id, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return encodeJSON(f, v)
}

func writeProfiles(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if len(result.Profiles) > 0 {
		header := []string{"time"}
		for _, smp := range result.Profiles[0] {
			header = append(header, "y"+strconv.FormatFloat(smp.Y, 'f', -1, 64))
		}
		if err := w.Write(header); err != nil {
			return err
		}

		for i, profile := range result.Profiles {
			row := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}
			for _, smp := range profile {
				row = append(row, strconv.FormatFloat(smp.Intensity, 'f', 6, 64))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// List returns all readable captures, oldest first.
func (s *Store) List() ([]CaptureMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []CaptureMetadata{}, nil
		}
		return nil, err
	}

	captures := make([]CaptureMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		captures = append(captures, *meta)
	}

	sort.SliceStable(captures, func(i, j int) bool {
		return captures[i].Timestamp.Before(captures[j].Timestamp)
	})
	return captures, nil
}

func (s *Store) Load(id string) (*CaptureMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta CaptureMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("capture %s: %w", id, err)
	}
	return &meta, nil
}

// Profiles is the content of a profiles.csv file.
type Profiles struct {
	Ys          []float64
	Times       []float64
	Intensities [][]float64
}

func (s *Store) LoadProfiles(id string) (*Profiles, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "profiles.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("capture %s: %w", id, err)
	}

	out := &Profiles{}
	if len(records) == 0 {
		return out, nil
	}

	for _, h := range records[0][1:] {
		y, err := strconv.ParseFloat(h[1:], 64)
		if err != nil {
			return nil, fmt.Errorf("capture %s: bad column %q", id, h)
		}
		out.Ys = append(out.Ys, y)
	}

	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		row := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			row = append(row, v)
		}
		out.Times = append(out.Times, t)
		out.Intensities = append(out.Intensities, row)
	}

	return out, nil
}
