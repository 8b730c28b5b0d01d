package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Capture     CaptureMetadata `json:"capture"`
	Ys          []float64       `json:"ys"`
	Times       []float64       `json:"times"`
	Intensities [][]float64     `json:"intensities"`
}

// ExportJSON writes a capture and its profiles as one JSON document.
// An empty path writes to stdout.
func (s *Store) ExportJSON(id, path string) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}
	profiles, err := s.LoadProfiles(id)
	if err != nil {
		return err
	}

	data := ExportData{
		Capture:     *meta,
		Ys:          profiles.Ys,
		Times:       profiles.Times,
		Intensities: profiles.Intensities,
	}

	if path == "" {
		return encodeJSON(os.Stdout, data)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return encodeJSON(file, data)
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
