// Package storage persists calculation runs under a base directory, one
// directory per run holding metadata.json and spectrum.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/nanocalc/internal/physics"
)

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
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	Timestamp time.Time `json:"timestamp"`
	Radius    float64   `json:"radius"`
	ParticleN float64   `json:"particle_n"`
	ParticleK float64   `json:"particle_k"`
	Medium    float64   `json:"medium"`
	Points    int       `json:"points"`
	Warnings  []string  `json:"warnings,omitempty"`
}

var csvHeader = []string{
	"wavelength", "q_sca", "q_abs", "q_ext", "c_sca", "c_abs", "c_ext", "size_parameter",
}

func (s *Store) Save(model string, radius float64, particle physics.RefractiveIndex, medium float64, warnings []string, results []physics.OpticalResult) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	// Timestamps have one-second granularity, so back-to-back saves can
	// land on the same base ID; suffix until the directory is fresh.
	base := fmt.Sprintf("%s_%d", model, time.Now().Unix())
	runID := base
	runDir := filepath.Join(s.baseDir, runID)
	for n := 2; ; n++ {
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", err
		}
		runID = fmt.Sprintf("%s_%d", base, n)
		runDir = filepath.Join(s.baseDir, runID)
	}

	meta := RunMetadata{
		ID:        runID,
		Model:     model,
		Timestamp: time.Now(),
		Radius:    radius,
		ParticleN: particle.N,
		ParticleK: particle.K,
		Medium:    medium,
		Points:    len(results),
		Warnings:  warnings,
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

	csvFile, err := os.Create(filepath.Join(runDir, "spectrum.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	for _, r := range results {
		row := []string{
			formatFloat(r.Wavelength),
			formatFloat(r.QSca),
			formatFloat(r.QAbs),
			formatFloat(r.QExt),
			formatFloat(r.CSca),
			formatFloat(r.CAbs),
			formatFloat(r.CExt),
			formatFloat(r.Metadata.SizeParameter),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSpectrum(runID string) ([]physics.OpticalResult, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "spectrum.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []physics.OpticalResult{}, nil
	}

	results := make([]physics.OpticalResult, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < len(csvHeader) {
			continue
		}

		vals := make([]float64, len(csvHeader))
		ok := true
		for i := range vals {
			v, err := strconv.ParseFloat(record[i], 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}

		results = append(results, physics.OpticalResult{
			Wavelength: vals[0],
			QSca:       vals[1],
			QAbs:       vals[2],
			QExt:       vals[3],
			CSca:       vals[4],
			CAbs:       vals[5],
			CExt:       vals[6],
			Metadata:   physics.OpticalMetadata{SizeParameter: vals[7]},
		})
	}

	return results, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 17, 64)
}
