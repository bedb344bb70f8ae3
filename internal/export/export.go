// Package export serializes spectra for external tools: CSV for
// spreadsheets, JSON for downstream pipelines, SVG for quick plots.
// It consumes [physics.OpticalResult] values unchanged and performs no
// physics.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/nanocalc/internal/physics"
)

// SpectrumData is the JSON export envelope.
type SpectrumData struct {
	Model     string                  `json:"model"`
	Radius    float64                 `json:"radius"`
	ParticleN float64                 `json:"particle_n"`
	ParticleK float64                 `json:"particle_k"`
	Medium    float64                 `json:"medium"`
	Points    int                     `json:"points"`
	Results   []physics.OpticalResult `json:"results"`
}

func NewSpectrumData(model string, radius float64, particle physics.RefractiveIndex, medium float64, results []physics.OpticalResult) SpectrumData {
	return SpectrumData{
		Model:     model,
		Radius:    radius,
		ParticleN: particle.N,
		ParticleK: particle.K,
		Medium:    medium,
		Points:    len(results),
		Results:   results,
	}
}

func WriteJSON(w io.Writer, data SpectrumData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportJSON(path string, data SpectrumData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, data)
}

func WriteCSV(w io.Writer, results []physics.OpticalResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"wavelength", "q_sca", "q_abs", "q_ext", "c_sca", "c_abs", "c_ext"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			strconv.FormatFloat(r.Wavelength, 'f', 2, 64),
			strconv.FormatFloat(r.QSca, 'e', 6, 64),
			strconv.FormatFloat(r.QAbs, 'e', 6, 64),
			strconv.FormatFloat(r.QExt, 'e', 6, 64),
			strconv.FormatFloat(r.CSca, 'e', 6, 64),
			strconv.FormatFloat(r.CAbs, 'e', 6, 64),
			strconv.FormatFloat(r.CExt, 'e', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

func ExportCSV(path string, results []physics.OpticalResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, results)
}
