package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/nanocalc/internal/physics"
)

// Quantity selects which spectrum column to plot.
type Quantity int

const (
	QSca Quantity = iota
	QAbs
	QExt
	CSca
	CAbs
	CExt
)

var quantityCaptions = map[Quantity]string{
	QSca: "q_sca (scattering efficiency)",
	QAbs: "q_abs (absorption efficiency)",
	QExt: "q_ext (extinction efficiency)",
	CSca: "c_sca (scattering cross-section, nm²)",
	CAbs: "c_abs (absorption cross-section, nm²)",
	CExt: "c_ext (extinction cross-section, nm²)",
}

// Extract pulls one column out of a spectrum, in order.
func Extract(results []physics.OpticalResult, q Quantity) []float64 {
	data := make([]float64, len(results))
	for i, r := range results {
		switch q {
		case QSca:
			data[i] = r.QSca
		case QAbs:
			data[i] = r.QAbs
		case QExt:
			data[i] = r.QExt
		case CSca:
			data[i] = r.CSca
		case CAbs:
			data[i] = r.CAbs
		case CExt:
			data[i] = r.CExt
		}
	}
	return data
}

// PlotSpectrum renders one quantity over wavelength as an ASCII chart
// with a wavelength-range caption.
func PlotSpectrum(results []physics.OpticalResult, q Quantity, width, height int) string {
	if len(results) == 0 {
		return ""
	}

	caption := fmt.Sprintf("%s, %g-%g nm",
		quantityCaptions[q],
		results[0].Wavelength,
		results[len(results)-1].Wavelength,
	)

	return asciigraph.Plot(Extract(results, q),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
