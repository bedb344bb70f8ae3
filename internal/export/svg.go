package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/nanocalc/internal/physics"
)

// Series selects which efficiency to plot.
type Series int

const (
	SeriesQSca Series = iota
	SeriesQAbs
	SeriesQExt
)

var seriesColors = map[Series]string{
	SeriesQSca: "#00ccff",
	SeriesQAbs: "#ff4444",
	SeriesQExt: "#00ff88",
}

func seriesValue(r physics.OpticalResult, s Series) float64 {
	switch s {
	case SeriesQSca:
		return r.QSca
	case SeriesQAbs:
		return r.QAbs
	default:
		return r.QExt
	}
}

// SpectrumToSVG renders efficiency curves over wavelength as SVG paths.
func SpectrumToSVG(results []physics.OpticalResult, series []Series, width, height int) string {
	if len(results) < 2 || len(series) == 0 {
		return ""
	}

	minX, maxX := results[0].Wavelength, results[0].Wavelength
	minY, maxY := seriesValue(results[0], series[0]), seriesValue(results[0], series[0])
	for _, r := range results {
		if r.Wavelength < minX {
			minX = r.Wavelength
		}
		if r.Wavelength > maxX {
			maxX = r.Wavelength
		}
		for _, s := range series {
			v := seriesValue(r, s)
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, s := range series {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, seriesColors[s]))

		for i, r := range results {
			x := (r.Wavelength - minX) / rangeX * float64(width)
			y := float64(height) - (seriesValue(r, s)-minY)/rangeY*float64(height)

			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}

		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
