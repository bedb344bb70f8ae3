// Package tui provides the interactive parameter explorer. It edits
// model parameters, recalculates the spectrum on every change, and
// renders it live; all physics goes through the model registry.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/nanocalc/internal/analysis"
	"github.com/san-kum/nanocalc/internal/config"
	"github.com/san-kum/nanocalc/internal/materials"
	"github.com/san-kum/nanocalc/internal/models"
	"github.com/san-kum/nanocalc/internal/physics"
	"github.com/san-kum/nanocalc/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type param struct {
	name string
	key  string
	step float64
}

var params = []param{
	{"radius (nm)", "radius", 5.0},
	{"n (particle)", "n", 0.05},
	{"k (particle)", "k", 0.05},
	{"medium index", "medium", 0.01},
	{"sweep from (nm)", "from", 10.0},
	{"sweep to (nm)", "to", 10.0},
	{"sweep step (nm)", "step", 1.0},
}

type model struct {
	values   map[string]float64
	cursor   int
	editing  bool
	editBuf  string
	material int // index into materials.List(), -1 = custom

	registry *models.Registry
	spectrum []physics.OpticalResult
	warnings []string
	errMsg   string

	width  int
	height int
}

func newModel() model {
	cfg := config.DefaultConfig()
	m := model{
		values: map[string]float64{
			"radius": cfg.Radius,
			"n":      cfg.Particle.N,
			"k":      cfg.Particle.K,
			"medium": cfg.Medium,
			"from":   cfg.Spectrum.From,
			"to":     cfg.Spectrum.To,
			"step":   cfg.Spectrum.Step,
		},
		material: -1,
		registry: models.NewRegistry(),
		width:    80,
		height:   24,
	}
	m.recalculate()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(params)-1 {
			m.cursor++
		}
	case "left", "-":
		m.adjust(-params[m.cursor].step)
	case "right", "+":
		m.adjust(params[m.cursor].step)
	case "enter":
		m.editing = true
		m.editBuf = ""
	case "m":
		m.cycleMaterial()
	}
	return m, nil
}

func (m *model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
			m.values[params[m.cursor].key] = v
			m.material = -1
			m.recalculate()
		}
		m.editing = false
	case "esc":
		m.editing = false
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 && (s[0] == '.' || s[0] == '-' || (s[0] >= '0' && s[0] <= '9')) {
			m.editBuf += s
		}
	}
	return *m, nil
}

func (m *model) adjust(delta float64) {
	key := params[m.cursor].key
	m.values[key] += delta
	if key == "n" || key == "k" {
		m.material = -1
	}
	m.recalculate()
}

func (m *model) cycleMaterial() {
	keys := materials.List()
	m.material = (m.material + 1) % len(keys)
	p, _ := materials.Get(keys[m.material])
	m.values["n"] = p.Index.N
	m.values["k"] = p.Index.K
	m.recalculate()
}

func (m *model) recalculate() {
	m.errMsg = ""
	m.spectrum = nil
	m.warnings = nil

	opt, err := m.registry.GetOptical("rayleigh", models.Params{
		Radius:     m.values["radius"],
		Wavelength: m.values["from"],
		Particle:   physics.RefractiveIndex{N: m.values["n"], K: m.values["k"]},
		Medium:     m.values["medium"],
	})
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	cfg := config.SpectrumConfig{From: m.values["from"], To: m.values["to"], Step: m.values["step"]}
	wls := (&config.Config{Spectrum: cfg}).Wavelengths()
	if len(wls) == 0 {
		m.errMsg = "empty sweep range"
		return
	}

	m.warnings = opt.Warnings()

	spectrum, err := opt.CalculateSpectrum(wls)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.spectrum = spectrum
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("nanocalc") + dim.Render("  spherical nanoparticle optics") + "\n\n")

	for i, p := range params {
		cursor := "  "
		style := white
		if i == m.cursor {
			cursor = green.Render("> ")
			style = green
		}

		value := fmt.Sprintf("%.3g", m.values[p.key])
		if m.editing && i == m.cursor {
			value = yellow.Render(m.editBuf + "█")
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, style.Render(fmt.Sprintf("%-16s", p.name)), value))
	}

	material := "custom"
	if m.material >= 0 {
		keys := materials.List()
		p, _ := materials.Get(keys[m.material])
		material = p.Name
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", dim.Render(fmt.Sprintf("%-16s", "material")), white.Render(material)))

	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(red.Render("error: "+m.errMsg) + "\n")
	}
	for _, w := range m.warnings {
		b.WriteString(yellow.Render("warning: "+w) + "\n")
	}

	if len(m.spectrum) > 0 {
		width := m.width - 12
		if width > 100 {
			width = 100
		}
		if width < 20 {
			width = 20
		}
		b.WriteString("\n" + viz.PlotSpectrum(m.spectrum, viz.QExt, width, 10) + "\n")

		if peak, ok := analysis.FindPeak(m.spectrum, analysis.QExt); ok {
			b.WriteString(fmt.Sprintf("\n  peak q_ext %s at %s\n",
				cyan.Render(fmt.Sprintf("%.4g", peak.Value)),
				cyan.Render(fmt.Sprintf("%.0f nm", peak.Wavelength)),
			))
		}
	}

	b.WriteString("\n" + dim.Render("↑/↓ select  ←/→ adjust  enter type  m material  q quit") + "\n")

	return b.String()
}

// RunInteractive starts the parameter explorer.
func RunInteractive() error {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
