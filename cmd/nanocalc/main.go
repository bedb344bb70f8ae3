package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/nanocalc/internal/analysis"
	"github.com/san-kum/nanocalc/internal/batch"
	"github.com/san-kum/nanocalc/internal/config"
	"github.com/san-kum/nanocalc/internal/export"
	"github.com/san-kum/nanocalc/internal/materials"
	"github.com/san-kum/nanocalc/internal/models"
	"github.com/san-kum/nanocalc/internal/optim"
	"github.com/san-kum/nanocalc/internal/physics"
	"github.com/san-kum/nanocalc/internal/storage"
	"github.com/san-kum/nanocalc/internal/sweep"
	"github.com/san-kum/nanocalc/internal/tui"
	"github.com/san-kum/nanocalc/internal/units"
	"github.com/san-kum/nanocalc/internal/viz"
)

var (
	dataDir    string
	modelName  string
	radius     float64
	wavelength float64
	nReal      float64
	nImag      float64
	medium     float64
	material   string
	configFile string
	preset     string
	// Spectrum range
	from float64
	to   float64
	step float64
	// Export target
	outFile string
	// Optimization grid
	radiusMin  float64
	radiusMax  float64
	gridPoints int
)

// main registers commands and flags; without a subcommand it launches
// the interactive parameter explorer.
func main() {
	rootCmd := &cobra.Command{
		Use:   "nanocalc",
		Short: "optical properties of spherical nanoparticles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".nanocalc", "data directory")

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "single-wavelength calculation",
		RunE:  runCalc,
	}
	addParamFlags(calcCmd)
	calcCmd.Flags().Float64Var(&wavelength, "wavelength", config.DefaultWavelength, "wavelength (nm)")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "wavelength sweep, saved to the run store",
		RunE:  runSpectrum,
	}
	addParamFlags(spectrumCmd)
	spectrumCmd.Flags().Float64Var(&from, "from", config.DefaultSpectrumFrom, "sweep start (nm)")
	spectrumCmd.Flags().Float64Var(&to, "to", config.DefaultSpectrumTo, "sweep end (nm)")
	spectrumCmd.Flags().Float64Var(&step, "step", config.DefaultSpectrumStep, "sweep step (nm)")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list material presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tINDEX\tNOTES")
			for _, key := range materials.List() {
				p, _ := materials.Get(key)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", key, p.Name, p.Index, p.Description)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list calculation presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			if len(names) == 0 {
				fmt.Println("no presets")
				return nil
			}
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Printf("  %s: %gnm %s in medium %g, %g-%gnm\n",
					name, cfg.Radius, cfg.Material, cfg.Medium, cfg.Spectrum.From, cfg.Spectrum.To)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's spectrum to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunCSV,
	}
	exportCSVCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run's spectrum to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run's spectrum plot as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "spectrum.svg", "output file")

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "grid-search the radius maximizing extinction at a wavelength",
		RunE:  runOptimize,
	}
	addParamFlags(optimizeCmd)
	optimizeCmd.Flags().Float64Var(&wavelength, "wavelength", config.DefaultWavelength, "target wavelength (nm)")
	optimizeCmd.Flags().Float64Var(&radiusMin, "r-min", 5.0, "smallest radius (nm)")
	optimizeCmd.Flags().Float64Var(&radiusMax, "r-max", 100.0, "largest radius (nm)")
	optimizeCmd.Flags().IntVar(&gridPoints, "points", 96, "grid resolution")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted calculation scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive parameter explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}

	rootCmd.AddCommand(calcCmd, spectrumCmd, materialsCmd, presetsCmd, listCmd,
		plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd,
		optimizeCmd, batchCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&modelName, "model", "rayleigh", "optical model")
	cmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "particle radius (nm)")
	cmd.Flags().Float64Var(&nReal, "n", config.DefaultParticleN, "particle index, real part")
	cmd.Flags().Float64Var(&nImag, "k", config.DefaultParticleK, "particle index, imaginary part")
	cmd.Flags().Float64Var(&medium, "medium", config.DefaultMedium, "medium refractive index")
	cmd.Flags().StringVar(&material, "material", "", "material preset (overrides n/k)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "calculation preset")
}

// effectiveConfig merges preset, config file, and flags; flags win when
// explicitly set, mirroring precedence in the config file loader.
func effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("model") {
		cfg.Model = modelName
	}
	if cmd.Flags().Changed("radius") {
		cfg.Radius = radius
	}
	if cmd.Flags().Changed("wavelength") {
		cfg.Wavelength = wavelength
	}
	if cmd.Flags().Changed("n") {
		cfg.Particle.N = nReal
		cfg.Material = ""
	}
	if cmd.Flags().Changed("k") {
		cfg.Particle.K = nImag
		cfg.Material = ""
	}
	if cmd.Flags().Changed("medium") {
		cfg.Medium = medium
	}
	if cmd.Flags().Changed("material") {
		cfg.Material = material
	}
	if cmd.Flags().Changed("from") {
		cfg.Spectrum.From = from
	}
	if cmd.Flags().Changed("to") {
		cfg.Spectrum.To = to
	}
	if cmd.Flags().Changed("step") {
		cfg.Spectrum.Step = step
	}

	return cfg, nil
}

func buildModel(cfg *config.Config) (physics.OpticalModel, physics.RefractiveIndex, error) {
	particle, err := cfg.ParticleIndex()
	if err != nil {
		return nil, particle, err
	}

	registry := models.NewRegistry()
	m, err := registry.GetOptical(cfg.Model, models.Params{
		Radius:     cfg.Radius,
		Wavelength: cfg.Wavelength,
		Particle:   particle,
		Medium:     cfg.Medium,
	})
	return m, particle, err
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}

	m, _, err := buildModel(cfg)
	if err != nil {
		return err
	}

	for _, w := range m.Warnings() {
		fmt.Printf("warning: %s\n", w)
	}

	result, err := m.Calculate()
	if err != nil {
		return err
	}

	energy := units.Wavelength(result.Wavelength).EnergyEV()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "model\t%s\n", m.Name())
	fmt.Fprintf(w, "wavelength\t%.2f nm (%.4f eV)\n", result.Wavelength, float64(energy))
	fmt.Fprintf(w, "size parameter\t%.4f\n", result.Metadata.SizeParameter)
	fmt.Fprintf(w, "q_sca\t%.6e\n", result.QSca)
	fmt.Fprintf(w, "q_abs\t%.6e\n", result.QAbs)
	fmt.Fprintf(w, "q_ext\t%.6e\n", result.QExt)
	fmt.Fprintf(w, "c_sca\t%.6e nm²\n", result.CSca)
	fmt.Fprintf(w, "c_abs\t%.6e nm²\n", result.CAbs)
	fmt.Fprintf(w, "c_ext\t%.6e nm²\n", result.CExt)
	fmt.Fprintf(w, "conservation error\t%.2e\n", result.CheckConservation())
	return w.Flush()
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}

	m, particle, err := buildModel(cfg)
	if err != nil {
		return err
	}

	for _, w := range m.Warnings() {
		fmt.Println(viz.Warning.Render("warning: " + w))
	}

	wls := cfg.Wavelengths()
	if len(wls) == 0 {
		return fmt.Errorf("empty sweep range %g-%g step %g", cfg.Spectrum.From, cfg.Spectrum.To, cfg.Spectrum.Step)
	}

	start := time.Now()
	results, err := sweep.Spectrum(context.Background(), m, wls)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Model, cfg.Radius, particle, cfg.Medium, m.Warnings(), results)
	if err != nil {
		return err
	}

	fmt.Printf("computed %d points in %v\n", len(results), elapsed)
	fmt.Printf("run id: %s\n\n", viz.Value.Render(runID))

	fmt.Println(viz.PlotSpectrum(results, viz.QExt, 80, 10))

	if peak, ok := analysis.FindPeak(results, analysis.QExt); ok {
		fmt.Printf("\npeak q_ext %s at %s", viz.Value.Render(fmt.Sprintf("%.4g", peak.Value)), viz.Value.Render(fmt.Sprintf("%.0f nm", peak.Wavelength)))
		if width, ok := analysis.FWHM(results, analysis.QExt); ok {
			fmt.Printf(" (FWHM %.1f nm)", width)
		}
		fmt.Println()
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tRADIUS\tINDEX\tMEDIUM\tPOINTS\tQ_EXT")

	for _, run := range runs {
		spark := ""
		if results, err := st.LoadSpectrum(run.ID); err == nil {
			spark = viz.Sparkline(viz.Extract(results, viz.QExt), 20)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fnm\t%.2f+%.2fi\t%.2f\t%d\t%s\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Radius,
			run.ParticleN,
			run.ParticleK,
			run.Medium,
			run.Points,
			spark,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []physics.OpticalResult, error) {
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	results, err := st.LoadSpectrum(runID)
	if err != nil {
		return nil, nil, err
	}

	return meta, results, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, results, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Println(viz.Title.Render("run " + meta.ID))
	fmt.Printf("%s %s\n", viz.Label.Render("model:"), meta.Model)
	fmt.Printf("%s %d\n\n", viz.Label.Render("samples:"), len(results))

	for _, q := range []viz.Quantity{viz.QSca, viz.QAbs, viz.QExt} {
		fmt.Println(viz.PlotSpectrum(results, q, 80, 10))
		fmt.Println(viz.Separator(80))
	}

	if peaks := analysis.LocalMaxima(results, analysis.QExt); len(peaks) > 0 {
		fmt.Println(viz.Label.Render("resonances (q_ext):"))
		for _, p := range peaks {
			fmt.Printf("  %.0f nm\t%.4g\n", p.Wavelength, p.Value)
		}
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportRunCSV(cmd *cobra.Command, args []string) error {
	_, results, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if outFile == "" {
		return export.WriteCSV(os.Stdout, results)
	}
	return export.ExportCSV(outFile, results)
}

func exportRunJSON(cmd *cobra.Command, args []string) error {
	meta, results, err := loadRun(args[0])
	if err != nil {
		return err
	}

	particle := physics.RefractiveIndex{N: meta.ParticleN, K: meta.ParticleK}
	data := export.NewSpectrumData(meta.Model, meta.Radius, particle, meta.Medium, results)

	if outFile == "" {
		return export.WriteJSON(os.Stdout, data)
	}
	return export.ExportJSON(outFile, data)
}

func exportRunSVG(cmd *cobra.Command, args []string) error {
	_, results, err := loadRun(args[0])
	if err != nil {
		return err
	}

	svg := export.SpectrumToSVG(results, []export.Series{export.SeriesQSca, export.SeriesQAbs, export.SeriesQExt}, 800, 400)
	if svg == "" {
		return fmt.Errorf("not enough data to plot")
	}

	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}

	particle, err := cfg.ParticleIndex()
	if err != nil {
		return err
	}

	registry := models.NewRegistry()
	build := func(params map[string]float64) (physics.OpticalModel, error) {
		return registry.GetOptical(cfg.Model, models.Params{
			Radius:     params["radius"],
			Wavelength: cfg.Wavelength,
			Particle:   particle,
			Medium:     cfg.Medium,
		})
	}

	gs := optim.NewGridSearch([]string{"radius"}, [][]float64{optim.Range(radiusMin, radiusMax, gridPoints)})

	start := time.Now()
	best, score, err := gs.Search(context.Background(), build, func(r physics.OpticalResult) float64 {
		return r.QExt
	})
	if err != nil {
		return err
	}
	if best == nil {
		return fmt.Errorf("no valid grid point in radius range %g-%g", radiusMin, radiusMax)
	}

	fmt.Printf("searched %d radii in %v\n\n", gridPoints, time.Since(start))

	summary := fmt.Sprintf("target wavelength  %.1f nm\nbest radius        %.2f nm\nq_ext              %.6e",
		cfg.Wavelength, best["radius"], score)
	fmt.Println(viz.Panel.Render(summary))
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := batch.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Printf("  %s\n", scenario.Description)
	}

	start := time.Now()
	results, err := batch.RunScenario(context.Background(), scenario, models.NewRegistry(), st)
	if err != nil {
		return err
	}

	fmt.Printf("completed %d steps in %v\n\n", len(results), time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tRUN\tPOINTS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\n", r.Label, r.RunID, len(r.Results))
	}
	return w.Flush()
}
