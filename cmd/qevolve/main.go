package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/qevolve/internal/config"
	"github.com/san-kum/qevolve/internal/export"
	"github.com/san-kum/qevolve/internal/observable"
	"github.com/san-kum/qevolve/internal/propagator"
	"github.com/san-kum/qevolve/internal/quant"
	"github.com/san-kum/qevolve/internal/system"
	"github.com/san-kum/qevolve/internal/trajectory"
	"github.com/san-kum/qevolve/internal/viz"
)

var (
	method    string
	dt        float64
	duration  float64
	points    int
	omega     float64
	detuning  float64
	gamma     float64
	dephasing float64
	kappa     float64
	dim       int
	level     int
	plus      bool
	quiet     bool
	csvPath   string
	jsonPath  string
	svgPath   string
	noPlot    bool
	// Config file and preset
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qevolve",
		Short: "quantum time-evolution lab",
	}

	runCmd := &cobra.Command{
		Use:   "run [system]",
		Short: "run a sampled trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrajectory,
	}
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&csvPath, "csv", "", "export trajectory to CSV file")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "export trajectory to JSON file")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "export trajectory plot to SVG file")
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip terminal plots")

	liveCmd := &cobra.Command{
		Use:   "live [system]",
		Short: "run a trajectory with a live observable view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list available presets for a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for system: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	methodsCmd := &cobra.Command{
		Use:   "methods",
		Short: "list propagator methods",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("ham       exact unitary step, exp(-i dt H) (ket)")
			fmt.Println("sham      exact unitary step on the vectorized density matrix")
			fmt.Println("ham_rk4   4th-order Runge-Kutta unitary step (ket, time-dependent H)")
			fmt.Println("lind      jump/no-jump Lindblad step, fast approximation (density)")
			fmt.Println("lind_rk4  4th-order Runge-Kutta over the full master equation (density)")
			fmt.Println("slind     exact exponential of the generator superoperator (vectorized)")
		},
	}

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list built-in systems",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range system.List() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd, methodsCmd, systemsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&method, "method", config.DefaultMethod, "propagator method")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "micro-step size")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "evolution time")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "target sample count")
	cmd.Flags().Float64Var(&omega, "omega", 1.0, "drive/precession frequency")
	cmd.Flags().Float64Var(&detuning, "detuning", 0.0, "detuning")
	cmd.Flags().Float64Var(&gamma, "gamma", 0.0, "relaxation rate")
	cmd.Flags().Float64Var(&dephasing, "dephasing", 0.0, "pure dephasing rate")
	cmd.Flags().Float64Var(&kappa, "kappa", 0.0, "cavity decay rate")
	cmd.Flags().IntVar(&dim, "dim", config.DefaultDim, "cavity truncation dimension")
	cmd.Flags().IntVar(&level, "level", 0, "initial basis level")
	cmd.Flags().BoolVar(&plus, "plus", false, "start in (|0>+|1>)/sqrt(2)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "disable progress reporting")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file and CLI flags, flags winning.
func resolveConfig(cmd *cobra.Command, systemName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.System = systemName

	if preset != "" {
		p := config.GetPreset(systemName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(systemName))
		}
		*cfg = *p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *fileCfg
		cfg.System = systemName
	}

	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("points") {
		cfg.Points = points
	}
	if cmd.Flags().Changed("omega") {
		cfg.Params.Omega = omega
	}
	if cmd.Flags().Changed("detuning") {
		cfg.Params.Detuning = detuning
	}
	if cmd.Flags().Changed("gamma") {
		cfg.Params.Gamma = gamma
	}
	if cmd.Flags().Changed("dephasing") {
		cfg.Params.Dephasing = dephasing
	}
	if cmd.Flags().Changed("kappa") {
		cfg.Params.Kappa = kappa
	}
	if cmd.Flags().Changed("dim") {
		cfg.Params.Dim = dim
	}
	if cmd.Flags().Changed("level") {
		cfg.InitState.Level = level
	}
	if cmd.Flags().Changed("plus") {
		cfg.InitState.Plus = plus
	}
	return cfg, nil
}

func buildSystem(cfg *config.Config) (*system.System, error) {
	return system.Get(cfg.System, system.Params{
		Omega:     cfg.Params.Omega,
		Detuning:  cfg.Params.Detuning,
		Gamma:     cfg.Params.Gamma,
		Dephasing: cfg.Params.Dephasing,
		Kappa:     cfg.Params.Kappa,
		Dim:       cfg.Params.Dim,
		Level:     cfg.InitState.Level,
		Plus:      cfg.InitState.Plus,
	})
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	sys, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	result, err := evolve(cfg, sys, trajectory.Options{Dt: cfg.Dt, Points: cfg.Points, Quiet: quiet})
	if err != nil {
		return err
	}

	fmt.Print(viz.Summary(cfg.System, cfg.Method, result))
	if !noPlot {
		fmt.Print(viz.Plot(result))
	}

	if csvPath != "" {
		if err := export.ExportCSV(csvPath, result); err != nil {
			return err
		}
		fmt.Printf("csv written to %s\n", csvPath)
	}
	if jsonPath != "" {
		if err := export.ExportJSON(jsonPath, cfg.System, cfg.Method, cfg.Dt, cfg.Duration, result); err != nil {
			return err
		}
		fmt.Printf("json written to %s\n", jsonPath)
	}
	if svgPath != "" {
		if err := export.ExportSVG(svgPath, result, 800, 400); err != nil {
			return err
		}
		fmt.Printf("svg written to %s\n", svgPath)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	sys, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	names := observableNames(sys, cfg.Method)
	model := viz.NewLiveModel(fmt.Sprintf("%s / %s", cfg.System, cfg.Method), names)
	p := tea.NewProgram(model)

	go func() {
		opts := trajectory.Options{Dt: cfg.Dt, Points: cfg.Points, Quiet: true}
		if _, err := evolve(cfg, sys, opts, viz.NewForwarder(p)); err != nil {
			fmt.Fprintf(os.Stderr, "trajectory failed: %v\n", err)
		}
		p.Send(viz.DoneMsg{})
	}()

	_, err = p.Run()
	return err
}

// evolve selects the propagator by method name and runs the trajectory in
// the matching state representation.
func evolve(cfg *config.Config, sys *system.System, opts trajectory.Options, observers ...trajectory.Observer) (*trajectory.Result, error) {
	span := trajectory.Span{T0: 0, Tmax: cfg.Duration}
	gen := sys.Hamiltonian

	switch cfg.Method {
	case "ham":
		if len(sys.Jumps) > 0 {
			return nil, fmt.Errorf("method ham is purely unitary; use lind, lind_rk4 or slind for dissipative systems")
		}
		p, err := propagator.NewHamKet(cfg.Dt, gen)
		if err != nil {
			return nil, err
		}
		return trajectory.Run(p, sys.InitKet, span, ketObservables(sys), opts, observers...)
	case "ham_rk4":
		if len(sys.Jumps) > 0 {
			return nil, fmt.Errorf("method ham_rk4 is purely unitary; use lind, lind_rk4 or slind for dissipative systems")
		}
		p, err := propagator.NewHamRK4Ket(cfg.Dt, gen)
		if err != nil {
			return nil, err
		}
		return trajectory.Run(p, sys.InitKet, span, ketObservables(sys), opts, observers...)
	case "sham":
		if len(sys.Jumps) > 0 {
			return nil, fmt.Errorf("method sham is purely unitary; use lind, lind_rk4 or slind for dissipative systems")
		}
		p, err := propagator.NewSHam(cfg.Dt, gen)
		if err != nil {
			return nil, err
		}
		obs := make([]trajectory.Observable[*quant.Vector], 0)
		for _, o := range densityObservables(sys) {
			obs = append(obs, observable.VecObservable(o))
		}
		return trajectory.Run(p, quant.Vec(sys.InitDensity), span, obs, opts, observers...)
	case "lind":
		p, err := propagator.NewLind(cfg.Dt, gen, sys.Jumps)
		if err != nil {
			return nil, err
		}
		return trajectory.Run(p, sys.InitDensity, span, densityObservables(sys), opts, observers...)
	case "lind_rk4":
		p, err := propagator.NewLindRK4(cfg.Dt, gen, sys.Jumps)
		if err != nil {
			return nil, err
		}
		return trajectory.Run(p, sys.InitDensity, span, densityObservables(sys), opts, observers...)
	case "slind":
		p, err := propagator.NewSLind(cfg.Dt, gen, sys.Jumps)
		if err != nil {
			return nil, err
		}
		obs := make([]trajectory.Observable[*quant.Vector], 0)
		for _, o := range densityObservables(sys) {
			obs = append(obs, observable.VecObservable(o))
		}
		return trajectory.Run(p, quant.Vec(sys.InitDensity), span, obs, opts, observers...)
	default:
		return nil, fmt.Errorf("unknown method: %s (see 'qevolve methods')", cfg.Method)
	}
}

const maxPopulations = 6

func ketObservables(sys *system.System) []trajectory.Observable[*quant.Ket] {
	n := sys.Dim
	if n > maxPopulations {
		n = maxPopulations
	}
	obs := make([]trajectory.Observable[*quant.Ket], 0, n)
	for i := 0; i < n; i++ {
		obs = append(obs, observable.PopulationKet(i))
	}
	return obs
}

func densityObservables(sys *system.System) []trajectory.Observable[*quant.Operator] {
	n := sys.Dim
	if n > maxPopulations {
		n = maxPopulations
	}
	obs := make([]trajectory.Observable[*quant.Operator], 0, n+2)
	for i := 0; i < n; i++ {
		obs = append(obs, observable.PopulationDensity(i))
	}
	obs = append(obs, observable.Purity(), observable.TraceReal())
	return obs
}

func observableNames(sys *system.System, method string) []string {
	switch method {
	case "ham", "ham_rk4":
		names := make([]string, 0)
		for _, o := range ketObservables(sys) {
			names = append(names, o.Name)
		}
		return names
	default:
		names := make([]string, 0)
		for _, o := range densityObservables(sys) {
			names = append(names, o.Name)
		}
		return names
	}
}
