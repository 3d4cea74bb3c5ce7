package config

var Presets = map[string]map[string]*Config{
	"qubit": {
		"rabi": {
			System: "qubit", Method: "ham", Dt: 0.001, Duration: 12.56, Points: 500,
			Params: ParamsConfig{Omega: 1.0},
		},
		"decay": {
			System: "qubit", Method: "slind", Dt: 0.001, Duration: 5.0, Points: 500,
			Params:    ParamsConfig{Gamma: 1.0},
			InitState: InitConfig{Level: 1},
		},
		"dephasing": {
			System: "qubit", Method: "lind", Dt: 0.001, Duration: 5.0, Points: 500,
			Params:    ParamsConfig{Omega: 1.0, Dephasing: 0.5},
			InitState: InitConfig{Plus: true},
		},
		"damped_rabi": {
			System: "qubit", Method: "lind_rk4", Dt: 0.001, Duration: 20.0, Points: 800,
			Params: ParamsConfig{Omega: 1.0, Gamma: 0.1},
		},
	},
	"driven": {
		"resonant": {
			System: "driven", Method: "ham_rk4", Dt: 0.001, Duration: 20.0, Points: 800,
			Params: ParamsConfig{Omega: 1.0},
		},
		"detuned": {
			System: "driven", Method: "ham_rk4", Dt: 0.001, Duration: 20.0, Points: 800,
			Params: ParamsConfig{Omega: 1.0, Detuning: 0.5},
		},
		"open": {
			System: "driven", Method: "lind_rk4", Dt: 0.001, Duration: 20.0, Points: 800,
			Params: ParamsConfig{Omega: 1.0, Gamma: 0.05},
		},
	},
	"cavity": {
		"decay": {
			System: "cavity", Method: "lind", Dt: 0.0005, Duration: 4.0, Points: 400,
			Params:    ParamsConfig{Kappa: 1.0, Dim: 10},
			InitState: InitConfig{Level: 5},
		},
		"detuned": {
			System: "cavity", Method: "slind", Dt: 0.001, Duration: 4.0, Points: 400,
			Params:    ParamsConfig{Detuning: 2.0, Kappa: 0.5, Dim: 6},
			InitState: InitConfig{Level: 3},
		},
	},
}

func GetPreset(system, preset string) *Config {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	cfg, ok := systemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(system string) []string {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(systemPresets))
	for name := range systemPresets {
		names = append(names, name)
	}
	return names
}
