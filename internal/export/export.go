// Package export writes completed trajectories to JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/qevolve/internal/trajectory"
)

type ExportData struct {
	System      string               `json:"system"`
	Method      string               `json:"method"`
	Dt          float64              `json:"dt"`
	Duration    float64              `json:"duration"`
	Steps       int                  `json:"steps"`
	Times       []float64            `json:"times"`
	Observables map[string][]float64 `json:"observables"`
}

func newExportData(system, method string, dt, duration float64, result *trajectory.Result) ExportData {
	data := ExportData{
		System:      system,
		Method:      method,
		Dt:          dt,
		Duration:    duration,
		Steps:       result.Steps,
		Times:       result.Times,
		Observables: make(map[string][]float64, len(result.Names)),
	}
	for i, name := range result.Names {
		data.Observables[name] = result.Values[i]
	}
	return data
}

func WriteJSON(w io.Writer, system, method string, dt, duration float64, result *trajectory.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(system, method, dt, duration, result))
}

func ExportJSON(path, system, method string, dt, duration float64, result *trajectory.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, system, method, dt, duration, result)
}

// WriteCSV emits a header row "time,<name>,..." followed by one row per
// sample point.
func WriteCSV(w io.Writer, result *trajectory.Result) error {
	cw := csv.NewWriter(w)

	header := append([]string{"time"}, result.Names...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(result.Names)+1)
	for j, t := range result.Times {
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for i := range result.Names {
			row[i+1] = strconv.FormatFloat(result.Values[i][j], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func ExportCSV(path string, result *trajectory.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, result)
}
