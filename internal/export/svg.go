package export

import (
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/qevolve/internal/trajectory"
)

var svgPalette = []string{"#00ff00", "#00bfff", "#ff6060", "#ffd000", "#d070ff", "#40e0c0"}

// SVG renders every observable series of a trajectory as a polyline in a
// single dark-background plot. All series share one vertical scale.
func SVG(result *trajectory.Result, width, height int) string {
	if len(result.Times) < 2 || len(result.Values) == 0 {
		return ""
	}

	minX, maxX := result.Times[0], result.Times[len(result.Times)-1]
	minY, maxY := floats.Min(result.Values[0]), floats.Max(result.Values[0])
	for _, series := range result.Values[1:] {
		minY = min(minY, floats.Min(series))
		maxY = max(maxY, floats.Max(series))
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

	for s, series := range result.Values {
		color := svgPalette[s%len(svgPalette)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i, y := range series {
			px := (result.Times[i] - minX) / rangeX * float64(width)
			py := float64(height) - (y-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			}
		}
		sb.WriteString("\"/>\n")
	}

	// Legend in the top-left corner.
	for s, name := range result.Names {
		color := svgPalette[s%len(svgPalette)]
		sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 16+14*s, color, name))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func ExportSVG(path string, result *trajectory.Result, width, height int) error {
	svg := SVG(result, width, height)
	if svg == "" {
		return fmt.Errorf("trajectory too short to plot")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
