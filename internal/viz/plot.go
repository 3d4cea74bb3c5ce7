// Package viz renders trajectory results as terminal plots.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/qevolve/internal/trajectory"
)

const (
	plotWidth  = 80
	plotHeight = 10
)

// Plot renders one asciigraph per recorded observable, with a caption
// naming the series and its range.
func Plot(result *trajectory.Result) string {
	var b strings.Builder
	for i, name := range result.Names {
		values := result.Values[i]
		if len(values) == 0 {
			continue
		}
		caption := fmt.Sprintf("%s vs time  [min %.4f, max %.4f]",
			name, floats.Min(values), floats.Max(values))
		graph := asciigraph.Plot(values,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(caption),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String()
}

// Summary renders a short styled run summary.
func Summary(system, method string, result *trajectory.Result) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("%s / %s", system, method)))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("samples: "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d", len(result.Times))))
	b.WriteString(LabelStyle.Render("  steps: "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d", result.Steps)))
	b.WriteString(LabelStyle.Render("  elapsed: "))
	b.WriteString(ValueStyle.Render(result.Elapsed.String()))
	b.WriteString("\n")
	return b.String()
}
