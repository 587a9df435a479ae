package analyze

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderChart draws a horizontal bar chart of a tabulation and saves it
// as <outputDir>/<column>_distribution.png, creating the directory if
// absent. An empty tabulation still produces a valid image. Returns the
// path of the written file.
func RenderChart(ctx context.Context, counts []TagCount, column string, outputDir string) (string, error) {
	_, span := tracer.Start(ctx, "RenderChart")
	defer span.End()
	span.SetAttributes(
		attribute.String("column", column),
		attribute.Int("tags", len(counts)),
	)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create chart directory: %w", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of %s", column)
	p.X.Label.Text = "Count"

	// an empty tabulation still saves a bare title/axis image, the bar
	// plotter rejects zero data points
	if len(counts) > 0 {
		// reverse the tabulation so the most frequent tag sits at the
		// top of the chart
		values := make(plotter.Values, len(counts))
		names := make([]string, len(counts))
		for i, c := range counts {
			j := len(counts) - 1 - i
			values[j] = float64(c.Count)
			names[j] = c.Tag
		}

		bars, err := plotter.NewBarChart(values, vg.Points(18))
		if err != nil {
			return "", fmt.Errorf("build bar chart: %w", err)
		}
		bars.Horizontal = true
		p.Add(bars)
		p.NominalY(names...)
	}

	path := filepath.Join(outputDir, fmt.Sprintf("%s_distribution.png", column))
	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save chart: %w", err)
	}
	return path, nil
}
