// Package analyze derives per-column tag frequencies from a scraped
// dataset and renders them as charts and tables.
package analyze

import (
	"fmt"
	"io"
	"sort"

	"cescrape/lib/scrapers/ceplatform"
	"cescrape/lib/textutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("cescrape.goodpractices.analyze")

type TagCount struct {
	Tag   string
	Count int
}

// Tabulate splits the named column's cell of every record into tags and
// counts each tag independently, so a record tagged "A, B" contributes
// one count to A and one to B. Results come back sorted by descending
// count, ties alphabetical.
func Tabulate(practices []ceplatform.Practice, column string) ([]TagCount, error) {
	if _, ok := (ceplatform.Practice{}).Column(column); !ok {
		return nil, fmt.Errorf("unknown column %q", column)
	}

	counts := map[string]int{}
	for _, p := range practices {
		cell, _ := p.Column(column)
		for _, tag := range textutil.SplitTags(cell) {
			counts[tag]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out, nil
}

// RenderTable prints a tabulation as a human-readable table.
func RenderTable(w io.Writer, column string, counts []TagCount) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{column, "Count"})
	for _, c := range counts {
		t.AppendRow(table.Row{c.Tag, c.Count})
	}
	t.Render()
}
