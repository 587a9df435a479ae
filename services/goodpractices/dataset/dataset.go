// Package dataset persists scraped good practices as a flat CSV file,
// the only artifact shared between the crawl and analyze pipelines.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cescrape/lib/scrapers/ceplatform"
)

// Write persists the dataset at path, overwriting any previous file and
// creating parent directories as needed. The header row uses the
// canonical column names in ceplatform.Columns order.
func Write(path string, practices []ceplatform.Practice) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create dataset directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(ceplatform.Columns); err != nil {
		file.Close()
		return err
	}
	for _, p := range practices {
		if err := w.Write(p.Row()); err != nil {
			file.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return fmt.Errorf("flush dataset: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close dataset: %w", err)
	}

	slog.Info("dataset written", "records", len(practices), "path", path)
	return nil
}

// Read loads a dataset previously written by Write. Columns are mapped
// by header name so column order in the file does not matter, but every
// canonical column must be present.
func Read(path string) ([]ceplatform.Practice, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range ceplatform.Columns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("dataset %s is missing column %q", path, name)
		}
	}

	var practices []ceplatform.Practice
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}

		var p ceplatform.Practice
		for _, name := range ceplatform.Columns {
			p.SetColumn(name, row[index[name]])
		}
		practices = append(practices, p)
	}

	return practices, nil
}
