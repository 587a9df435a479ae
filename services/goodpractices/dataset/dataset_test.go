package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"cescrape/lib/scrapers/ceplatform"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	practices := []ceplatform.Practice{
		{
			Title:              "Circular Cities",
			Description:        "line one,\nwith a \"quote\" and, commas",
			Link:               "https://circulareconomy.europa.eu/platform/en/good-practices/example",
			Organisation:       "Circular Org",
			TypeOfOrganisation: "SME",
			Country:            "Belgium",
			Language:           "English",
			KeyArea:            "Waste, Recycling",
			Sector:             "Construction",
			Scope:              "National, Local",
		},
		{Title: "Sparse entry"},
	}

	path := filepath.Join(t.TempDir(), "out", "good_practices.csv")
	require.NoError(t, Write(path, practices))

	got, err := Read(path)
	require.NoError(t, err)

	diff := cmp.Diff(practices, got)
	if diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "good_practices.csv")

	require.NoError(t, Write(path, []ceplatform.Practice{{Title: "first"}, {Title: "second"}}))
	require.NoError(t, Write(path, []ceplatform.Practice{{Title: "only"}}))

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "only", got[0].Title)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestReadRejectsForeignHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0644))

	_, err := Read(path)
	require.ErrorContains(t, err, "missing column")
}
