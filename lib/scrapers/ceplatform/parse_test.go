package ceplatform

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const fullCardHtml = `
<div class="node--type-cecon-good-practice">
	<h2><a href="/platform/en/good-practices/example-entry">Circular Cities</a></h2>
	<div class="field-wrapper field field-node--field-cecon-abstract field-label-hidden">
		Innovative reuse of construction materials.
	</div>
	<div class="field-wrapper field field-node--field-cecon-organisation-company field-label-above">
		<a href="https://example.org">Circular Org</a>
	</div>
	<div class="field-wrapper field field-node--field-cecon-contributor-category field-label-above">
		<a href="/organisation">SME</a>
	</div>
	<div class="field-wrapper field field-node--field-cecon-country field-label-above">
		<div class="field-item">Belgium</div>
	</div>
	<div class="field-wrapper field field-node--field-cecon-main-language field-label-above">
		<a href="/language">English</a>
	</div>
	<div class="field-wrapper field field-node--field-cecon-key-area field-label-above">
		<div class="field-item"><a href="/key-area/waste">Waste</a></div>
		<div class="field-item"><a href="/key-area/recycling">Recycling</a></div>
	</div>
	<div class="field-wrapper field field-node--field-cecon-sector field-label-above">
		<div class="field-item"><a href="/sector/construction">Construction</a></div>
	</div>
	<div class="field-wrapper field field-node--field-cecon-scope field-label-above">
		<div class="field-item"><a href="/scope/national">National</a></div>
		<div class="field-item"><a href="/scope/local">Local</a></div>
	</div>
</div>
`

const minimalCardHtml = `
<div class="node--type-cecon-good-practice">
	<h2>Untitled entry</h2>
</div>
`

// captureLogs routes slog.Default through a buffer for the duration of
// the test so warnings can be counted.
func captureLogs(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestParseListingExtractsExpectedFields(t *testing.T) {
	captureLogs(t)

	practices, err := ParseListing([]byte(fullCardHtml))
	require.NoError(t, err)
	require.Len(t, practices, 1)

	expected := Practice{
		Title:              "Circular Cities",
		Description:        "Innovative reuse of construction materials.",
		Link:               BaseDomain + "/platform/en/good-practices/example-entry",
		Organisation:       "Circular Org",
		TypeOfOrganisation: "SME",
		Country:            "Belgium",
		Language:           "English",
		KeyArea:            "Waste, Recycling",
		Sector:             "Construction",
		Scope:              "National, Local",
	}
	diff := cmp.Diff(expected, practices[0])
	if diff != "" {
		t.Fatalf("practice mismatch (-want +got):\n%s", diff)
	}

	for _, column := range Columns {
		cell, ok := practices[0].Column(column)
		require.True(t, ok)
		require.NotEmpty(t, cell, "column %s", column)
	}
}

func TestParseListingHandlesMissingFields(t *testing.T) {
	logs := captureLogs(t)

	practices, err := ParseListing([]byte(minimalCardHtml))
	require.NoError(t, err)
	require.Len(t, practices, 1)

	practice := practices[0]
	require.Equal(t, "Untitled entry", practice.Title)
	require.Empty(t, practice.Link)
	require.Empty(t, practice.Organisation)
	require.Empty(t, practice.Scope)

	for _, field := range []string{"Link", "Description", "Organisation", "Type of Organisation", "Country", "Language", "Key Area", "Sector", "Scope"} {
		require.Equal(
			t, 1, warningCount(logs.String(), field),
			"expected exactly one warning for field %s", field,
		)
	}
}

// warningCount counts missing-field warnings for one field name, slog's
// text handler quotes attribute values containing spaces.
func warningCount(logs, field string) int {
	if strings.Contains(field, " ") {
		field = strconv.Quote(field)
	}
	return strings.Count(logs, "field="+field)
}

func TestParseListingMissingSingleField(t *testing.T) {
	logs := captureLogs(t)

	// full card with the organisation block removed
	html := strings.Replace(
		fullCardHtml,
		`<a href="https://example.org">Circular Org</a>`,
		"",
		1,
	)
	practices, err := ParseListing([]byte(html))
	require.NoError(t, err)
	require.Len(t, practices, 1)
	require.Empty(t, practices[0].Organisation)

	require.Equal(t, 1, strings.Count(logs.String(), "practice card missing field"))
}

func TestParseListingNoCards(t *testing.T) {
	practices, err := ParseListing([]byte("<html><body><p>nothing here</p></body></html>"))
	require.NoError(t, err)
	require.Empty(t, practices)
}
