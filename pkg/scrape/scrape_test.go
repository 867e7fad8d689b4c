package scrape

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdvelde/showtrip/pkg/facts"
)

func TestFilterShowLinks(t *testing.T) {
	base, err := url.Parse("https://www.delamar.nl/voorstellingen/")
	require.NoError(t, err)

	hrefs := []string{
		"/voorstellingen/hamlet/",
		"/voorstellingen/hamlet",       // same show, trailing slash variant
		"/voorstellingen/othello#cast", // fragment link
		"/voorstellingen/",             // the listing itself
		"/nieuws/opening",              // foreign path
		"/voorstellingen/de-storm",
	}

	got := FilterShowLinks(base, hrefs)

	assert.Equal(t, []string{
		"https://www.delamar.nl/voorstellingen/de-storm",
		"https://www.delamar.nl/voorstellingen/hamlet",
	}, got)
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "Hamlet", CleanTitle("Hamlet - DeLaMar"))
	assert.Equal(t, "Hamlet", CleanTitle("  Hamlet  "))
}

func TestAssembleDates(t *testing.T) {
	blocks := []DateBlock{
		{Date: "2025-06-01", Text: "zo 1 jun\n20:00"},
		{Date: "2025-06-02", Text: "uitverkocht"}, // no time token
		{Date: "", Text: "20:00"},                 // no date attribute
	}

	assert.Equal(t, []string{"2025-06-01T20:00"}, AssembleDates(blocks))
}

func TestBuildGraph(t *testing.T) {
	pages := []ShowPage{
		{
			URL:      "https://www.delamar.nl/voorstellingen/hamlet",
			Title:    "Hamlet",
			Duration: "2 uur 15 min",
			Dates:    []string{"2025-06-01T20:00", "2025-06-02T20:00"},
		},
		{
			URL:      "https://www.delamar.nl/voorstellingen/onbekend",
			Title:    "Onbekend",
			Duration: "nog niet bekend",
		},
		{URL: "https://www.delamar.nl/voorstellingen/leeg"}, // no title, skipped
	}

	g, err := BuildGraph(pages)
	require.NoError(t, err)

	label, ok := g.FirstLiteral("https://www.delamar.nl/voorstellingen/hamlet", facts.RDFSLabel)
	require.True(t, ok)
	assert.Equal(t, "Hamlet", label)

	dur, ok := g.FirstLiteral("https://www.delamar.nl/voorstellingen/hamlet", facts.SchemaDuration)
	require.True(t, ok)
	assert.Equal(t, "2 uur 15 min", dur)

	assert.Len(t, g.Objects("https://www.delamar.nl/voorstellingen/hamlet", facts.SchemaStartDate), 2)

	_, ok = g.FirstLiteral("https://www.delamar.nl/voorstellingen/onbekend", facts.SchemaDuration)
	assert.False(t, ok, "unknown durations dropped")

	_, ok = g.FirstLiteral("https://www.delamar.nl/voorstellingen/leeg", facts.RDFSLabel)
	assert.False(t, ok)
}
