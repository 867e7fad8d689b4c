package facts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const showTurtle = `@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix schema: <http://schema.org/> .

<https://example.test/shows/a>
    rdfs:label "Show A" ;
    schema:duration "1 uur 30 min" ;
    schema:startDate "2025-06-01T20:00" ;
    schema:startDate "2025-06-02T20:00" .

<https://example.test/shows/b>
    rdfs:label "Show B" .
`

func TestDecodeTurtle(t *testing.T) {
	g, err := Decode(strings.NewReader(showTurtle))
	require.NoError(t, err)

	assert.Equal(t, 5, g.Len())

	label, ok := g.FirstLiteral("https://example.test/shows/a", RDFSLabel)
	require.True(t, ok)
	assert.Equal(t, "Show A", label)

	dates := g.Objects("https://example.test/shows/a", SchemaStartDate)
	require.Len(t, dates, 2)
	assert.Equal(t, "2025-06-01T20:00", dates[0].String())

	// Show B has no duration; optional predicates are simply absent.
	_, ok = g.FirstLiteral("https://example.test/shows/b", SchemaDuration)
	assert.False(t, ok)
}

func TestPairsPreserveInsertionOrder(t *testing.T) {
	g, err := Decode(strings.NewReader(showTurtle))
	require.NoError(t, err)

	pairs := g.Pairs(RDFSLabel)
	require.Len(t, pairs, 2)
	assert.Equal(t, "https://example.test/shows/a", pairs[0].Subject)
	assert.Equal(t, "https://example.test/shows/b", pairs[1].Subject)
}

func TestPredicateObjects(t *testing.T) {
	g, err := Decode(strings.NewReader(showTurtle))
	require.NoError(t, err)

	pos := g.PredicateObjects("https://example.test/shows/a")
	require.Len(t, pos, 4)
	assert.Equal(t, RDFSLabel, pos[0].Predicate)
}

func TestEncodeRoundTrip(t *testing.T) {
	g, err := Decode(strings.NewReader(showTurtle))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Encode(&buf))

	reloaded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Len(), reloaded.Len())

	label, ok := reloaded.FirstLiteral("https://example.test/shows/a", RDFSLabel)
	require.True(t, ok)
	assert.Equal(t, "Show A", label)
}

func TestAddFact(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddFact("https://example.test/s", RDFSLabel, MustLiteral("S")))
	assert.Equal(t, 1, g.Len())

	err := g.AddFact("not an iri with spaces", RDFSLabel, MustLiteral("S"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/shows.ttl")
	assert.Error(t, err)
}
