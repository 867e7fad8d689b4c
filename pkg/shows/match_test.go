package shows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdvelde/showtrip/pkg/facts"
)

func performerGraph(t *testing.T) *facts.Graph {
	t.Helper()
	g := facts.NewGraph()

	subj := "http://www.wikidata.org/entity/Q1"
	require.NoError(t, g.AddFact(subj, facts.RDFType, facts.MustIRI(facts.PerformerType)))
	addFact(t, g, subj, facts.PerformerName, "Hamlet")
	addFact(t, g, subj, facts.PerformerDescription, "tragedy by William Shakespeare")
	addFact(t, g, subj, facts.PerformerOccupation, "play")

	subj2 := "http://www.wikidata.org/entity/Q2"
	require.NoError(t, g.AddFact(subj2, facts.RDFType, facts.MustIRI(facts.PerformerType)))
	addFact(t, g, subj2, facts.PerformerName, "Ham")

	return g
}

func TestCleanLabel(t *testing.T) {
	assert.Equal(t, "hamlet", CleanLabel("Hamlet | Toneelgroep X"))
	assert.Equal(t, "hamlet", CleanLabel("  HAMLET  "))
	assert.Equal(t, "hamlet", CleanLabel("Hamlet"))
}

func TestMatchPerformerSuffixAndCaseInsensitive(t *testing.T) {
	g := performerGraph(t)

	p, ok := MatchPerformer("Hamlet | Toneelgroep X", g, DefaultMatchers())
	require.True(t, ok)
	assert.Equal(t, "http://www.wikidata.org/entity/Q1", p.URI)
	assert.Equal(t, "tragedy by William Shakespeare", p.Facts["Description"])

	p, ok = MatchPerformer("HAMLET", g, DefaultMatchers())
	require.True(t, ok)
	assert.Equal(t, "http://www.wikidata.org/entity/Q1", p.URI)
}

func TestExactMatchBeatsSubstring(t *testing.T) {
	g := facts.NewGraph()
	// Graph order puts the substring candidate first; the exact matcher
	// still wins because the strategies run in order.
	addFact(t, g, "http://www.wikidata.org/entity/Q2", facts.PerformerName, "Ham")
	addFact(t, g, "http://www.wikidata.org/entity/Q1", facts.PerformerName, "Hamlet")

	p, ok := MatchPerformer("Hamlet", g, DefaultMatchers())
	require.True(t, ok)
	assert.Equal(t, "http://www.wikidata.org/entity/Q1", p.URI)
}

func TestSubstringMatcherFirstMatchWins(t *testing.T) {
	g := performerGraph(t)

	// "Hamlet in concert" matches "Hamlet" by containment. "Ham" would
	// also match; the first candidate in graph order is taken, with no
	// scoring between them.
	p, ok := MatchPerformer("Hamlet in concert | extra", g, DefaultMatchers())
	require.True(t, ok)
	assert.Equal(t, "http://www.wikidata.org/entity/Q1", p.URI)
}

func TestMatchPerformerNotFound(t *testing.T) {
	g := performerGraph(t)

	_, ok := MatchPerformer("Totally Unrelated Show", g, DefaultMatchers())
	assert.False(t, ok)
}

func TestCollectFactsSkipsType(t *testing.T) {
	g := performerGraph(t)

	p, ok := MatchPerformer("Hamlet", g, DefaultMatchers())
	require.True(t, ok)
	assert.NotContains(t, p.Facts, "Type")
	assert.Equal(t, []string{"Name", "Description", "Occupation"}, p.Order)
}

func TestAttributeName(t *testing.T) {
	assert.Equal(t, "BirthDate", AttributeName("http://example.org/performer/birthDate"))
	assert.Equal(t, "Label", AttributeName("http://www.w3.org/2000/01/rdf-schema#label"))
	assert.Equal(t, "Name", AttributeName("name"))
}
