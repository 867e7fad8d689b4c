package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/knakk/sparql"

	"github.com/rdvelde/showtrip/pkg/facts"
)

// Result is one performer lookup outcome.
type Result struct {
	// URI is the knowledge base entity.
	URI string

	// Description, BirthDate, Occupation, Citizenship and Website are
	// optional; absent fields stay empty.
	Description string
	BirthDate   string
	Occupation  string
	Citizenship string
	Website     string
}

// Source resolves one performer name to knowledge base facts. A nil result
// with a nil error means the name is unknown to the knowledge base.
type Source interface {
	Lookup(ctx context.Context, name string) (*Result, error)
}

const lookupQuery = `
SELECT ?person ?description ?birthDate ?occupationLabel ?citizenshipLabel ?website WHERE {
  ?person rdfs:label "%s"@%s .
  OPTIONAL { ?person schema:description ?description . FILTER(LANG(?description) = "%s") }
  OPTIONAL { ?person wdt:P569 ?birthDate . }
  OPTIONAL { ?person wdt:P106 ?occupation . }
  OPTIONAL { ?person wdt:P27 ?citizenship . }
  OPTIONAL { ?person wdt:P856 ?website . }
  SERVICE wikibase:label { bd:serviceParam wikibase:language "%s". }
}
LIMIT 1`

// Wikidata queries the Wikidata SPARQL endpoint.
type Wikidata struct {
	repo     *sparql.Repo
	language string
}

// NewWikidata creates a Wikidata source. timeout bounds each query.
func NewWikidata(endpoint, language string, timeout time.Duration) (*Wikidata, error) {
	repo, err := sparql.NewRepo(endpoint, sparql.Timeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("sparql endpoint %s: %w", endpoint, err)
	}
	return &Wikidata{repo: repo, language: language}, nil
}

// Lookup runs the enrichment SELECT for one name.
func (w *Wikidata) Lookup(_ context.Context, name string) (*Result, error) {
	escaped := strings.ReplaceAll(name, `"`, `\"`)
	q := fmt.Sprintf(lookupQuery, escaped, w.language, w.language, w.language)

	res, err := w.repo.Query(q)
	if err != nil {
		return nil, fmt.Errorf("sparql lookup %q: %w", name, err)
	}
	if len(res.Results.Bindings) == 0 {
		return nil, nil
	}

	row := res.Results.Bindings[0]
	value := func(key string) string {
		if b, ok := row[key]; ok {
			return b.Value
		}
		return ""
	}

	uri := value("person")
	if uri == "" {
		return nil, nil
	}
	return &Result{
		URI:         uri,
		Description: value("description"),
		BirthDate:   value("birthDate"),
		Occupation:  value("occupationLabel"),
		Citizenship: value("citizenshipLabel"),
		Website:     value("website"),
	}, nil
}

// Enricher accumulates lookups into a performer graph.
type Enricher struct {
	source Source
	pace   time.Duration
	log    *slog.Logger
}

// NewEnricher creates an enricher. pace is the mandatory delay before each
// query; it respects the rate expectations of a shared public endpoint and
// must not be shortened for throughput.
func NewEnricher(source Source, pace time.Duration, log *slog.Logger) *Enricher {
	if log == nil {
		log = slog.Default()
	}
	return &Enricher{source: source, pace: pace, log: log}
}

// EnrichAll looks up each name in order and returns the accumulated
// performer graph. Lookups run strictly sequentially with the configured
// pacing delay before each query. Failed or empty lookups are logged and
// skipped; only context cancellation stops the loop early.
func (e *Enricher) EnrichAll(ctx context.Context, names []string) (*facts.Graph, error) {
	g := facts.NewGraph()

	for _, name := range names {
		select {
		case <-ctx.Done():
			return g, ctx.Err()
		case <-time.After(e.pace):
		}

		res, err := e.source.Lookup(ctx, name)
		if err != nil {
			e.log.Warn("lookup failed", "name", name, "error", err)
			continue
		}
		if res == nil {
			e.log.Info("no knowledge base match", "name", name)
			continue
		}

		if err := addPerformer(g, name, res); err != nil {
			e.log.Warn("discarding malformed result", "name", name, "error", err)
			continue
		}
		e.log.Info("performer enriched", "name", name, "uri", res.URI)
	}

	return g, nil
}

// addPerformer writes one lookup result as performer facts.
func addPerformer(g *facts.Graph, name string, res *Result) error {
	subj := res.URI

	if err := g.AddFact(subj, facts.RDFType, facts.MustIRI(facts.PerformerType)); err != nil {
		return err
	}
	if err := g.AddFact(subj, facts.PerformerName, facts.MustLiteral(name)); err != nil {
		return err
	}

	optional := []struct {
		pred, value string
	}{
		{facts.PerformerDescription, res.Description},
		{facts.PerformerBirthDate, res.BirthDate},
		{facts.PerformerOccupation, res.Occupation},
		{facts.PerformerCitizenship, res.Citizenship},
	}
	for _, f := range optional {
		if f.value == "" {
			continue
		}
		if err := g.AddFact(subj, f.pred, facts.MustLiteral(f.value)); err != nil {
			return err
		}
	}

	if res.Website != "" {
		website, err := facts.SafeIRI(res.Website)
		if err != nil {
			return err
		}
		if err := g.AddFact(subj, facts.PerformerWebsite, website); err != nil {
			return err
		}
	}
	return nil
}

// PerformerNames extracts the performer names the bulk loop enriches:
// labels carrying a "|" disambiguation suffix contribute their trimmed
// prefix, deduplicated in first-seen order.
func PerformerNames(labels []string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, label := range labels {
		prefix, _, found := strings.Cut(label, "|")
		if !found {
			continue
		}
		name := strings.TrimSpace(prefix)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
