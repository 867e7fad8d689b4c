// Package shows reconciles the scraped show graph into deduplicated show
// events and resolves performer facts against them.
package shows

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/rdvelde/showtrip/pkg/facts"
	"github.com/rdvelde/showtrip/pkg/temporal"
)

// ErrNoDuration reports that a show carries no duration fact.
var ErrNoDuration = errors.New("show has no duration fact")

// Show is one deduplicated show event.
type Show struct {
	// URI is the show's opaque identifier; the first subject seen under a
	// label wins when duplicates appear.
	URI string

	// Label is the display name. It may carry a "|"-separated
	// disambiguation suffix, which is display-only.
	Label string

	// Performances are the show's instances, ascending by instant.
	Performances []Performance
}

// Performance is one parsed performance instance.
type Performance struct {
	// At is the canonical instant, with the assumed year injected.
	At time.Time

	// Raw is the source text the instant was parsed from.
	Raw string

	// ShowURI is the owning show.
	ShowURI string
}

// Load reconciles the show graph: shows deduplicated by label (first URI
// wins), performance instants deduplicated per show, unparseable date lines
// skipped. Multi-line startDate values contribute one candidate per line.
// The result is sorted by label so an interactive listing is stable.
func Load(g *facts.Graph, languages []string, assumedYear int) []Show {
	byLabel := make(map[string]*Show)
	var order []string
	seen := make(map[string]map[time.Time]bool)

	for _, p := range g.Pairs(facts.RDFSLabel) {
		label := strings.TrimSpace(p.Object.String())
		if label == "" {
			continue
		}

		show, ok := byLabel[label]
		if !ok {
			show = &Show{URI: p.Subject, Label: label}
			byLabel[label] = show
			order = append(order, label)
			seen[label] = make(map[time.Time]bool)
		}

		for _, raw := range g.Objects(p.Subject, facts.SchemaStartDate) {
			for _, line := range strings.Split(raw.String(), "\n") {
				line = strings.TrimSpace(line)
				dt, ok := temporal.ParseDateTime(line, languages)
				if !ok {
					continue
				}
				dt = temporal.InjectYear(dt, assumedYear)
				if seen[label][dt] {
					continue
				}
				seen[label][dt] = true
				show.Performances = append(show.Performances, Performance{
					At:      dt,
					Raw:     line,
					ShowURI: p.Subject,
				})
			}
		}
	}

	result := make([]Show, 0, len(order))
	sort.Strings(order)
	for _, label := range order {
		show := byLabel[label]
		sort.Slice(show.Performances, func(i, j int) bool {
			return show.Performances[i].At.Before(show.Performances[j].At)
		})
		result = append(result, *show)
	}
	return result
}

// LookupDuration returns the raw duration text for a show URI, or
// ErrNoDuration when the graph carries none.
func LookupDuration(g *facts.Graph, uri string) (string, error) {
	text, ok := g.FirstLiteral(uri, facts.SchemaDuration)
	if !ok {
		return "", ErrNoDuration
	}
	return text, nil
}

// ShowMinutes resolves a show's duration in minutes, substituting the
// default when the fact is absent or unparseable.
func ShowMinutes(g *facts.Graph, show Show) int {
	text, err := LookupDuration(g, show.URI)
	if err != nil {
		return temporal.DefaultShowMinutes
	}
	return temporal.ParseDuration(text)
}
