package shows

import (
	"strings"
	"unicode"

	"github.com/rdvelde/showtrip/pkg/facts"
)

// Performer is a resolved set of enrichment facts: attribute name derived
// from the predicate's final path segment, capitalized.
type Performer struct {
	// URI is the performer subject in the enrichment graph.
	URI string

	// Facts maps attribute names to values, in graph order.
	Facts map[string]string

	// Order holds attribute names in first-seen order for stable display.
	Order []string
}

// Matcher resolves a cleaned show label against the performer graph.
// Matchers are tried in a fixed order; the first hit wins, with no scoring
// among multiple candidates.
type Matcher interface {
	// Match returns the performer facts for the label, if any.
	Match(cleanLabel string, g *facts.Graph) (Performer, bool)
}

// DefaultMatchers is the production matcher order: exact normalized name
// first, then substring containment.
func DefaultMatchers() []Matcher {
	return []Matcher{ExactNameMatcher{}, SubstringMatcher{}}
}

// CleanLabel strips a "|"-separated disambiguation suffix, lowercases, and
// trims. Matching always runs on the cleaned form.
func CleanLabel(label string) string {
	name, _, _ := strings.Cut(label, "|")
	return strings.ToLower(strings.TrimSpace(name))
}

// MatchPerformer tries each matcher in order against the cleaned label.
func MatchPerformer(label string, g *facts.Graph, matchers []Matcher) (Performer, bool) {
	clean := CleanLabel(label)
	for _, m := range matchers {
		if p, ok := m.Match(clean, g); ok {
			return p, true
		}
	}
	return Performer{}, false
}

// ExactNameMatcher accepts a performer whose name equals the cleaned label
// after the same normalization.
type ExactNameMatcher struct{}

func (ExactNameMatcher) Match(cleanLabel string, g *facts.Graph) (Performer, bool) {
	for _, p := range g.Pairs(facts.PerformerName) {
		if strings.ToLower(strings.TrimSpace(p.Object.String())) == cleanLabel {
			return collectFacts(g, p.Subject), true
		}
	}
	return Performer{}, false
}

// SubstringMatcher accepts a performer whose name is contained in the
// cleaned label. This is a loose heuristic: a short performer name can
// substring-match an unrelated title. Kept as first-match-wins behavior;
// it runs after ExactNameMatcher so exact hits take precedence.
type SubstringMatcher struct{}

func (SubstringMatcher) Match(cleanLabel string, g *facts.Graph) (Performer, bool) {
	for _, p := range g.Pairs(facts.PerformerName) {
		name := strings.ToLower(strings.TrimSpace(p.Object.String()))
		if name == "" {
			continue
		}
		if strings.Contains(cleanLabel, name) {
			return collectFacts(g, p.Subject), true
		}
	}
	return Performer{}, false
}

// collectFacts gathers every non-type predicate of a subject into the
// display attribute map.
func collectFacts(g *facts.Graph, subj string) Performer {
	p := Performer{URI: subj, Facts: make(map[string]string)}
	for _, po := range g.PredicateObjects(subj) {
		if po.Predicate == facts.RDFType {
			continue
		}
		name := AttributeName(po.Predicate)
		if _, dup := p.Facts[name]; !dup {
			p.Order = append(p.Order, name)
		}
		p.Facts[name] = po.Object.String()
	}
	return p
}

// AttributeName derives a display attribute from a predicate IRI: the final
// path segment, capitalized.
func AttributeName(pred string) string {
	seg := pred
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}
	if i := strings.LastIndex(seg, "#"); i >= 0 {
		seg = seg[i+1:]
	}
	if seg == "" {
		return seg
	}
	runes := []rune(seg)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
