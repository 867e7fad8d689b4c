package facts

import (
	"fmt"
	"io"
	"os"

	"github.com/knakk/rdf"
)

// Pair is a (subject, object) pair for one predicate.
type Pair struct {
	Subject string
	Object  rdf.Term
}

// PredObj is a (predicate, object) pair for one subject.
type PredObj struct {
	Predicate string
	Object    rdf.Term
}

// Graph is an insertion-ordered in-memory triple store.
type Graph struct {
	triples []rdf.Triple
	bySP    map[string][]rdf.Term // subject + "\x00" + predicate
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{bySP: make(map[string][]rdf.Term)}
}

// Load reads a Turtle file into a new graph.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph file: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// Decode reads Turtle triples from r into a new graph.
func Decode(r io.Reader) (*Graph, error) {
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	triples, err := dec.DecodeAll()
	if err != nil {
		return nil, err
	}

	g := NewGraph()
	for _, t := range triples {
		g.Add(t)
	}
	return g, nil
}

// Add appends one triple.
func (g *Graph) Add(t rdf.Triple) {
	g.triples = append(g.triples, t)
	key := spKey(t.Subj.String(), t.Pred.String())
	g.bySP[key] = append(g.bySP[key], t.Obj)
}

// AddFact appends a (subject IRI, predicate IRI, object) triple built from
// plain strings. Object terms are passed through as-is.
func (g *Graph) AddFact(subj, pred string, obj rdf.Term) error {
	s, err := rdf.NewIRI(subj)
	if err != nil {
		return fmt.Errorf("subject %q: %w", subj, err)
	}
	p, err := rdf.NewIRI(pred)
	if err != nil {
		return fmt.Errorf("predicate %q: %w", pred, err)
	}
	o, ok := obj.(rdf.Object)
	if !ok {
		return fmt.Errorf("object %v is not a valid triple object", obj)
	}
	g.Add(rdf.Triple{Subj: s, Pred: p, Obj: o})
	return nil
}

// Len returns the number of triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Objects returns all objects for a subject/predicate pair, in insertion
// order. Missing pairs yield an empty slice; optional predicates are simply
// absent.
func (g *Graph) Objects(subj, pred string) []rdf.Term {
	return g.bySP[spKey(subj, pred)]
}

// FirstLiteral returns the first literal object for a subject/predicate
// pair, or false when the subject has no such fact.
func (g *Graph) FirstLiteral(subj, pred string) (string, bool) {
	for _, o := range g.Objects(subj, pred) {
		return o.String(), true
	}
	return "", false
}

// Pairs returns every (subject, object) pair carrying the given predicate,
// in triple insertion order.
func (g *Graph) Pairs(pred string) []Pair {
	var pairs []Pair
	for _, t := range g.triples {
		if t.Pred.String() == pred {
			pairs = append(pairs, Pair{Subject: t.Subj.String(), Object: t.Obj})
		}
	}
	return pairs
}

// PredicateObjects returns every (predicate, object) pair for a subject, in
// triple insertion order.
func (g *Graph) PredicateObjects(subj string) []PredObj {
	var pairs []PredObj
	for _, t := range g.triples {
		if t.Subj.String() == subj {
			pairs = append(pairs, PredObj{Predicate: t.Pred.String(), Object: t.Obj})
		}
	}
	return pairs
}

// Encode writes the graph as Turtle.
func (g *Graph) Encode(w io.Writer) error {
	enc := rdf.NewTripleEncoder(w, rdf.Turtle)
	for _, t := range g.triples {
		if err := enc.Encode(t); err != nil {
			return err
		}
	}
	return enc.Close()
}

// Save writes the graph as Turtle to a file.
func (g *Graph) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create graph file: %w", err)
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("serialize %s: %w", path, err)
	}
	return f.Close()
}

func spKey(subj, pred string) string {
	return subj + "\x00" + pred
}

// MustLiteral builds a plain literal term, panicking on the impossible case
// of a plain string being rejected. Intended for fixed vocabulary values.
func MustLiteral(s string) rdf.Literal {
	l, err := rdf.NewLiteral(s)
	if err != nil {
		panic(err)
	}
	return l
}

// MustIRI builds an IRI term, panicking on invalid input. Intended for
// vocabulary constants and validated URLs.
func MustIRI(s string) rdf.IRI {
	iri, err := rdf.NewIRI(s)
	if err != nil {
		panic(err)
	}
	return iri
}

// SafeIRI builds an IRI term from untrusted input.
func SafeIRI(s string) (rdf.IRI, error) {
	return rdf.NewIRI(s)
}
