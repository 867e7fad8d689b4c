// Package facts provides an in-memory fact graph loaded from Turtle files.
//
// Two graphs drive a planning session: the show graph produced by the
// scraper (labels, durations, performance dates) and the performer graph
// produced by the enrichment loop (names, descriptions, biographical
// facts). Both use a small fixed vocabulary; subjects may omit any
// optional predicate.
//
// The graph preserves triple insertion order, which callers rely on for
// stable first-seen deduplication.
package facts
