// Package enrich fetches performer facts from public knowledge bases.
//
// Two paths exist. The bulk path runs a SPARQL lookup per performer name
// against Wikidata and accumulates the results into the performer graph the
// planner consumes; a mandatory inter-request delay paces the queries, a
// hard contract with the shared public endpoint. The fallback path fires a
// single best-effort DBpedia lookup when the local performer graph has no
// match for a selected show; it never fails the session, it only reports
// that nothing was found.
package enrich
