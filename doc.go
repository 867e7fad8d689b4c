// Package showtrip plans train trips around a theater visit.
//
// A session runs over two fact graphs: the show graph the scraper produced
// (titles, durations, performance dates) and the performer graph the
// enrichment loop produced (names and biographical facts from a public
// knowledge base). The planner reconciles the two by fuzzy label matching,
// lets the user pick a show and a performance, computes the show's time
// window, and searches train trips in both directions around it: outbound
// trips constrained to arrive before the show starts and return trips
// constrained to depart after the buffered show end.
//
// # Basic Usage
//
// Load the two graphs and wire the external clients:
//
//	showsGraph, err := facts.Load("scraped_delamar_events.ttl")
//	if err != nil {
//		log.Fatal(err)
//	}
//	performers, err := facts.Load("performers_enriched.ttl")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	trips := trains.NewClient(baseURL, apiKey, 10*time.Second)
//	fallback := enrich.NewFallback("https://dbpedia.org/data", 5*time.Second)
//
//	planner := showtrip.NewPlanner(showsGraph, performers, trips, fallback, cfg, log)
//	if err := planner.Run(ctx, os.Stdin, os.Stdout); err != nil {
//		log.Fatal(err)
//	}
//
// The session is single-threaded and synchronous: every external call
// blocks until it returns or times out. Upstream failures degrade the
// affected step to "no data"; only invalid interactive input ends the
// session with an error.
package showtrip
