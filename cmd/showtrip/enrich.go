package showtrip

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rdvelde/showtrip/pkg/config"
	"github.com/rdvelde/showtrip/pkg/enrich"
	"github.com/rdvelde/showtrip/pkg/facts"
	"github.com/rdvelde/showtrip/pkg/logger"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich performer names from the public knowledge base",
	Long: `Enrich extracts performer names from the show graph's labels, looks each
one up on the knowledge base's SPARQL endpoint, and writes the collected
facts as the performer graph. Queries run sequentially with a mandatory
pacing delay.`,
	RunE: runEnrich,
}

func init() {
	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Options{
		Level:   logger.ParseLevel(cfg.Log.Level),
		NoColor: cfg.Log.NoColor,
	})

	showGraph, err := facts.Load(cfg.Planner.ShowsGraph)
	if err != nil {
		return fmt.Errorf("load show graph: %w", err)
	}

	var labels []string
	for _, p := range showGraph.Pairs(facts.RDFSLabel) {
		labels = append(labels, p.Object.String())
	}
	names := enrich.PerformerNames(labels)
	log.Info("performer names extracted", "count", len(names))

	wikidata, err := enrich.NewWikidata(cfg.Enrich.SPARQLEndpoint, cfg.Enrich.Language,
		time.Duration(cfg.Enrich.TimeoutSeconds)*time.Second)
	if err != nil {
		return err
	}
	source := enrich.NewBreakerSource(wikidata, cfg.CircuitBreaker, log, "wikidata")

	e := enrich.NewEnricher(source, time.Duration(cfg.Enrich.PaceMillis)*time.Millisecond, log)
	g, err := e.EnrichAll(cmd.Context(), names)
	if err != nil {
		return err
	}

	if err := g.Save(cfg.Enrich.OutputFile); err != nil {
		return err
	}
	log.Info("performer graph written", "file", cfg.Enrich.OutputFile, "facts", g.Len())
	return nil
}
