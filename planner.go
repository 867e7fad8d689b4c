package showtrip

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rdvelde/showtrip/pkg/config"
	"github.com/rdvelde/showtrip/pkg/facts"
	"github.com/rdvelde/showtrip/pkg/shows"
	"github.com/rdvelde/showtrip/pkg/temporal"
	"github.com/rdvelde/showtrip/pkg/trains"
)

// TripSearcher issues one directional trip query.
type TripSearcher interface {
	Search(ctx context.Context, req trains.TripRequest) ([]trains.Trip, error)
}

// Describer is the best-effort knowledge base fallback.
type Describer interface {
	Describe(ctx context.Context, name string) (string, bool)
}

// Planner runs one interactive planning session. Both graphs are passed in
// explicitly and never mutated; all derived state is session-scoped.
type Planner struct {
	shows      *facts.Graph
	performers *facts.Graph
	trips      TripSearcher
	fallback   Describer
	matchers   []shows.Matcher
	cfg        config.PlannerConfig
	log        *slog.Logger
}

// NewPlanner creates a planner over the two fact graphs.
func NewPlanner(showGraph, performerGraph *facts.Graph, trips TripSearcher, fallback Describer, cfg config.PlannerConfig, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.Default()
	}
	return &Planner{
		shows:      showGraph,
		performers: performerGraph,
		trips:      trips,
		fallback:   fallback,
		matchers:   shows.DefaultMatchers(),
		cfg:        cfg,
		log:        log,
	}
}

// Run drives one session end to end: show selection, performer
// reconciliation, date selection, window computation and the two trip
// searches. Invalid numeric input returns ErrInvalidInput and ends the
// session; upstream failures are reported and degrade to empty results.
func (p *Planner) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	log := p.log.With("session", uuid.NewString()[:8])
	in := bufio.NewScanner(r)

	showList := shows.Load(p.shows, p.cfg.Languages, p.cfg.AssumedYear)
	if len(showList) == 0 {
		fmt.Fprintln(w, "No shows found in the show graph.")
		return nil
	}
	log.Debug("show graph reconciled", "shows", len(showList))

	fmt.Fprintln(w, "Available shows:")
	for i, s := range showList {
		fmt.Fprintf(w, "%d. %s\n", i+1, s.Label)
	}

	choice, err := p.readIndex(in, w, "Select a show (number): ", len(showList))
	if err != nil {
		return err
	}
	selected := showList[choice]
	fmt.Fprintf(w, "\nSelected: %s\n", selected.Label)

	p.showEnrichment(ctx, w, selected.Label)

	if len(selected.Performances) == 0 {
		fmt.Fprintln(w, "\nNo valid performance dates for this show.")
		return nil
	}

	fmt.Fprintln(w, "\nPerformances:")
	lang := ""
	if len(p.cfg.Languages) > 0 {
		lang = p.cfg.Languages[0]
	}
	for i, perf := range selected.Performances {
		fmt.Fprintf(w, "%d. %s\n", i+1, temporal.FormatHuman(perf.At, lang))
	}

	dateChoice, err := p.readIndex(in, w, "Select a date (number): ", len(selected.Performances))
	if err != nil {
		return err
	}
	performance := selected.Performances[dateChoice]

	departure := p.readLine(in, w, "Departure station: ")
	buffer := readBufferMinutes(in, w)

	minutes := shows.ShowMinutes(p.shows, selected)
	window := temporal.NewWindow(performance.At, minutes, buffer)
	log.Info("show window computed",
		"start", window.Start.Format("15:04"),
		"minutes", window.Minutes,
		"buffered_end", window.BufferedEnd.Format("15:04"))

	fmt.Fprintf(w, "\nShow start: %s\n", window.Start.Format("15:04"))
	fmt.Fprintf(w, "Duration: %d min\n", window.Minutes)
	fmt.Fprintf(w, "Expected end: %s\n", window.End.Format("15:04"))
	fmt.Fprintf(w, "Return search starts after: %s\n", window.BufferedEnd.Format("15:04"))

	p.searchOutbound(ctx, w, departure, window)
	p.searchReturn(ctx, w, departure, window)
	return nil
}

// showEnrichment prints performer facts for the selected show, falling
// back to the external knowledge base, then to "no info". Nothing here can
// fail the session.
func (p *Planner) showEnrichment(ctx context.Context, w io.Writer, label string) {
	fmt.Fprintln(w, "\nEnriched info:")

	if performer, ok := shows.MatchPerformer(label, p.performers, p.matchers); ok {
		for _, name := range performer.Order {
			fmt.Fprintf(w, "- %s: %s\n", name, performer.Facts[name])
		}
		return
	}

	if p.fallback != nil {
		if desc, ok := p.fallback.Describe(ctx, shows.CleanLabel(label)); ok {
			fmt.Fprintf(w, "- %s\n", desc)
			return
		}
	}
	fmt.Fprintln(w, "- No additional info found.")
}

func (p *Planner) searchOutbound(ctx context.Context, w io.Writer, departure string, window temporal.Window) {
	all, err := p.trips.Search(ctx, trains.TripRequest{
		From:      departure,
		To:        p.cfg.ArrivalStation,
		Date:      window.Start.Format("2006-01-02"),
		Time:      window.Start.Format("15:04"),
		Direction: trains.ArriveBy,
	})
	if err != nil {
		p.log.Warn("outbound search failed", "error", err)
		fmt.Fprintln(w, "\nNo outgoing trains found.")
		return
	}

	kept := trains.FilterOutbound(all, window.Start, p.cfg.MaxTrips)
	if len(kept) == 0 {
		fmt.Fprintln(w, "\nNo trips found that arrive before the show starts.")
		return
	}

	fmt.Fprintln(w, "\nOutgoing train options:")
	renderTrips(w, kept)
}

func (p *Planner) searchReturn(ctx context.Context, w io.Writer, departure string, window temporal.Window) {
	all, err := p.trips.Search(ctx, trains.TripRequest{
		From:      p.cfg.ArrivalStation,
		To:        departure,
		Date:      window.BufferedEnd.Format("2006-01-02"),
		Time:      window.BufferedEnd.Format("15:04"),
		Direction: trains.DepartAfter,
	})
	if err != nil {
		p.log.Warn("return search failed", "error", err)
		fmt.Fprintln(w, "\nNo return trip data available.")
		return
	}

	kept := trains.FilterReturn(all, window.BufferedEnd, p.cfg.MaxTrips)
	if len(kept) == 0 {
		fmt.Fprintln(w, "\nNo return trips found that depart after the show ends.")
		return
	}

	fmt.Fprintf(w, "\nReturn trip options (after %s):\n", window.BufferedEnd.Format("15:04"))
	renderTrips(w, kept)
}

func renderTrips(w io.Writer, kept []trains.Trip) {
	for i, trip := range kept {
		dep := trip.Departure()
		arr := trip.Arrival()

		depTime, derr := trains.PlannedTime(dep.Planned)
		arrTime, aerr := trains.PlannedTime(arr.Planned)
		if derr != nil || aerr != nil {
			continue
		}

		fmt.Fprintf(w, "%d. %s %s -> %s %s", i+1,
			dep.Name, depTime.Format("15:04"),
			arr.Name, arrTime.Format("15:04"))
		if dur, err := trains.FormatDuration(dep.Planned, arr.Planned); err == nil {
			fmt.Fprintf(w, " (%s)", dur)
		}
		fmt.Fprintln(w)
	}
}

// readIndex reads a 1-indexed selection. Non-numeric or out-of-range input
// is a terminal session error, not retried.
func (p *Planner) readIndex(in *bufio.Scanner, w io.Writer, prompt string, n int) (int, error) {
	line := p.readLine(in, w, prompt)
	choice, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, line)
	}
	if choice < 1 || choice > n {
		return 0, fmt.Errorf("%w: %d is out of range 1..%d", ErrInvalidInput, choice, n)
	}
	return choice - 1, nil
}

func (p *Planner) readLine(in *bufio.Scanner, w io.Writer, prompt string) string {
	fmt.Fprint(w, prompt)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

// readBufferMinutes reads the optional post-show buffer; anything that is
// not a plain non-negative number defaults to zero.
func readBufferMinutes(in *bufio.Scanner, w io.Writer) int {
	fmt.Fprint(w, "Minutes to hang around after the show? (default 0): ")
	if !in.Scan() {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
