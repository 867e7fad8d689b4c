// Package scrape collects show facts from the theater's listing site with a
// headless browser.
//
// The listing page links to one page per show; each show page needs
// JavaScript rendering before its performance dates exist in the DOM. Show
// pages are fetched by a bounded worker pool, one isolated browsing context
// per page, with an aggregation barrier before the graph is serialized.
// Ordering between shows is irrelevant; the steps within one page task
// (navigate, wait for dynamic content, extract) stay sequential.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/sync/errgroup"

	"github.com/rdvelde/showtrip/pkg/facts"
)

// titleSuffix is appended by the site to every page title.
const titleSuffix = " - DeLaMar"

var timeTokenRe = regexp.MustCompile(`\b\d{2}:\d{2}\b`)

// ShowPage is the raw extraction from one show page.
type ShowPage struct {
	URL      string
	Title    string
	Duration string   // empty when the page lists none
	Dates    []string // "<data-date>T<HH:MM>" per performance block
}

// Scraper drives the headless browser.
type Scraper struct {
	startURL   string
	workers    int
	navTimeout time.Duration
	log        *slog.Logger
}

// New creates a scraper. workers bounds how many show pages render
// concurrently; each gets its own browsing context.
func New(startURL string, workers int, navTimeout time.Duration, log *slog.Logger) *Scraper {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Scraper{startURL: startURL, workers: workers, navTimeout: navTimeout, log: log}
}

const collectLinksJS = `Array.from(document.querySelectorAll("a[href^='/voorstellingen/']")).map(a => a.getAttribute("href"))`

const extractDurationJS = `(() => {
	const dropdown = Array.from(document.querySelectorAll("button"))
		.find(b => b.innerText.includes("Praktische informatie"));
	if (dropdown) dropdown.click();
	for (const row of document.querySelectorAll("table tr")) {
		const th = row.querySelector("th");
		const td = row.querySelector("td");
		if (th && td && th.innerText.trim().toLowerCase().includes("duur")) {
			return td.innerText.trim();
		}
	}
	return "";
})()`

const extractDatesJS = `Array.from(document.querySelectorAll(".production__date")).map(el => ({
	date: el.getAttribute("data-date") || "",
	text: el.innerText.trim()
}))`

type DateBlock struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// Run scrapes the whole listing and returns the show graph.
func (s *Scraper) Run(ctx context.Context) (*facts.Graph, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	urls, err := s.collectShowURLs(allocCtx)
	if err != nil {
		return nil, fmt.Errorf("collect show links: %w", err)
	}
	s.log.Info("show pages found", "count", len(urls))

	var (
		mu    sync.Mutex
		pages []ShowPage
	)

	grp, grpCtx := errgroup.WithContext(allocCtx)
	grp.SetLimit(s.workers)
	for _, u := range urls {
		grp.Go(func() error {
			page, err := s.scrapeShow(grpCtx, u)
			if err != nil {
				// One broken page must not sink the run.
				s.log.Warn("show page skipped", "url", u, "error", err)
				return nil
			}
			mu.Lock()
			pages = append(pages, page)
			mu.Unlock()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	s.log.Info("scrape complete", "shows", len(pages))
	return BuildGraph(pages)
}

// collectShowURLs extracts the deduplicated show page URLs from the listing.
func (s *Scraper) collectShowURLs(allocCtx context.Context) ([]string, error) {
	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, s.navTimeout)
	defer cancelTimeout()

	var hrefs []string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(s.startURL),
		chromedp.Sleep(3*time.Second),
		chromedp.Evaluate(collectLinksJS, &hrefs),
	)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(s.startURL)
	if err != nil {
		return nil, err
	}
	return FilterShowLinks(base, hrefs), nil
}

// scrapeShow renders one show page in a fresh browsing context and extracts
// its facts.
func (s *Scraper) scrapeShow(allocCtx context.Context, pageURL string) (ShowPage, error) {
	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, s.navTimeout)
	defer cancelTimeout()

	var title, duration string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.Sleep(3*time.Second),
		chromedp.Title(&title),
		chromedp.Evaluate(extractDurationJS, &duration),
	)
	if err != nil {
		return ShowPage{}, err
	}

	// Performance blocks render late; their absence is a page without
	// scheduled dates, not an error.
	var blocks []DateBlock
	dateCtx, cancelDates := context.WithTimeout(browserCtx, 10*time.Second)
	defer cancelDates()
	err = chromedp.Run(dateCtx,
		chromedp.WaitVisible(".production__date", chromedp.ByQuery),
		chromedp.Sleep(time.Second),
		chromedp.Evaluate(extractDatesJS, &blocks),
	)
	if err != nil {
		s.log.Debug("no performance blocks", "url", pageURL)
		blocks = nil
	}

	page := ShowPage{
		URL:      pageURL,
		Title:    CleanTitle(title),
		Duration: strings.TrimSpace(duration),
		Dates:    AssembleDates(blocks),
	}
	s.log.Info("show page scraped", "url", pageURL, "dates", len(page.Dates))
	return page, nil
}

// FilterShowLinks keeps fragment-free show links below the listing path,
// deduplicated and absolutized against the listing host.
func FilterShowLinks(base *url.URL, hrefs []string) []string {
	listingPath := strings.TrimRight(base.Path, "/") + "/"
	seen := make(map[string]bool)
	var out []string
	for _, href := range hrefs {
		if !strings.HasPrefix(href, listingPath) || href == listingPath {
			continue
		}
		if strings.Contains(href, "#") {
			continue
		}
		abs := base.Scheme + "://" + base.Host + strings.TrimRight(href, "/")
		if seen[abs] {
			continue
		}
		seen[abs] = true
		out = append(out, abs)
	}
	sort.Strings(out)
	return out
}

// CleanTitle strips the site suffix from a page title.
func CleanTitle(title string) string {
	return strings.TrimSpace(strings.ReplaceAll(title, titleSuffix, ""))
}

// AssembleDates combines each block's machine-readable date attribute with
// the first HH:MM token in its text. Blocks missing either part are
// skipped.
func AssembleDates(blocks []DateBlock) []string {
	var dates []string
	for _, b := range blocks {
		if b.Date == "" {
			continue
		}
		tok := timeTokenRe.FindString(b.Text)
		if tok == "" {
			continue
		}
		dates = append(dates, b.Date+"T"+tok)
	}
	return dates
}

// BuildGraph serializes scraped pages into the show graph vocabulary.
// Durations the site marks as unknown ("niet bekend") are dropped.
func BuildGraph(pages []ShowPage) (*facts.Graph, error) {
	sort.Slice(pages, func(i, j int) bool { return pages[i].URL < pages[j].URL })

	g := facts.NewGraph()
	for _, p := range pages {
		if p.Title == "" {
			continue
		}
		if err := g.AddFact(p.URL, facts.RDFSLabel, facts.MustLiteral(p.Title)); err != nil {
			return nil, err
		}
		if p.Duration != "" && !strings.Contains(strings.ToLower(p.Duration), "niet bekend") {
			if err := g.AddFact(p.URL, facts.SchemaDuration, facts.MustLiteral(p.Duration)); err != nil {
				return nil, err
			}
		}
		for _, d := range p.Dates {
			if err := g.AddFact(p.URL, facts.SchemaStartDate, facts.MustLiteral(d)); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
