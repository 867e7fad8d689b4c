// Package trains searches and filters train itineraries around a show's
// time window.
//
// The client wraps the NS Reisinformatie trips endpoint. One request runs
// per direction: outbound trips constrained to arrive before the show
// starts, return trips constrained to depart after the buffered show end.
// Upstream failures surface as errors the session reports and then
// continues from with an empty list; they never abort the program.
package trains

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Direction selects how the provider interprets the requested time.
type Direction int

const (
	// ArriveBy treats the time as a latest-arrival constraint.
	ArriveBy Direction = iota

	// DepartAfter treats the time as an earliest-departure constraint.
	DepartAfter
)

func (d Direction) String() string {
	if d == ArriveBy {
		return "arrive-by"
	}
	return "depart-after"
}

// TripRequest is one directional trip query.
type TripRequest struct {
	From      string
	To        string
	Date      string // ISO date, e.g. 2025-06-01
	Time      string // HH:MM
	Direction Direction
}

// Stop is one endpoint of a leg.
type Stop struct {
	Name    string `json:"name"`
	Planned string `json:"plannedDateTime"`
}

// Leg is one segment of an itinerary.
type Leg struct {
	Origin      Stop `json:"origin"`
	Destination Stop `json:"destination"`
}

// Trip is one itinerary as returned by the provider. Provider ordering is
// preserved; trips are ephemeral and never persisted.
type Trip struct {
	Legs []Leg `json:"legs"`
}

// Departure returns the first leg's origin.
func (t Trip) Departure() Stop {
	return t.Legs[0].Origin
}

// Arrival returns the last leg's destination.
func (t Trip) Arrival() Stop {
	return t.Legs[len(t.Legs)-1].Destination
}

type tripsResponse struct {
	Trips []Trip `json:"trips"`
}

// Client calls the trip provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a trip provider client. timeout bounds each request.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search issues one trip query and returns the provider's itineraries in
// provider order. Trips without legs are dropped at decode time. A network
// failure or non-success status returns an error; the caller reports it and
// continues with no trips.
func (c *Client) Search(ctx context.Context, req TripRequest) ([]Trip, error) {
	q := url.Values{}
	q.Set("fromStation", req.From)
	q.Set("toStation", req.To)
	q.Set("dateTime", fmt.Sprintf("%sT%s:00", req.Date, req.Time))
	switch req.Direction {
	case ArriveBy:
		q.Set("searchForArrival", "true")
	case DepartAfter:
		q.Set("searchForDeparture", "true")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/trips?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build trip request: %w", err)
	}
	httpReq.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("trip request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("trip request: status %d: %s", resp.StatusCode, body)
	}

	var decoded tripsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode trip response: %w", err)
	}

	trips := decoded.Trips[:0]
	for _, t := range decoded.Trips {
		if len(t.Legs) > 0 {
			trips = append(trips, t)
		}
	}
	return trips, nil
}
