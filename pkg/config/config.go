// Package config loads application configuration from file, environment
// variables and defaults using viper.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Planner configuration
	Planner PlannerConfig `mapstructure:"planner" yaml:"planner"`

	// Trains configuration
	Trains TrainsConfig `mapstructure:"trains" yaml:"trains"`

	// Enrich configuration
	Enrich EnrichConfig `mapstructure:"enrich" yaml:"enrich"`

	// Scrape configuration
	Scrape ScrapeConfig `mapstructure:"scrape" yaml:"scrape"`

	// CircuitBreaker configuration
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker" yaml:"circuit_breaker"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level   string `mapstructure:"level" yaml:"level"`
	NoColor bool   `mapstructure:"no_color" yaml:"no_color"`
}

// PlannerConfig holds the interactive session parameters.
type PlannerConfig struct {
	// ShowsGraph and PerformersGraph are the two Turtle input files.
	ShowsGraph      string `mapstructure:"shows_graph" yaml:"shows_graph"`
	PerformersGraph string `mapstructure:"performers_graph" yaml:"performers_graph"`

	// AssumedYear is injected into parsed performance dates. The scraped
	// source omits the year, so dates near a year boundary can land in the
	// wrong year.
	AssumedYear int `mapstructure:"assumed_year" yaml:"assumed_year"`

	// ArrivalStation is the station serving the theater.
	ArrivalStation string `mapstructure:"arrival_station" yaml:"arrival_station"`

	// Languages are tried in order when parsing performance date text.
	Languages []string `mapstructure:"languages" yaml:"languages"`

	// DefaultShowMinutes substitutes for missing or unparseable durations.
	DefaultShowMinutes int `mapstructure:"default_show_minutes" yaml:"default_show_minutes"`

	// MaxTrips caps each rendered trip list.
	MaxTrips int `mapstructure:"max_trips" yaml:"max_trips"`
}

// TrainsConfig holds trip provider configuration.
type TrainsConfig struct {
	BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
	APIKey         string `mapstructure:"api_key" yaml:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// EnrichConfig holds knowledge base configuration.
type EnrichConfig struct {
	SPARQLEndpoint string `mapstructure:"sparql_endpoint" yaml:"sparql_endpoint"`
	FallbackURL    string `mapstructure:"fallback_url" yaml:"fallback_url"`

	// PaceMillis is the mandatory delay before each SPARQL query. The
	// endpoint is shared public infrastructure; this is a pacing contract,
	// not an optimization.
	PaceMillis             int    `mapstructure:"pace_millis" yaml:"pace_millis"`
	TimeoutSeconds         int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	FallbackTimeoutSeconds int    `mapstructure:"fallback_timeout_seconds" yaml:"fallback_timeout_seconds"`
	Language               string `mapstructure:"language" yaml:"language"`
	OutputFile             string `mapstructure:"output_file" yaml:"output_file"`
}

// ScrapeConfig holds scraper configuration.
type ScrapeConfig struct {
	StartURL   string `mapstructure:"start_url" yaml:"start_url"`
	OutputFile string `mapstructure:"output_file" yaml:"output_file"`

	// Workers bounds the number of show pages scraped concurrently. Each
	// worker gets an isolated browser context.
	Workers           int `mapstructure:"workers" yaml:"workers"`
	NavTimeoutSeconds int `mapstructure:"nav_timeout_seconds" yaml:"nav_timeout_seconds"`
}

// CircuitBreakerConfig holds configuration for circuit breaking around the
// SPARQL endpoint.
type CircuitBreakerConfig struct {
	Enabled          bool    `mapstructure:"enabled" yaml:"enabled"`
	MaxRequests      uint32  `mapstructure:"max_requests" yaml:"max_requests"`
	Interval         int     `mapstructure:"interval" yaml:"interval"` // in seconds
	Timeout          int     `mapstructure:"timeout" yaml:"timeout"`   // in seconds
	ReadyToTripRatio float64 `mapstructure:"ready_to_trip_ratio" yaml:"ready_to_trip_ratio"`
}

// Load loads configuration from file and environment variables.
func Load() (*Config, error) {
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	overrideWithEnv(config)

	return config, nil
}

// Dump renders the effective configuration as YAML.
func (c *Config) Dump() ([]byte, error) {
	return yaml.Marshal(c)
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.no_color", false)

	viper.SetDefault("planner.shows_graph", "scraped_delamar_events.ttl")
	viper.SetDefault("planner.performers_graph", "performers_enriched.ttl")
	viper.SetDefault("planner.assumed_year", 2025)
	viper.SetDefault("planner.arrival_station", "Amsterdam Centraal")
	viper.SetDefault("planner.languages", []string{"nl", "en"})
	viper.SetDefault("planner.default_show_minutes", 90)
	viper.SetDefault("planner.max_trips", 5)

	viper.SetDefault("trains.base_url", "https://gateway.apiportal.ns.nl/reisinformatie-api/api/v3")
	viper.SetDefault("trains.timeout_seconds", 10)

	viper.SetDefault("enrich.sparql_endpoint", "https://query.wikidata.org/sparql")
	viper.SetDefault("enrich.fallback_url", "https://dbpedia.org/data")
	viper.SetDefault("enrich.pace_millis", 1500)
	viper.SetDefault("enrich.timeout_seconds", 60)
	viper.SetDefault("enrich.fallback_timeout_seconds", 5)
	viper.SetDefault("enrich.language", "en")
	viper.SetDefault("enrich.output_file", "performers_enriched.ttl")

	viper.SetDefault("scrape.start_url", "https://www.delamar.nl/voorstellingen/")
	viper.SetDefault("scrape.output_file", "scraped_delamar_events.ttl")
	viper.SetDefault("scrape.workers", 4)
	viper.SetDefault("scrape.nav_timeout_seconds", 60)

	viper.SetDefault("circuit_breaker.enabled", false)
	viper.SetDefault("circuit_breaker.max_requests", 1)
	viper.SetDefault("circuit_breaker.interval", 60)
	viper.SetDefault("circuit_breaker.timeout", 120)
	viper.SetDefault("circuit_breaker.ready_to_trip_ratio", 0.6)
}

// overrideWithEnv overrides config with environment variables.
func overrideWithEnv(config *Config) {
	if key := os.Getenv("NS_API_KEY"); key != "" {
		config.Trains.APIKey = key
	}
	if endpoint := os.Getenv("SPARQL_ENDPOINT"); endpoint != "" {
		config.Enrich.SPARQLEndpoint = endpoint
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}
}
