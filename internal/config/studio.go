package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brisastudio/studio-booking-backend/internal/catalog"
	"github.com/brisastudio/studio-booking-backend/internal/schedule"
)

// StudioConfig is the optional YAML file describing the price list and
// weekly opening hours. Missing sections fall back to the built-in
// defaults.
type StudioConfig struct {
	Services []ServiceEntry      `yaml:"services"`
	Hours    map[int]*HoursEntry `yaml:"hours"` // weekday, Sunday=0 .. Saturday=6
}

type ServiceEntry struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Duration int     `yaml:"duration"`
	Price    float64 `yaml:"price"`
}

type HoursEntry struct {
	Open  string `yaml:"open"`  // HH:MM
	Close string `yaml:"close"` // HH:MM
}

// LoadStudio reads and validates a studio config file. An empty path
// returns (nil, nil): use defaults.
func LoadStudio(path string) (*StudioConfig, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read studio config: %w", err)
	}

	var sc StudioConfig
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parse studio config: %w", err)
	}

	for i, s := range sc.Services {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("studio config: service %d needs id and name", i)
		}
		if s.Duration <= 0 {
			return nil, fmt.Errorf("studio config: service %q needs a positive duration", s.ID)
		}
		if s.Price < 0 {
			return nil, fmt.Errorf("studio config: service %q has a negative price", s.ID)
		}
	}
	for wd := range sc.Hours {
		if wd < 0 || wd > 6 {
			return nil, fmt.Errorf("studio config: weekday %d out of range 0-6", wd)
		}
	}
	if _, err := sc.Week(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Catalog builds the service catalog, falling back to the default price
// list when the file defines no services.
func (sc *StudioConfig) Catalog() *catalog.Catalog {
	if sc == nil || len(sc.Services) == 0 {
		return catalog.Default()
	}
	services := make([]catalog.Service, len(sc.Services))
	for i, s := range sc.Services {
		services[i] = catalog.Service{
			ID:          s.ID,
			Name:        s.Name,
			DurationMin: s.Duration,
			Price:       s.Price,
		}
	}
	return catalog.New(services)
}

// Week builds the weekly hours table, falling back to the default table
// when the file defines no hours. Weekdays absent from the map are
// closed.
func (sc *StudioConfig) Week() (schedule.Week, error) {
	if sc == nil || len(sc.Hours) == 0 {
		return schedule.Default(), nil
	}

	var week schedule.Week
	for wd, h := range sc.Hours {
		if h == nil {
			continue // explicitly closed
		}
		open, err := schedule.ParseClock(h.Open)
		if err != nil {
			return week, fmt.Errorf("studio config: weekday %d open: %w", wd, err)
		}
		cls, err := schedule.ParseClock(h.Close)
		if err != nil {
			return week, fmt.Errorf("studio config: weekday %d close: %w", wd, err)
		}
		if open >= cls {
			return week, fmt.Errorf("studio config: weekday %d opens at or after close", wd)
		}
		week[wd] = &schedule.Window{Open: open, Close: cls}
	}
	return week, nil
}
