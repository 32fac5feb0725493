package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Shivanand-hulikatti/eventease-catalog/internal/model"
	"gopkg.in/yaml.v3"
)

// ErrEmptySeed is returned when a source yields no events.
var ErrEmptySeed = errors.New("seed source contains no events")

// Source yields the records a Catalog is seeded with.
type Source interface {
	Load(ctx context.Context) ([]model.Event, error)
}

// StaticSource serves the built-in seed list.
type StaticSource struct{}

// Load returns DefaultSeed.
func (StaticSource) Load(context.Context) ([]model.Event, error) {
	return DefaultSeed(), nil
}

// FileSource reads seed events from a YAML document of the form
//
//	events:
//	  - id: 1
//	    name: Go Meetup
//	    date: 2026-06-01T18:00:00Z
//	    ...
type FileSource struct {
	Path string
}

type seedFile struct {
	Events []model.Event `yaml:"events"`
}

// Load parses the file at s.Path.
func (s FileSource) Load(ctx context.Context) ([]model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return parseSeed(raw)
}

func parseSeed(raw []byte) ([]model.Event, error) {
	var doc seedFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	if len(doc.Events) == 0 {
		return nil, ErrEmptySeed
	}
	return doc.Events, nil
}

// Load builds a Catalog from src.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	events, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrEmptySeed
	}
	return NewCatalog(events), nil
}
