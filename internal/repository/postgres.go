package repository

import (
	"context"
	"fmt"

	"github.com/Shivanand-hulikatti/eventease-catalog/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads seed events from the events table. It is read-only:
// registrations made against the resulting Catalog are never written back.
type PostgresSource struct {
	db *pgxpool.Pool
}

// NewPostgresSource constructs a PostgresSource.
func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

// Load returns all rows ordered by id.
func (s *PostgresSource) Load(ctx context.Context) ([]model.Event, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, date, location, description, capacity, registered_count
		 FROM events
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Location, &e.Description, &e.Capacity, &e.RegisteredCount); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Date = e.Date.UTC()
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
