package listsource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/upb/solid-lab/contracts"
	"go.uber.org/zap"
)

// Postgres serves the sequence stored in a table, ordered by its
// position column. The table is expected to have (item TEXT,
// position INT) columns.
type Postgres struct {
	name   string
	db     *sql.DB
	table  string
	logger *zap.Logger
}

var _ contracts.ListSource = (*Postgres)(nil)

// NewPostgres creates a Postgres-backed list source reading from table.
func NewPostgres(name string, db *sql.DB, table string, logger *zap.Logger) *Postgres {
	return &Postgres{
		name:   name,
		db:     db,
		table:  table,
		logger: logger,
	}
}

// Name returns the provider name.
func (s *Postgres) Name() string {
	return s.name
}

// Items returns the table rows in position order.
func (s *Postgres) Items(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT item FROM %s ORDER BY position ASC", pq.QuoteIdentifier(s.table))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query list table %s: %w", s.table, err)
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("scan list row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate list rows: %w", err)
	}

	s.logger.Debug("loaded items from postgres",
		zap.String("provider", s.name),
		zap.String("table", s.table),
		zap.Int("count", len(items)))

	return items, nil
}
