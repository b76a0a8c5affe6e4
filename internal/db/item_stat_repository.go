package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/buildcraft/internal/data"
	"github.com/udisondev/buildcraft/internal/model"
)

// ItemStatRepository stores chest-normalized stat prefix bundles.
// Implements data.ItemStatSource.
type ItemStatRepository struct {
	db *pgxpool.Pool
}

var _ data.ItemStatSource = (*ItemStatRepository)(nil)

// NewItemStatRepository создаёт новый ItemStatRepository.
func NewItemStatRepository(db *pgxpool.Pool) *ItemStatRepository {
	return &ItemStatRepository{db: db}
}

// ItemStats implements data.ItemStatSource.
// Rows naming an unknown attribute are skipped with a warning.
func (r *ItemStatRepository) ItemStats(ctx context.Context) (map[string]model.StatBundle, error) {
	query := `
		SELECT name, attribute, value
		FROM item_stats
		ORDER BY name, attribute
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying item stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]model.StatBundle, 32)
	for rows.Next() {
		var (
			name, attrName string
			value          int32
		)
		if err := rows.Scan(&name, &attrName, &value); err != nil {
			return nil, fmt.Errorf("scanning item stat row: %w", err)
		}

		attr, ok := model.ParseAttribute(attrName)
		if !ok {
			slog.Warn("skipping item stat with unknown attribute", "prefix", name, "attribute", attrName)
			continue
		}
		b := out[name]
		out[name] = b.With(attr, b.Get(attr)+value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item stat rows: %w", err)
	}

	return out, nil
}

// SavePrefix replaces the stored bundle of one prefix. Zero attributes are not stored.
func (r *ItemStatRepository) SavePrefix(ctx context.Context, name string, b model.StatBundle) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `DELETE FROM item_stats WHERE name = $1`, name); err != nil {
		return fmt.Errorf("deleting item stats for %q: %w", name, err)
	}

	rows := make([][]any, 0, model.AttributeCount)
	for _, attr := range model.Attributes() {
		if v := b.Get(attr); v != 0 {
			rows = append(rows, []any{name, attr.String(), v})
		}
	}
	if len(rows) > 0 {
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"item_stats"},
			[]string{"name", "attribute", "value"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("inserting item stats for %q: %w", name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing item stats for %q: %w", name, err)
	}

	slog.Debug("saved item stats", "prefix", name, "attributes", len(rows))
	return nil
}
