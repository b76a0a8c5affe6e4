package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/buildcraft/internal/refdata"
)

// ReferenceRepository serves specializations and skill palettes from PostgreSQL.
// Implements refdata.Source.
type ReferenceRepository struct {
	db *pgxpool.Pool
}

var _ refdata.Source = (*ReferenceRepository)(nil)

// NewReferenceRepository создаёт новый ReferenceRepository.
func NewReferenceRepository(db *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// Specialization implements refdata.Source.
// Unknown ids return refdata.ErrNotFound.
func (r *ReferenceRepository) Specialization(ctx context.Context, id int) (refdata.Specialization, error) {
	query := `
		SELECT id, name, profession, elite, major_traits
		FROM specializations
		WHERE id = $1
	`

	var (
		spec   refdata.Specialization
		traits []int32
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&spec.ID, &spec.Name, &spec.Profession, &spec.Elite, &traits)
	if errors.Is(err, pgx.ErrNoRows) {
		return refdata.Specialization{}, fmt.Errorf("specialization %d: %w", id, refdata.ErrNotFound)
	}
	if err != nil {
		return refdata.Specialization{}, fmt.Errorf("querying specialization %d: %w", id, err)
	}

	spec.MajorTraits = make([]int, len(traits))
	for i, t := range traits {
		spec.MajorTraits[i] = int(t)
	}
	return spec, nil
}

// ProfessionPalette implements refdata.Source.
// A profession without rows returns refdata.ErrNotFound.
func (r *ReferenceRepository) ProfessionPalette(ctx context.Context, profession string) (map[int]int, error) {
	query := `
		SELECT palette_id, skill_id
		FROM profession_palettes
		WHERE profession = $1
	`

	rows, err := r.db.Query(ctx, query, strings.ToLower(profession))
	if err != nil {
		return nil, fmt.Errorf("querying palette for %q: %w", profession, err)
	}
	defer rows.Close()

	palette := make(map[int]int, 64)
	for rows.Next() {
		var paletteID, skillID int32
		if err := rows.Scan(&paletteID, &skillID); err != nil {
			return nil, fmt.Errorf("scanning palette row: %w", err)
		}
		palette[int(paletteID)] = int(skillID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating palette rows: %w", err)
	}

	if len(palette) == 0 {
		return nil, fmt.Errorf("palette for %q: %w", profession, refdata.ErrNotFound)
	}
	return palette, nil
}

// Import upserts specializations and replaces the palettes of the given professions
// in a single transaction.
func (r *ReferenceRepository) Import(ctx context.Context, specs []refdata.Specialization, palettes map[string]map[int]int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if len(specs) > 0 {
		batch := &pgx.Batch{}
		for _, s := range specs {
			traits := make([]int32, len(s.MajorTraits))
			for i, t := range s.MajorTraits {
				traits[i] = int32(t)
			}
			batch.Queue(
				`INSERT INTO specializations (id, name, profession, elite, major_traits)
				 VALUES ($1, $2, $3, $4, $5)
				 ON CONFLICT (id) DO UPDATE SET
				  name=$2, profession=$3, elite=$4, major_traits=$5`,
				s.ID, s.Name, s.Profession, s.Elite, traits,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for range specs {
			if _, err := br.Exec(); err != nil {
				br.Close() //nolint:errcheck
				return fmt.Errorf("upserting specialization batch: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("close specialization batch: %w", err)
		}
	}

	for prof, palette := range palettes {
		if err := r.replacePaletteTx(ctx, tx, prof, palette); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing reference import: %w", err)
	}

	slog.Info("imported reference data",
		"specializations", len(specs),
		"palettes", len(palettes))
	return nil
}

// replacePaletteTx rewrites one profession palette within tx (full replace).
func (r *ReferenceRepository) replacePaletteTx(ctx context.Context, tx pgx.Tx, profession string, palette map[int]int) error {
	profession = strings.ToLower(profession)
	if _, err := tx.Exec(ctx, `DELETE FROM profession_palettes WHERE profession = $1`, profession); err != nil {
		return fmt.Errorf("deleting palette for %q: %w", profession, err)
	}
	if len(palette) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(palette))
	for paletteID, skillID := range palette {
		rows = append(rows, []any{profession, int32(paletteID), int32(skillID)})
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"profession_palettes"},
		[]string{"profession", "palette_id", "skill_id"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("inserting palette for %q: %w", profession, err)
	}
	return nil
}
