package seo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/database/schema"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func selectColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		schema.SiteSeoEntry.ID, schema.SiteSeoEntry.Route, schema.SiteSeoEntry.Title,
		schema.SiteSeoEntry.Description, schema.SiteSeoEntry.Keywords, schema.SiteSeoEntry.OgImage,
		schema.SiteSeoEntry.CreatedAt, schema.SiteSeoEntry.UpdatedAt,
	)
}

func scanEntry(row interface{ Scan(...any) error }) (*Entry, error) {
	e := &Entry{}
	err := row.Scan(
		&e.ID, &e.Route, &e.Title, &e.Description, &e.Keywords, &e.OgImage,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (repository *PostgresRepository) ListEntries(context context.Context) ([]*Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		selectColumns(), schema.SiteSeoEntry.Table, schema.SiteSeoEntry.Route)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_seo_entries")
	}
	defer rows.Close()

	entries := make([]*Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_seo_entry")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_seo_entries")
	}
	return entries, nil
}

func (repository *PostgresRepository) GetEntryByRoute(context context.Context, route string) (*Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.SiteSeoEntry.Table, schema.SiteSeoEntry.Route)

	e, err := scanEntry(repository.db.QueryRow(context, query, route))
	if err != nil {
		return nil, dberr.Wrap(err, "get_seo_entry_by_route")
	}
	return e, nil
}

func (repository *PostgresRepository) UpsertEntry(context context.Context, e *Entry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (%s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.SiteSeoEntry.Table,
		schema.SiteSeoEntry.ID, schema.SiteSeoEntry.Route, schema.SiteSeoEntry.Title,
		schema.SiteSeoEntry.Description, schema.SiteSeoEntry.Keywords, schema.SiteSeoEntry.OgImage,
		schema.SiteSeoEntry.CreatedAt, schema.SiteSeoEntry.UpdatedAt,
		schema.SiteSeoEntry.Route,
		schema.SiteSeoEntry.Title, schema.SiteSeoEntry.Title,
		schema.SiteSeoEntry.Description, schema.SiteSeoEntry.Description,
		schema.SiteSeoEntry.Keywords, schema.SiteSeoEntry.Keywords,
		schema.SiteSeoEntry.OgImage, schema.SiteSeoEntry.OgImage,
		schema.SiteSeoEntry.UpdatedAt,
		schema.SiteSeoEntry.ID, schema.SiteSeoEntry.CreatedAt, schema.SiteSeoEntry.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		e.ID, e.Route, e.Title, e.Description, e.Keywords, e.OgImage,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return dberr.Wrap(err, "upsert_seo_entry")
}

func (repository *PostgresRepository) DeleteEntryByRoute(context context.Context, route string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.SiteSeoEntry.Table, schema.SiteSeoEntry.Route)

	cmd, err := repository.db.Exec(context, query, route)
	if err != nil {
		return dberr.Wrap(err, "delete_seo_entry")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
