package section

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
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		schema.ContentSection.ID, schema.ContentSection.Key, schema.ContentSection.Title,
		schema.ContentSection.Body, schema.ContentSection.Payload,
		schema.ContentSection.CreatedAt, schema.ContentSection.UpdatedAt,
	)
}

func scanSection(row interface{ Scan(...any) error }) (*Section, error) {
	s := &Section{}
	err := row.Scan(&s.ID, &s.Key, &s.Title, &s.Body, &s.Payload, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (repository *PostgresRepository) ListSections(context context.Context) ([]*Section, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		selectColumns(), schema.ContentSection.Table, schema.ContentSection.Key)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sections")
	}
	defer rows.Close()

	sections := make([]*Section, 0)
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_section")
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_sections")
	}
	return sections, nil
}

func (repository *PostgresRepository) GetSectionByKey(context context.Context, key string) (*Section, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.ContentSection.Table, schema.ContentSection.Key)

	s, err := scanSection(repository.db.QueryRow(context, query, key))
	if err != nil {
		return nil, dberr.Wrap(err, "get_section_by_key")
	}
	return s, nil
}

func (repository *PostgresRepository) UpsertSection(context context.Context, s *Section) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (%s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.ContentSection.Table,
		schema.ContentSection.ID, schema.ContentSection.Key, schema.ContentSection.Title,
		schema.ContentSection.Body, schema.ContentSection.Payload,
		schema.ContentSection.CreatedAt, schema.ContentSection.UpdatedAt,
		schema.ContentSection.Key,
		schema.ContentSection.Title, schema.ContentSection.Title,
		schema.ContentSection.Body, schema.ContentSection.Body,
		schema.ContentSection.Payload, schema.ContentSection.Payload,
		schema.ContentSection.UpdatedAt,
		schema.ContentSection.ID, schema.ContentSection.CreatedAt, schema.ContentSection.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		s.ID, s.Key, s.Title, s.Body, s.Payload,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return dberr.Wrap(err, "upsert_section")
}

func (repository *PostgresRepository) DeleteSectionByKey(context context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentSection.Table, schema.ContentSection.Key)

	cmd, err := repository.db.Exec(context, query, key)
	if err != nil {
		return dberr.Wrap(err, "delete_section")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
