package sector

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/database/schema"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/dberr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/patch"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func selectColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentSector.ID, schema.ContentSector.Slug, schema.ContentSector.Title,
		schema.ContentSector.Description, schema.ContentSector.HeroImage, schema.ContentSector.SortOrder,
		schema.ContentSector.Active, schema.ContentSector.CreatedAt, schema.ContentSector.UpdatedAt,
	)
}

func scanSector(row interface{ Scan(...any) error }) (*Sector, error) {
	s := &Sector{}
	err := row.Scan(
		&s.ID, &s.Slug, &s.Title, &s.Description, &s.HeroImage,
		&s.SortOrder, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (repository *PostgresRepository) ListSectors(context context.Context, activeOnly bool) ([]*Sector, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, selectColumns(), schema.ContentSector.Table)
	if activeOnly {
		query += fmt.Sprintf(` WHERE %s = TRUE`, schema.ContentSector.Active)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC`, schema.ContentSector.SortOrder, schema.ContentSector.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sectors")
	}
	defer rows.Close()

	sectors := make([]*Sector, 0)
	for rows.Next() {
		s, err := scanSector(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_sector")
		}
		sectors = append(sectors, s)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_sectors")
	}
	return sectors, nil
}

func (repository *PostgresRepository) GetSector(context context.Context, id string) (*Sector, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.ContentSector.Table, schema.ContentSector.ID)

	s, err := scanSector(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_sector")
	}
	return s, nil
}

func (repository *PostgresRepository) GetSectorBySlug(context context.Context, slug string) (*Sector, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.ContentSector.Table, schema.ContentSector.Slug)

	s, err := scanSector(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_sector_by_slug")
	}
	return s, nil
}

func (repository *PostgresRepository) CreateSector(context context.Context, s *Sector) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentSector.Table,
		schema.ContentSector.ID, schema.ContentSector.Slug, schema.ContentSector.Title,
		schema.ContentSector.Description, schema.ContentSector.HeroImage, schema.ContentSector.SortOrder,
		schema.ContentSector.Active, schema.ContentSector.CreatedAt, schema.ContentSector.UpdatedAt,
		schema.ContentSector.CreatedAt, schema.ContentSector.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		s.ID, s.Slug, s.Title, s.Description, s.HeroImage, s.SortOrder, s.Active,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	return dberr.Wrap(err, "create_sector")
}

func (repository *PostgresRepository) UpdateSector(context context.Context, id string, p *Patch) (*Sector, error) {
	clauses := patch.NewClauses(id)
	patch.Add(clauses, schema.ContentSector.Slug, p.Slug)
	patch.Add(clauses, schema.ContentSector.Title, p.Title)
	patch.Add(clauses, schema.ContentSector.Description, p.Description)
	patch.Add(clauses, schema.ContentSector.HeroImage, p.HeroImage)
	patch.Add(clauses, schema.ContentSector.SortOrder, p.SortOrder)
	patch.Add(clauses, schema.ContentSector.Active, p.Active)

	if clauses.Empty() {
		return repository.GetSector(context, id)
	}
	clauses.AddRaw(schema.ContentSector.UpdatedAt + " = NOW()")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING %s`,
		schema.ContentSector.Table, clauses.Set(), schema.ContentSector.ID, selectColumns())

	s, err := scanSector(repository.db.QueryRow(context, query, clauses.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, "update_sector")
	}
	return s, nil
}

func (repository *PostgresRepository) DeleteSector(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentSector.Table, schema.ContentSector.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_sector")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
