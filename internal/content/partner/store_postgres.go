package partner

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
		schema.ContentPartner.ID, schema.ContentPartner.Name, schema.ContentPartner.LogoURL,
		schema.ContentPartner.WebsiteURL, schema.ContentPartner.SortOrder, schema.ContentPartner.Active,
		schema.ContentPartner.CreatedAt, schema.ContentPartner.UpdatedAt,
	)
}

func scanPartner(row interface{ Scan(...any) error }) (*Partner, error) {
	p := &Partner{}
	err := row.Scan(
		&p.ID, &p.Name, &p.LogoURL, &p.WebsiteURL,
		&p.SortOrder, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (repository *PostgresRepository) ListPartners(context context.Context, activeOnly bool) ([]*Partner, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, selectColumns(), schema.ContentPartner.Table)
	if activeOnly {
		query += fmt.Sprintf(` WHERE %s = TRUE`, schema.ContentPartner.Active)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC`, schema.ContentPartner.SortOrder, schema.ContentPartner.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_partners")
	}
	defer rows.Close()

	partners := make([]*Partner, 0)
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_partner")
		}
		partners = append(partners, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_partners")
	}
	return partners, nil
}

func (repository *PostgresRepository) GetPartner(context context.Context, id string) (*Partner, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.ContentPartner.Table, schema.ContentPartner.ID)

	p, err := scanPartner(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_partner")
	}
	return p, nil
}

func (repository *PostgresRepository) CreatePartner(context context.Context, p *Partner) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentPartner.Table,
		schema.ContentPartner.ID, schema.ContentPartner.Name, schema.ContentPartner.LogoURL,
		schema.ContentPartner.WebsiteURL, schema.ContentPartner.SortOrder, schema.ContentPartner.Active,
		schema.ContentPartner.CreatedAt, schema.ContentPartner.UpdatedAt,
		schema.ContentPartner.CreatedAt, schema.ContentPartner.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Name, p.LogoURL, p.WebsiteURL, p.SortOrder, p.Active,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_partner")
}

func (repository *PostgresRepository) UpdatePartner(context context.Context, p *Partner) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentPartner.Table,
		schema.ContentPartner.Name, schema.ContentPartner.LogoURL, schema.ContentPartner.WebsiteURL,
		schema.ContentPartner.SortOrder, schema.ContentPartner.Active, schema.ContentPartner.UpdatedAt,
		schema.ContentPartner.ID,
		schema.ContentPartner.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Name, p.LogoURL, p.WebsiteURL, p.SortOrder, p.Active,
	).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_partner")
}

func (repository *PostgresRepository) DeletePartner(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentPartner.Table, schema.ContentPartner.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_partner")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
