package team

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
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentTeamMember.ID, schema.ContentTeamMember.Name, schema.ContentTeamMember.Role,
		schema.ContentTeamMember.PhotoURL, schema.ContentTeamMember.Bio, schema.ContentTeamMember.SortOrder,
		schema.ContentTeamMember.Active, schema.ContentTeamMember.CreatedAt, schema.ContentTeamMember.UpdatedAt,
	)
}

func scanMember(row interface{ Scan(...any) error }) (*Member, error) {
	m := &Member{}
	err := row.Scan(
		&m.ID, &m.Name, &m.Role, &m.PhotoURL, &m.Bio,
		&m.SortOrder, &m.Active, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (repository *PostgresRepository) ListMembers(context context.Context, activeOnly bool) ([]*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, selectColumns(), schema.ContentTeamMember.Table)
	if activeOnly {
		query += fmt.Sprintf(` WHERE %s = TRUE`, schema.ContentTeamMember.Active)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC`, schema.ContentTeamMember.SortOrder, schema.ContentTeamMember.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_team_members")
	}
	defer rows.Close()

	members := make([]*Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_team_member")
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_team_members")
	}
	return members, nil
}

func (repository *PostgresRepository) GetMember(context context.Context, id string) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.ContentTeamMember.Table, schema.ContentTeamMember.ID)

	m, err := scanMember(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_team_member")
	}
	return m, nil
}

func (repository *PostgresRepository) CreateMember(context context.Context, m *Member) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentTeamMember.Table,
		schema.ContentTeamMember.ID, schema.ContentTeamMember.Name, schema.ContentTeamMember.Role,
		schema.ContentTeamMember.PhotoURL, schema.ContentTeamMember.Bio, schema.ContentTeamMember.SortOrder,
		schema.ContentTeamMember.Active, schema.ContentTeamMember.CreatedAt, schema.ContentTeamMember.UpdatedAt,
		schema.ContentTeamMember.CreatedAt, schema.ContentTeamMember.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		m.ID, m.Name, m.Role, m.PhotoURL, m.Bio, m.SortOrder, m.Active,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, "create_team_member")
}

func (repository *PostgresRepository) UpdateMember(context context.Context, m *Member) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentTeamMember.Table,
		schema.ContentTeamMember.Name, schema.ContentTeamMember.Role, schema.ContentTeamMember.PhotoURL,
		schema.ContentTeamMember.Bio, schema.ContentTeamMember.SortOrder, schema.ContentTeamMember.Active,
		schema.ContentTeamMember.UpdatedAt,
		schema.ContentTeamMember.ID,
		schema.ContentTeamMember.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		m.ID, m.Name, m.Role, m.PhotoURL, m.Bio, m.SortOrder, m.Active,
	).Scan(&m.UpdatedAt)
	return dberr.Wrap(err, "update_team_member")
}

func (repository *PostgresRepository) DeleteMember(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentTeamMember.Table, schema.ContentTeamMember.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_team_member")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
