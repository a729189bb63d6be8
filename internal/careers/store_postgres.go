package careers

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

// # Positions

func positionColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.CareersPosition.ID, schema.CareersPosition.Title, schema.CareersPosition.Department,
		schema.CareersPosition.Location, schema.CareersPosition.Description, schema.CareersPosition.Open,
		schema.CareersPosition.SortOrder, schema.CareersPosition.CreatedAt, schema.CareersPosition.UpdatedAt,
	)
}

func scanPosition(row interface{ Scan(...any) error }) (*Position, error) {
	p := &Position{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Department, &p.Location, &p.Description,
		&p.Open, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (repository *PostgresRepository) ListPositions(context context.Context, openOnly bool) ([]*Position, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, positionColumns(), schema.CareersPosition.Table)
	if openOnly {
		query += fmt.Sprintf(` WHERE %s = TRUE`, schema.CareersPosition.Open)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC, %s DESC`, schema.CareersPosition.SortOrder, schema.CareersPosition.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_positions")
	}
	defer rows.Close()

	positions := make([]*Position, 0)
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_position")
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_positions")
	}
	return positions, nil
}

func (repository *PostgresRepository) GetPosition(context context.Context, id string) (*Position, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		positionColumns(), schema.CareersPosition.Table, schema.CareersPosition.ID)

	p, err := scanPosition(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_position")
	}
	return p, nil
}

func (repository *PostgresRepository) CreatePosition(context context.Context, p *Position) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CareersPosition.Table,
		schema.CareersPosition.ID, schema.CareersPosition.Title, schema.CareersPosition.Department,
		schema.CareersPosition.Location, schema.CareersPosition.Description, schema.CareersPosition.Open,
		schema.CareersPosition.SortOrder, schema.CareersPosition.CreatedAt, schema.CareersPosition.UpdatedAt,
		schema.CareersPosition.CreatedAt, schema.CareersPosition.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Title, p.Department, p.Location, p.Description, p.Open, p.SortOrder,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_position")
}

func (repository *PostgresRepository) UpdatePosition(context context.Context, id string, p *PositionPatch) (*Position, error) {
	clauses := patch.NewClauses(id)
	patch.Add(clauses, schema.CareersPosition.Title, p.Title)
	patch.Add(clauses, schema.CareersPosition.Department, p.Department)
	patch.Add(clauses, schema.CareersPosition.Location, p.Location)
	patch.Add(clauses, schema.CareersPosition.Description, p.Description)
	patch.Add(clauses, schema.CareersPosition.Open, p.Open)
	patch.Add(clauses, schema.CareersPosition.SortOrder, p.SortOrder)

	if clauses.Empty() {
		return repository.GetPosition(context, id)
	}
	clauses.AddRaw(schema.CareersPosition.UpdatedAt + " = NOW()")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING %s`,
		schema.CareersPosition.Table, clauses.Set(), schema.CareersPosition.ID, positionColumns())

	updated, err := scanPosition(repository.db.QueryRow(context, query, clauses.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, "update_position")
	}
	return updated, nil
}

func (repository *PostgresRepository) DeletePosition(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CareersPosition.Table, schema.CareersPosition.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_position")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Applications

func applicationColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		schema.CareersApplication.ID, schema.CareersApplication.PositionID, schema.CareersApplication.FullName,
		schema.CareersApplication.Email, schema.CareersApplication.Phone, schema.CareersApplication.CoverLetter,
		schema.CareersApplication.ResumeURL, schema.CareersApplication.CreatedAt,
	)
}

func scanApplication(row interface{ Scan(...any) error }) (*Application, error) {
	a := &Application{}
	err := row.Scan(
		&a.ID, &a.PositionID, &a.FullName, &a.Email, &a.Phone,
		&a.CoverLetter, &a.ResumeURL, &a.CreatedAt,
	)
	return a, err
}

func (repository *PostgresRepository) ListApplications(context context.Context, positionID string, limit, offset int) ([]*Application, int, error) {
	where := ""
	args := []any{}
	if positionID != "" {
		args = append(args, positionID)
		where = fmt.Sprintf(` WHERE %s = $1`, schema.CareersApplication.PositionID)
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CareersApplication.Table) + where
	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_applications")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, applicationColumns(), schema.CareersApplication.Table) + where +
		fmt.Sprintf(` ORDER BY %s DESC LIMIT $%d OFFSET $%d`, schema.CareersApplication.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_applications")
	}
	defer rows.Close()

	applications := make([]*Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_application")
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_applications")
	}
	return applications, total, nil
}

func (repository *PostgresRepository) CreateApplication(context context.Context, a *Application) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s
	`,
		schema.CareersApplication.Table,
		schema.CareersApplication.ID, schema.CareersApplication.PositionID, schema.CareersApplication.FullName,
		schema.CareersApplication.Email, schema.CareersApplication.Phone, schema.CareersApplication.CoverLetter,
		schema.CareersApplication.ResumeURL, schema.CareersApplication.CreatedAt,
		schema.CareersApplication.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.PositionID, a.FullName, a.Email, a.Phone, a.CoverLetter, a.ResumeURL,
	).Scan(&a.CreatedAt)
	return dberr.Wrap(err, "create_application")
}
