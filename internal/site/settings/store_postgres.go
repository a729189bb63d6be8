package settings

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
	return fmt.Sprintf("%s, %s, %s, %s, %s",
		schema.SiteSetting.ID, schema.SiteSetting.Key, schema.SiteSetting.Value,
		schema.SiteSetting.Description, schema.SiteSetting.UpdatedAt,
	)
}

func scanSetting(row interface{ Scan(...any) error }) (*Setting, error) {
	s := &Setting{}
	err := row.Scan(&s.ID, &s.Key, &s.Value, &s.Description, &s.UpdatedAt)
	return s, err
}

func (repository *PostgresRepository) ListSettings(context context.Context) ([]*Setting, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		selectColumns(), schema.SiteSetting.Table, schema.SiteSetting.Key)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_settings")
	}
	defer rows.Close()

	settings := make([]*Setting, 0)
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_setting")
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_settings")
	}
	return settings, nil
}

func (repository *PostgresRepository) GetSettingByKey(context context.Context, key string) (*Setting, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.SiteSetting.Table, schema.SiteSetting.Key)

	s, err := scanSetting(repository.db.QueryRow(context, query, key))
	if err != nil {
		return nil, dberr.Wrap(err, "get_setting_by_key")
	}
	return s, nil
}

func (repository *PostgresRepository) UpsertSetting(context context.Context, s *Setting) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (%s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s
	`,
		schema.SiteSetting.Table,
		schema.SiteSetting.ID, schema.SiteSetting.Key, schema.SiteSetting.Value,
		schema.SiteSetting.Description, schema.SiteSetting.UpdatedAt,
		schema.SiteSetting.Key,
		schema.SiteSetting.Value, schema.SiteSetting.Value,
		schema.SiteSetting.Description, schema.SiteSetting.Description,
		schema.SiteSetting.UpdatedAt,
		schema.SiteSetting.ID, schema.SiteSetting.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		s.ID, s.Key, s.Value, s.Description,
	).Scan(&s.ID, &s.UpdatedAt)
	return dberr.Wrap(err, "upsert_setting")
}

func (repository *PostgresRepository) DeleteSettingByKey(context context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.SiteSetting.Table, schema.SiteSetting.Key)

	cmd, err := repository.db.Exec(context, query, key)
	if err != nil {
		return dberr.Wrap(err, "delete_setting")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
