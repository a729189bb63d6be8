package hero

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
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentHeroSlide.ID, schema.ContentHeroSlide.Title, schema.ContentHeroSlide.Subtitle,
		schema.ContentHeroSlide.ImageURL, schema.ContentHeroSlide.CtaLabel, schema.ContentHeroSlide.CtaURL,
		schema.ContentHeroSlide.SortOrder, schema.ContentHeroSlide.Active,
		schema.ContentHeroSlide.CreatedAt, schema.ContentHeroSlide.UpdatedAt,
	)
}

func scanSlide(row interface{ Scan(...any) error }) (*Slide, error) {
	s := &Slide{}
	err := row.Scan(
		&s.ID, &s.Title, &s.Subtitle, &s.ImageURL, &s.CtaLabel, &s.CtaURL,
		&s.SortOrder, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (repository *PostgresRepository) ListSlides(context context.Context, activeOnly bool) ([]*Slide, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, selectColumns(), schema.ContentHeroSlide.Table)
	if activeOnly {
		query += fmt.Sprintf(` WHERE %s = TRUE`, schema.ContentHeroSlide.Active)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC`, schema.ContentHeroSlide.SortOrder, schema.ContentHeroSlide.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_hero_slides")
	}
	defer rows.Close()

	slides := make([]*Slide, 0)
	for rows.Next() {
		s, err := scanSlide(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_hero_slide")
		}
		slides = append(slides, s)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_hero_slides")
	}
	return slides, nil
}

func (repository *PostgresRepository) GetSlide(context context.Context, id string) (*Slide, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.ContentHeroSlide.Table, schema.ContentHeroSlide.ID)

	s, err := scanSlide(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_hero_slide")
	}
	return s, nil
}

func (repository *PostgresRepository) CreateSlide(context context.Context, s *Slide) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentHeroSlide.Table,
		schema.ContentHeroSlide.ID, schema.ContentHeroSlide.Title, schema.ContentHeroSlide.Subtitle,
		schema.ContentHeroSlide.ImageURL, schema.ContentHeroSlide.CtaLabel, schema.ContentHeroSlide.CtaURL,
		schema.ContentHeroSlide.SortOrder, schema.ContentHeroSlide.Active,
		schema.ContentHeroSlide.CreatedAt, schema.ContentHeroSlide.UpdatedAt,
		schema.ContentHeroSlide.CreatedAt, schema.ContentHeroSlide.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		s.ID, s.Title, s.Subtitle, s.ImageURL, s.CtaLabel, s.CtaURL, s.SortOrder, s.Active,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	return dberr.Wrap(err, "create_hero_slide")
}

func (repository *PostgresRepository) UpdateSlide(context context.Context, s *Slide) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentHeroSlide.Table,
		schema.ContentHeroSlide.Title, schema.ContentHeroSlide.Subtitle, schema.ContentHeroSlide.ImageURL,
		schema.ContentHeroSlide.CtaLabel, schema.ContentHeroSlide.CtaURL, schema.ContentHeroSlide.SortOrder,
		schema.ContentHeroSlide.Active, schema.ContentHeroSlide.UpdatedAt,
		schema.ContentHeroSlide.ID,
		schema.ContentHeroSlide.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		s.ID, s.Title, s.Subtitle, s.ImageURL, s.CtaLabel, s.CtaURL, s.SortOrder, s.Active,
	).Scan(&s.UpdatedAt)
	return dberr.Wrap(err, "update_hero_slide")
}

func (repository *PostgresRepository) DeleteSlide(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentHeroSlide.Table, schema.ContentHeroSlide.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_hero_slide")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
