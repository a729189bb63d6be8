package news

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
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentNewsArticle.ID, schema.ContentNewsArticle.Slug, schema.ContentNewsArticle.Title,
		schema.ContentNewsArticle.Excerpt, schema.ContentNewsArticle.Body, schema.ContentNewsArticle.CoverImage,
		schema.ContentNewsArticle.Published, schema.ContentNewsArticle.PublishedAt,
		schema.ContentNewsArticle.CreatedAt, schema.ContentNewsArticle.UpdatedAt,
	)
}

func scanArticle(row interface{ Scan(...any) error }) (*Article, error) {
	a := &Article{}
	err := row.Scan(
		&a.ID, &a.Slug, &a.Title, &a.Excerpt, &a.Body, &a.CoverImage,
		&a.Published, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (repository *PostgresRepository) ListArticles(context context.Context, publishedOnly bool, limit, offset int) ([]*Article, int, error) {
	where := ""
	if publishedOnly {
		where = fmt.Sprintf(` WHERE %s = TRUE`, schema.ContentNewsArticle.Published)
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.ContentNewsArticle.Table) + where
	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_news_articles")
	}

	// Published items sort by publication date, drafts by creation date.
	query := fmt.Sprintf(`SELECT %s FROM %s`, selectColumns(), schema.ContentNewsArticle.Table) + where +
		fmt.Sprintf(` ORDER BY COALESCE(%s, %s) DESC LIMIT $1 OFFSET $2`,
			schema.ContentNewsArticle.PublishedAt, schema.ContentNewsArticle.CreatedAt)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_news_articles")
	}
	defer rows.Close()

	articles := make([]*Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_news_article")
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_news_articles")
	}
	return articles, total, nil
}

func (repository *PostgresRepository) LatestArticles(context context.Context, limit int) ([]*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = TRUE
		ORDER BY %s DESC
		LIMIT $1
	`,
		selectColumns(), schema.ContentNewsArticle.Table,
		schema.ContentNewsArticle.Published, schema.ContentNewsArticle.PublishedAt,
	)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "latest_news_articles")
	}
	defer rows.Close()

	articles := make([]*Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_news_article")
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "latest_news_articles")
	}
	return articles, nil
}

func (repository *PostgresRepository) GetArticle(context context.Context, id string) (*Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.ContentNewsArticle.Table, schema.ContentNewsArticle.ID)

	a, err := scanArticle(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_news_article")
	}
	return a, nil
}

func (repository *PostgresRepository) GetArticleBySlug(context context.Context, slug string, publishedOnly bool) (*Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns(), schema.ContentNewsArticle.Table, schema.ContentNewsArticle.Slug)
	if publishedOnly {
		query += fmt.Sprintf(` AND %s = TRUE`, schema.ContentNewsArticle.Published)
	}

	a, err := scanArticle(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_news_article_by_slug")
	}
	return a, nil
}

func (repository *PostgresRepository) CreateArticle(context context.Context, a *Article) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CASE WHEN $7 THEN NOW() END, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.ContentNewsArticle.Table,
		schema.ContentNewsArticle.ID, schema.ContentNewsArticle.Slug, schema.ContentNewsArticle.Title,
		schema.ContentNewsArticle.Excerpt, schema.ContentNewsArticle.Body, schema.ContentNewsArticle.CoverImage,
		schema.ContentNewsArticle.Published, schema.ContentNewsArticle.PublishedAt,
		schema.ContentNewsArticle.CreatedAt, schema.ContentNewsArticle.UpdatedAt,
		schema.ContentNewsArticle.PublishedAt, schema.ContentNewsArticle.CreatedAt, schema.ContentNewsArticle.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Slug, a.Title, a.Excerpt, a.Body, a.CoverImage, a.Published,
	).Scan(&a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_news_article")
}

func (repository *PostgresRepository) UpdateArticle(context context.Context, id string, p *Patch) (*Article, error) {
	clauses := patch.NewClauses(id)
	patch.Add(clauses, schema.ContentNewsArticle.Slug, p.Slug)
	patch.Add(clauses, schema.ContentNewsArticle.Title, p.Title)
	patch.Add(clauses, schema.ContentNewsArticle.Excerpt, p.Excerpt)
	patch.Add(clauses, schema.ContentNewsArticle.Body, p.Body)
	patch.Add(clauses, schema.ContentNewsArticle.CoverImage, p.CoverImage)
	patch.Add(clauses, schema.ContentNewsArticle.Published, p.Published)

	// First transition to published stamps the publication date; it is
	// never reset afterwards.
	if v, ok := p.Published.Value(); ok && v {
		clauses.AddRaw(fmt.Sprintf("%s = COALESCE(%s, NOW())",
			schema.ContentNewsArticle.PublishedAt, schema.ContentNewsArticle.PublishedAt))
	}

	if clauses.Empty() {
		return repository.GetArticle(context, id)
	}
	clauses.AddRaw(schema.ContentNewsArticle.UpdatedAt + " = NOW()")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING %s`,
		schema.ContentNewsArticle.Table, clauses.Set(), schema.ContentNewsArticle.ID, selectColumns())

	a, err := scanArticle(repository.db.QueryRow(context, query, clauses.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, "update_news_article")
	}
	return a, nil
}

func (repository *PostgresRepository) DeleteArticle(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentNewsArticle.Table, schema.ContentNewsArticle.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_news_article")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
