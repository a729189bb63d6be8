package bathroom

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
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

// # Categories

func categoryColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		schema.CatalogBathroomCategory.ID, schema.CatalogBathroomCategory.Name, schema.CatalogBathroomCategory.Description,
		schema.CatalogBathroomCategory.SortOrder, schema.CatalogBathroomCategory.Active,
		schema.CatalogBathroomCategory.CreatedAt, schema.CatalogBathroomCategory.UpdatedAt,
	)
}

func scanCategory(row interface{ Scan(...any) error }) (*Category, error) {
	c := &Category{}
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.SortOrder, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (repository *PostgresRepository) ListCategories(context context.Context, activeOnly bool) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, categoryColumns(), schema.CatalogBathroomCategory.Table)
	if activeOnly {
		query += fmt.Sprintf(` WHERE %s = TRUE`, schema.CatalogBathroomCategory.Active)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC`, schema.CatalogBathroomCategory.SortOrder, schema.CatalogBathroomCategory.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_bathroom_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_bathroom_category")
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_bathroom_categories")
	}
	return categories, nil
}

func (repository *PostgresRepository) GetCategory(context context.Context, id string) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		categoryColumns(), schema.CatalogBathroomCategory.Table, schema.CatalogBathroomCategory.ID)

	c, err := scanCategory(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_bathroom_category")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateCategory(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogBathroomCategory.Table,
		schema.CatalogBathroomCategory.ID, schema.CatalogBathroomCategory.Name, schema.CatalogBathroomCategory.Description,
		schema.CatalogBathroomCategory.SortOrder, schema.CatalogBathroomCategory.Active,
		schema.CatalogBathroomCategory.CreatedAt, schema.CatalogBathroomCategory.UpdatedAt,
		schema.CatalogBathroomCategory.CreatedAt, schema.CatalogBathroomCategory.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.Name, c.Description, c.SortOrder, c.Active,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_bathroom_category")
}

func (repository *PostgresRepository) UpdateCategory(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogBathroomCategory.Table,
		schema.CatalogBathroomCategory.Name, schema.CatalogBathroomCategory.Description,
		schema.CatalogBathroomCategory.SortOrder, schema.CatalogBathroomCategory.Active,
		schema.CatalogBathroomCategory.UpdatedAt,
		schema.CatalogBathroomCategory.ID,
		schema.CatalogBathroomCategory.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.Name, c.Description, c.SortOrder, c.Active,
	).Scan(&c.UpdatedAt)
	return dberr.Wrap(err, "update_bathroom_category")
}

func (repository *PostgresRepository) DeleteCategory(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogBathroomCategory.Table, schema.CatalogBathroomCategory.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_bathroom_category")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Products

func productColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.CatalogBathroomProduct.ID, schema.CatalogBathroomProduct.CategoryID, schema.CatalogBathroomProduct.Name,
		schema.CatalogBathroomProduct.Description, schema.CatalogBathroomProduct.ImageURL, schema.CatalogBathroomProduct.Price,
		schema.CatalogBathroomProduct.Specifications, schema.CatalogBathroomProduct.SortOrder, schema.CatalogBathroomProduct.Active,
		schema.CatalogBathroomProduct.CreatedAt, schema.CatalogBathroomProduct.UpdatedAt,
	)
}

// scanProduct decodes the JSONB specifications column at the storage
// boundary: a row whose stored block no longer parses reads back as a 422.
func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	p := &Product{}
	var specsRaw []byte
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.ImageURL, &p.Price,
		&specsRaw, &p.SortOrder, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(specsRaw) > 0 {
		if err := json.Unmarshal(specsRaw, &p.Specifications); err != nil {
			return nil, apperr.Deserialization("Bathroom product", err)
		}
	}
	return p, nil
}

func (repository *PostgresRepository) ListProducts(context context.Context, categoryID string, activeOnly bool) ([]*Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE TRUE`, productColumns(), schema.CatalogBathroomProduct.Table)
	args := []any{}

	if categoryID != "" {
		args = append(args, categoryID)
		query += fmt.Sprintf(` AND %s = $%d`, schema.CatalogBathroomProduct.CategoryID, len(args))
	}
	if activeOnly {
		query += fmt.Sprintf(` AND %s = TRUE`, schema.CatalogBathroomProduct.Active)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC`, schema.CatalogBathroomProduct.SortOrder, schema.CatalogBathroomProduct.CreatedAt)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_bathroom_products")
	}
	defer rows.Close()

	products := make([]*Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			if apperr.IsAppError(err) {
				return nil, err
			}
			return nil, dberr.Wrap(err, "scan_bathroom_product")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_bathroom_products")
	}
	return products, nil
}

func (repository *PostgresRepository) GetProduct(context context.Context, id string) (*Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		productColumns(), schema.CatalogBathroomProduct.Table, schema.CatalogBathroomProduct.ID)

	p, err := scanProduct(repository.db.QueryRow(context, query, id))
	if err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, dberr.Wrap(err, "get_bathroom_product")
	}
	return p, nil
}

func (repository *PostgresRepository) CreateProduct(context context.Context, p *Product) error {
	specsRaw, err := json.Marshal(p.Specifications)
	if err != nil {
		return apperr.Internal(err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogBathroomProduct.Table,
		schema.CatalogBathroomProduct.ID, schema.CatalogBathroomProduct.CategoryID, schema.CatalogBathroomProduct.Name,
		schema.CatalogBathroomProduct.Description, schema.CatalogBathroomProduct.ImageURL, schema.CatalogBathroomProduct.Price,
		schema.CatalogBathroomProduct.Specifications, schema.CatalogBathroomProduct.SortOrder, schema.CatalogBathroomProduct.Active,
		schema.CatalogBathroomProduct.CreatedAt, schema.CatalogBathroomProduct.UpdatedAt,
		schema.CatalogBathroomProduct.CreatedAt, schema.CatalogBathroomProduct.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		p.ID, p.CategoryID, p.Name, p.Description, p.ImageURL, p.Price, specsRaw, p.SortOrder, p.Active,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_bathroom_product")
}

func (repository *PostgresRepository) UpdateProduct(context context.Context, id string, p *ProductPatch) (*Product, error) {
	clauses := patch.NewClauses(id)
	patch.Add(clauses, schema.CatalogBathroomProduct.CategoryID, p.CategoryID)
	patch.Add(clauses, schema.CatalogBathroomProduct.Name, p.Name)
	patch.Add(clauses, schema.CatalogBathroomProduct.Description, p.Description)
	patch.Add(clauses, schema.CatalogBathroomProduct.ImageURL, p.ImageURL)
	patch.Add(clauses, schema.CatalogBathroomProduct.Price, p.Price)
	patch.Add(clauses, schema.CatalogBathroomProduct.SortOrder, p.SortOrder)
	patch.Add(clauses, schema.CatalogBathroomProduct.Active, p.Active)

	// Specifications re-marshal to raw JSONB before hitting the builder.
	if v, ok := p.Specifications.Value(); ok {
		specsRaw, err := json.Marshal(v)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		patch.Add(clauses, schema.CatalogBathroomProduct.Specifications, patch.Set(specsRaw))
	} else if p.Specifications.Null() {
		clauses.AddRaw(schema.CatalogBathroomProduct.Specifications + " = NULL")
	}

	if clauses.Empty() {
		return repository.GetProduct(context, id)
	}
	clauses.AddRaw(schema.CatalogBathroomProduct.UpdatedAt + " = NOW()")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING %s`,
		schema.CatalogBathroomProduct.Table, clauses.Set(), schema.CatalogBathroomProduct.ID, productColumns())

	updated, err := scanProduct(repository.db.QueryRow(context, query, clauses.Args()...))
	if err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, dberr.Wrap(err, "update_bathroom_product")
	}
	return updated, nil
}

func (repository *PostgresRepository) DeleteProduct(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogBathroomProduct.Table, schema.CatalogBathroomProduct.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_bathroom_product")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Installations

func installationColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		schema.CatalogBathroomInstallation.ID, schema.CatalogBathroomInstallation.Title, schema.CatalogBathroomInstallation.Steps,
		schema.CatalogBathroomInstallation.SortOrder, schema.CatalogBathroomInstallation.Active,
		schema.CatalogBathroomInstallation.CreatedAt, schema.CatalogBathroomInstallation.UpdatedAt,
	)
}

func scanInstallation(row interface{ Scan(...any) error }) (*Installation, error) {
	i := &Installation{}
	var stepsRaw []byte
	err := row.Scan(&i.ID, &i.Title, &stepsRaw, &i.SortOrder, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(stepsRaw) > 0 {
		if err := json.Unmarshal(stepsRaw, &i.Steps); err != nil {
			return nil, apperr.Deserialization("Installation guide", err)
		}
	}
	return i, nil
}

func (repository *PostgresRepository) ListInstallations(context context.Context, activeOnly bool) ([]*Installation, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, installationColumns(), schema.CatalogBathroomInstallation.Table)
	if activeOnly {
		query += fmt.Sprintf(` WHERE %s = TRUE`, schema.CatalogBathroomInstallation.Active)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC`, schema.CatalogBathroomInstallation.SortOrder, schema.CatalogBathroomInstallation.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_bathroom_installations")
	}
	defer rows.Close()

	installations := make([]*Installation, 0)
	for rows.Next() {
		i, err := scanInstallation(rows)
		if err != nil {
			if apperr.IsAppError(err) {
				return nil, err
			}
			return nil, dberr.Wrap(err, "scan_bathroom_installation")
		}
		installations = append(installations, i)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_bathroom_installations")
	}
	return installations, nil
}

func (repository *PostgresRepository) GetInstallation(context context.Context, id string) (*Installation, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		installationColumns(), schema.CatalogBathroomInstallation.Table, schema.CatalogBathroomInstallation.ID)

	i, err := scanInstallation(repository.db.QueryRow(context, query, id))
	if err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, dberr.Wrap(err, "get_bathroom_installation")
	}
	return i, nil
}

func (repository *PostgresRepository) CreateInstallation(context context.Context, i *Installation) error {
	stepsRaw, err := json.Marshal(i.Steps)
	if err != nil {
		return apperr.Internal(err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogBathroomInstallation.Table,
		schema.CatalogBathroomInstallation.ID, schema.CatalogBathroomInstallation.Title, schema.CatalogBathroomInstallation.Steps,
		schema.CatalogBathroomInstallation.SortOrder, schema.CatalogBathroomInstallation.Active,
		schema.CatalogBathroomInstallation.CreatedAt, schema.CatalogBathroomInstallation.UpdatedAt,
		schema.CatalogBathroomInstallation.CreatedAt, schema.CatalogBathroomInstallation.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		i.ID, i.Title, stepsRaw, i.SortOrder, i.Active,
	).Scan(&i.CreatedAt, &i.UpdatedAt)
	return dberr.Wrap(err, "create_bathroom_installation")
}

func (repository *PostgresRepository) UpdateInstallation(context context.Context, i *Installation) error {
	stepsRaw, err := json.Marshal(i.Steps)
	if err != nil {
		return apperr.Internal(err)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogBathroomInstallation.Table,
		schema.CatalogBathroomInstallation.Title, schema.CatalogBathroomInstallation.Steps,
		schema.CatalogBathroomInstallation.SortOrder, schema.CatalogBathroomInstallation.Active,
		schema.CatalogBathroomInstallation.UpdatedAt,
		schema.CatalogBathroomInstallation.ID,
		schema.CatalogBathroomInstallation.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		i.ID, i.Title, stepsRaw, i.SortOrder, i.Active,
	).Scan(&i.UpdatedAt)
	return dberr.Wrap(err, "update_bathroom_installation")
}

func (repository *PostgresRepository) DeleteInstallation(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogBathroomInstallation.Table, schema.CatalogBathroomInstallation.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_bathroom_installation")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
