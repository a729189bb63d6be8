package tile

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

// # Collections

func collectionColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.CatalogTileCollection.ID, schema.CatalogTileCollection.SectorID, schema.CatalogTileCollection.Name,
		schema.CatalogTileCollection.Series, schema.CatalogTileCollection.Size, schema.CatalogTileCollection.Finish,
		schema.CatalogTileCollection.ImageURL, schema.CatalogTileCollection.SortOrder, schema.CatalogTileCollection.Active,
		schema.CatalogTileCollection.CreatedAt, schema.CatalogTileCollection.UpdatedAt,
	)
}

func scanCollection(row interface{ Scan(...any) error }) (*Collection, error) {
	c := &Collection{}
	err := row.Scan(
		&c.ID, &c.SectorID, &c.Name, &c.Series, &c.Size, &c.Finish,
		&c.ImageURL, &c.SortOrder, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (repository *PostgresRepository) ListCollections(context context.Context, sectorID string, activeOnly bool) ([]*Collection, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE TRUE`, collectionColumns(), schema.CatalogTileCollection.Table)
	args := []any{}

	if sectorID != "" {
		args = append(args, sectorID)
		query += fmt.Sprintf(` AND %s = $%d`, schema.CatalogTileCollection.SectorID, len(args))
	}
	if activeOnly {
		query += fmt.Sprintf(` AND %s = TRUE`, schema.CatalogTileCollection.Active)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC`, schema.CatalogTileCollection.SortOrder, schema.CatalogTileCollection.CreatedAt)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tile_collections")
	}
	defer rows.Close()

	collections := make([]*Collection, 0)
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_tile_collection")
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_tile_collections")
	}
	return collections, nil
}

func (repository *PostgresRepository) GetCollection(context context.Context, id string) (*Collection, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		collectionColumns(), schema.CatalogTileCollection.Table, schema.CatalogTileCollection.ID)

	c, err := scanCollection(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_tile_collection")
	}
	return c, nil
}

func (repository *PostgresRepository) GetCollectionsByIDs(context context.Context, ids []string, activeOnly bool) ([]*Collection, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`,
		collectionColumns(), schema.CatalogTileCollection.Table, schema.CatalogTileCollection.ID)
	if activeOnly {
		query += fmt.Sprintf(` AND %s = TRUE`, schema.CatalogTileCollection.Active)
	}

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tile_collections_by_ids")
	}
	defer rows.Close()

	collections := make([]*Collection, 0)
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_tile_collection")
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "get_tile_collections_by_ids")
	}
	return collections, nil
}

func (repository *PostgresRepository) CreateCollection(context context.Context, c *Collection) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogTileCollection.Table,
		schema.CatalogTileCollection.ID, schema.CatalogTileCollection.SectorID, schema.CatalogTileCollection.Name,
		schema.CatalogTileCollection.Series, schema.CatalogTileCollection.Size, schema.CatalogTileCollection.Finish,
		schema.CatalogTileCollection.ImageURL, schema.CatalogTileCollection.SortOrder, schema.CatalogTileCollection.Active,
		schema.CatalogTileCollection.CreatedAt, schema.CatalogTileCollection.UpdatedAt,
		schema.CatalogTileCollection.CreatedAt, schema.CatalogTileCollection.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.SectorID, c.Name, c.Series, c.Size, c.Finish, c.ImageURL, c.SortOrder, c.Active,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, "create_tile_collection")
}

func (repository *PostgresRepository) UpdateCollection(context context.Context, id string, p *CollectionPatch) (*Collection, error) {
	clauses := patch.NewClauses(id)
	patch.Add(clauses, schema.CatalogTileCollection.SectorID, p.SectorID)
	patch.Add(clauses, schema.CatalogTileCollection.Name, p.Name)
	patch.Add(clauses, schema.CatalogTileCollection.Series, p.Series)
	patch.Add(clauses, schema.CatalogTileCollection.Size, p.Size)
	patch.Add(clauses, schema.CatalogTileCollection.Finish, p.Finish)
	patch.Add(clauses, schema.CatalogTileCollection.ImageURL, p.ImageURL)
	patch.Add(clauses, schema.CatalogTileCollection.SortOrder, p.SortOrder)
	patch.Add(clauses, schema.CatalogTileCollection.Active, p.Active)

	if clauses.Empty() {
		return repository.GetCollection(context, id)
	}
	clauses.AddRaw(schema.CatalogTileCollection.UpdatedAt + " = NOW()")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING %s`,
		schema.CatalogTileCollection.Table, clauses.Set(), schema.CatalogTileCollection.ID, collectionColumns())

	c, err := scanCollection(repository.db.QueryRow(context, query, clauses.Args()...))
	if err != nil {
		return nil, dberr.Wrap(err, "update_tile_collection")
	}
	return c, nil
}

func (repository *PostgresRepository) DeleteCollection(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogTileCollection.Table, schema.CatalogTileCollection.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tile_collection")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Applications

func applicationColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.CatalogTileApplication.ID, schema.CatalogTileApplication.Name, schema.CatalogTileApplication.Description,
		schema.CatalogTileApplication.ImageURL, schema.CatalogTileApplication.SuitableTileIDs,
		schema.CatalogTileApplication.SortOrder, schema.CatalogTileApplication.Active,
		schema.CatalogTileApplication.CreatedAt, schema.CatalogTileApplication.UpdatedAt,
	)
}

func scanApplication(row interface{ Scan(...any) error }) (*Application, error) {
	a := &Application{}
	err := row.Scan(
		&a.ID, &a.Name, &a.Description, &a.ImageURL, &a.SuitableTileIDs,
		&a.SortOrder, &a.Active, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (repository *PostgresRepository) ListApplications(context context.Context, activeOnly bool) ([]*Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, applicationColumns(), schema.CatalogTileApplication.Table)
	if activeOnly {
		query += fmt.Sprintf(` WHERE %s = TRUE`, schema.CatalogTileApplication.Active)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC`, schema.CatalogTileApplication.SortOrder, schema.CatalogTileApplication.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tile_applications")
	}
	defer rows.Close()

	applications := make([]*Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_tile_application")
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_tile_applications")
	}
	return applications, nil
}

func (repository *PostgresRepository) GetApplication(context context.Context, id string) (*Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		applicationColumns(), schema.CatalogTileApplication.Table, schema.CatalogTileApplication.ID)

	a, err := scanApplication(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_tile_application")
	}
	return a, nil
}

func (repository *PostgresRepository) CreateApplication(context context.Context, a *Application) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogTileApplication.Table,
		schema.CatalogTileApplication.ID, schema.CatalogTileApplication.Name, schema.CatalogTileApplication.Description,
		schema.CatalogTileApplication.ImageURL, schema.CatalogTileApplication.SuitableTileIDs,
		schema.CatalogTileApplication.SortOrder, schema.CatalogTileApplication.Active,
		schema.CatalogTileApplication.CreatedAt, schema.CatalogTileApplication.UpdatedAt,
		schema.CatalogTileApplication.CreatedAt, schema.CatalogTileApplication.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Name, a.Description, a.ImageURL, a.SuitableTileIDs, a.SortOrder, a.Active,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_tile_application")
}

func (repository *PostgresRepository) UpdateApplication(context context.Context, a *Application) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogTileApplication.Table,
		schema.CatalogTileApplication.Name, schema.CatalogTileApplication.Description,
		schema.CatalogTileApplication.ImageURL, schema.CatalogTileApplication.SuitableTileIDs,
		schema.CatalogTileApplication.SortOrder, schema.CatalogTileApplication.Active,
		schema.CatalogTileApplication.UpdatedAt,
		schema.CatalogTileApplication.ID,
		schema.CatalogTileApplication.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Name, a.Description, a.ImageURL, a.SuitableTileIDs, a.SortOrder, a.Active,
	).Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_tile_application")
}

func (repository *PostgresRepository) DeleteApplication(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogTileApplication.Table, schema.CatalogTileApplication.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tile_application")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Installations

func installationColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		schema.CatalogTileInstallation.ID, schema.CatalogTileInstallation.Title, schema.CatalogTileInstallation.Steps,
		schema.CatalogTileInstallation.SortOrder, schema.CatalogTileInstallation.Active,
		schema.CatalogTileInstallation.CreatedAt, schema.CatalogTileInstallation.UpdatedAt,
	)
}

// scanInstallation decodes the JSONB steps column at the storage boundary:
// a row whose stored steps no longer parse reads back as a 422, not a 500.
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
	query := fmt.Sprintf(`SELECT %s FROM %s`, installationColumns(), schema.CatalogTileInstallation.Table)
	if activeOnly {
		query += fmt.Sprintf(` WHERE %s = TRUE`, schema.CatalogTileInstallation.Active)
	}
	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC`, schema.CatalogTileInstallation.SortOrder, schema.CatalogTileInstallation.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tile_installations")
	}
	defer rows.Close()

	installations := make([]*Installation, 0)
	for rows.Next() {
		i, err := scanInstallation(rows)
		if err != nil {
			if apperr.IsAppError(err) {
				return nil, err
			}
			return nil, dberr.Wrap(err, "scan_tile_installation")
		}
		installations = append(installations, i)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_tile_installations")
	}
	return installations, nil
}

func (repository *PostgresRepository) GetInstallation(context context.Context, id string) (*Installation, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		installationColumns(), schema.CatalogTileInstallation.Table, schema.CatalogTileInstallation.ID)

	i, err := scanInstallation(repository.db.QueryRow(context, query, id))
	if err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, dberr.Wrap(err, "get_tile_installation")
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
		schema.CatalogTileInstallation.Table,
		schema.CatalogTileInstallation.ID, schema.CatalogTileInstallation.Title, schema.CatalogTileInstallation.Steps,
		schema.CatalogTileInstallation.SortOrder, schema.CatalogTileInstallation.Active,
		schema.CatalogTileInstallation.CreatedAt, schema.CatalogTileInstallation.UpdatedAt,
		schema.CatalogTileInstallation.CreatedAt, schema.CatalogTileInstallation.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		i.ID, i.Title, stepsRaw, i.SortOrder, i.Active,
	).Scan(&i.CreatedAt, &i.UpdatedAt)
	return dberr.Wrap(err, "create_tile_installation")
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
		schema.CatalogTileInstallation.Table,
		schema.CatalogTileInstallation.Title, schema.CatalogTileInstallation.Steps,
		schema.CatalogTileInstallation.SortOrder, schema.CatalogTileInstallation.Active,
		schema.CatalogTileInstallation.UpdatedAt,
		schema.CatalogTileInstallation.ID,
		schema.CatalogTileInstallation.UpdatedAt,
	)

	err = repository.db.QueryRow(context, query,
		i.ID, i.Title, stepsRaw, i.SortOrder, i.Active,
	).Scan(&i.UpdatedAt)
	return dberr.Wrap(err, "update_tile_installation")
}

func (repository *PostgresRepository) DeleteInstallation(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogTileInstallation.Table, schema.CatalogTileInstallation.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tile_installation")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
