package auth

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

func (repository *PostgresRepository) GetAccountByEmail(context context.Context, email string) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE lower(%s) = lower($1)
	`,
		schema.AdminAccount.ID, schema.AdminAccount.Email, schema.AdminAccount.PasswordHash,
		schema.AdminAccount.DisplayName, schema.AdminAccount.Role, schema.AdminAccount.Active,
		schema.AdminAccount.CreatedAt, schema.AdminAccount.UpdatedAt,
		schema.AdminAccount.Table, schema.AdminAccount.Email,
	)

	account := &Account{}
	err := repository.db.QueryRow(context, query, email).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.DisplayName,
		&account.Role, &account.Active, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_account_by_email")
	}
	return account, nil
}

func (repository *PostgresRepository) GetAccountByID(context context.Context, id string) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.AdminAccount.ID, schema.AdminAccount.Email, schema.AdminAccount.PasswordHash,
		schema.AdminAccount.DisplayName, schema.AdminAccount.Role, schema.AdminAccount.Active,
		schema.AdminAccount.CreatedAt, schema.AdminAccount.UpdatedAt,
		schema.AdminAccount.Table, schema.AdminAccount.ID,
	)

	account := &Account{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.DisplayName,
		&account.Role, &account.Active, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_account_by_id")
	}
	return account, nil
}

func (repository *PostgresRepository) CreateAccount(context context.Context, account *Account) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.AdminAccount.Table,
		schema.AdminAccount.ID, schema.AdminAccount.Email, schema.AdminAccount.PasswordHash,
		schema.AdminAccount.DisplayName, schema.AdminAccount.Role, schema.AdminAccount.Active,
		schema.AdminAccount.CreatedAt, schema.AdminAccount.UpdatedAt,
		schema.AdminAccount.CreatedAt, schema.AdminAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		account.ID, account.Email, account.PasswordHash, account.DisplayName, account.Role, account.Active,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	return dberr.Wrap(err, "create_account")
}
