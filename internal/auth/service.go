package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/constants"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/sec"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/validate"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/uuidv7"
)

// TokenIssuer abstracts token generation so the service can be tested
// without RSA key material.
type TokenIssuer interface {
	GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error)
}

type Service struct {
	repo   Repository
	tokens TokenIssuer
	logger *slog.Logger
}

func NewService(repo Repository, tokens TokenIssuer, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies admin credentials and issues a signed access token.
//
// Invalid email and invalid password return the same error so the endpoint
// cannot be used to probe which accounts exist.
func (service *Service) Login(context context.Context, email, password string) (string, *Account, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Email(FieldEmail, email)
	validator.Required(FieldPassword, password)
	if err := validator.Err(); err != nil {
		return "", nil, err
	}

	account, err := service.repo.GetAccountByEmail(context, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return "", nil, apperr.Unauthorized("Invalid email or password")
		}
		return "", nil, err
	}

	if !account.Active {
		service.logger.Warn("login_inactive_account", slog.String("email", email))
		return "", nil, apperr.Unauthorized("Invalid email or password")
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		service.logger.Warn("login_bad_password", slog.String("email", email))
		return "", nil, apperr.Unauthorized("Invalid email or password")
	}

	token, err := service.tokens.GenerateAccessToken(account.ID, account.Email, account.Role, constants.AccessTokenTTL)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}

	service.logger.Info("admin_logged_in", slog.String("account_id", account.ID))
	return token, account, nil
}

// ProvisionAccount creates an admin panel account with a bcrypt password
// hash. Used by the adminctl bootstrap command, not exposed over HTTP.
func (service *Service) ProvisionAccount(context context.Context, email, password, displayName string, role sec.Role) (*Account, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Email(FieldEmail, email)
	validator.Required(FieldPassword, password).MinLen(FieldPassword, password, 10)
	validator.Required(FieldDisplayName, displayName).MaxLen(FieldDisplayName, displayName, 100)
	validator.Custom(FieldRole, role != sec.RoleAdmin && role != sec.RoleEditor, "Must be admin or editor")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	account := &Account{
		ID:           uuidv7.New(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
		Role:         string(role),
		Active:       true,
	}
	if err := service.repo.CreateAccount(context, account); err != nil {
		return nil, err
	}

	service.logger.Info("account_provisioned",
		slog.String("account_id", account.ID),
		slog.String("role", account.Role),
	)
	return account, nil
}

// Me returns the account behind a verified token's subject.
func (service *Service) Me(context context.Context, accountID string) (*Account, error) {
	account, err := service.repo.GetAccountByID(context, accountID)
	if err != nil {
		return nil, err
	}
	if !account.Active {
		return nil, apperr.Unauthorized("Account is disabled")
	}
	return account, nil
}
