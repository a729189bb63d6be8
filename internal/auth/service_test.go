package auth_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/auth"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/sec"
)

type fakeRepository struct {
	accounts map[string]*auth.Account
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{accounts: map[string]*auth.Account{}}
}

func (repository *fakeRepository) GetAccountByEmail(_ context.Context, email string) (*auth.Account, error) {
	for _, account := range repository.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (repository *fakeRepository) GetAccountByID(_ context.Context, id string) (*auth.Account, error) {
	account, ok := repository.accounts[id]
	if !ok {
		return nil, apperr.NotFound("Account")
	}
	return account, nil
}

func (repository *fakeRepository) CreateAccount(_ context.Context, account *auth.Account) error {
	repository.accounts[account.ID] = account
	return nil
}

type fakeIssuer struct{}

func (fakeIssuer) GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error) {
	return "token-for-" + userID, nil
}

func newTestService() (*auth.Service, *fakeRepository) {
	repository := newFakeRepository()
	return auth.NewService(repository, fakeIssuer{}, slog.Default()), repository
}

func provision(t *testing.T, service *auth.Service, email string) *auth.Account {
	t.Helper()
	account, err := service.ProvisionAccount(context.Background(), email, "correct-horse-battery", "Ops", sec.RoleAdmin)
	require.NoError(t, err)
	return account
}

/*
TestLogin_Succeeds verifies valid credentials return a token and the account
without its password hash leaking into JSON.
*/
func TestLogin_Succeeds(t *testing.T) {
	service, _ := newTestService()
	created := provision(t, service, "ops@aticomgroup.com")

	token, account, err := service.Login(context.Background(), "ops@aticomgroup.com", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, "token-for-"+created.ID, token)
	assert.Equal(t, created.ID, account.ID)
}

/*
TestLogin_UniformFailureMessage verifies unknown email, wrong password, and
disabled accounts all fail with the same message, so the endpoint cannot be
used to probe which accounts exist.
*/
func TestLogin_UniformFailureMessage(t *testing.T) {
	service, repository := newTestService()
	account := provision(t, service, "ops@aticomgroup.com")

	_, _, unknownErr := service.Login(context.Background(), "ghost@aticomgroup.com", "whatever-pass")
	_, _, badPassErr := service.Login(context.Background(), "ops@aticomgroup.com", "wrong-password")

	repository.accounts[account.ID].Active = false
	_, _, inactiveErr := service.Login(context.Background(), "ops@aticomgroup.com", "correct-horse-battery")

	require.Error(t, unknownErr)
	require.Error(t, badPassErr)
	require.Error(t, inactiveErr)
	assert.Equal(t, unknownErr.Error(), badPassErr.Error())
	assert.Equal(t, badPassErr.Error(), inactiveErr.Error())
}

/*
TestProvisionAccount_HashesPassword verifies the stored hash verifies against
the original password and is not the password itself.
*/
func TestProvisionAccount_HashesPassword(t *testing.T) {
	service, repository := newTestService()
	account := provision(t, service, "ops@aticomgroup.com")

	stored := repository.accounts[account.ID]
	assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct-horse-battery", stored.PasswordHash))
}

/*
TestProvisionAccount_RejectsWeakPassword verifies the minimum password length.
*/
func TestProvisionAccount_RejectsWeakPassword(t *testing.T) {
	service, repository := newTestService()

	_, err := service.ProvisionAccount(context.Background(), "ops@aticomgroup.com", "short", "Ops", sec.RoleEditor)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Empty(t, repository.accounts)
}

/*
TestMe_DisabledAccountRejected verifies a token for a since-disabled account
no longer resolves.
*/
func TestMe_DisabledAccountRejected(t *testing.T) {
	service, repository := newTestService()
	account := provision(t, service, "ops@aticomgroup.com")

	repository.accounts[account.ID].Active = false
	_, err := service.Me(context.Background(), account.ID)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}
