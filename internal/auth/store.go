package auth

import "context"

type Repository interface {
	GetAccountByEmail(context context.Context, email string) (*Account, error)
	GetAccountByID(context context.Context, id string) (*Account, error)
	CreateAccount(context context.Context, account *Account) error
}
