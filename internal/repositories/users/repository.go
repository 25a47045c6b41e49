package users

import (
	"context"

	"github.com/dmitrijs2005/flightbook/internal/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateBalance(ctx context.Context, username string, balance int) error
	Clear(ctx context.Context) error
}
