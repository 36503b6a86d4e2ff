package collection

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/bus"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/store"
)

type Users struct {
	*Collection[models.User]
}

func NewUsers(st store.RecordStore, b *bus.Bus, log zerolog.Logger) *Users {
	return &Users{
		Collection: New(
			st, b, log,
			store.KeyUsers,
			Append,
			func(u models.User) int64 { return u.ID },
			func(u *models.User, id int64) { u.ID = id },
		),
	}
}

// FindByEmail procura o usuário pelo e-mail, case-insensitive.
func (c *Users) FindByEmail(ctx context.Context, email string) (models.User, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	users, err := c.LoadAll(ctx)
	if err != nil {
		return models.User{}, false, err
	}

	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

// Owner devolve a conta owner, se existir.
func (c *Users) Owner(ctx context.Context) (models.User, bool, error) {
	users, err := c.LoadAll(ctx)
	if err != nil {
		return models.User{}, false, err
	}

	for _, u := range users {
		if u.Role == models.RoleOwner {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}
