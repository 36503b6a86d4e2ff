package collection

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/bus"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/store"
)

type Services struct {
	*Collection[models.Service]
}

func NewServices(st store.RecordStore, b *bus.Bus, log zerolog.Logger) *Services {
	return &Services{
		Collection: New(
			st, b, log,
			store.KeyServices,
			Append,
			func(s models.Service) int64 { return s.ID },
			func(s *models.Service, id int64) { s.ID = id },
		),
	}
}

// Add valida nome e preço. Unicidade de nome é case-insensitive e vive
// aqui, na fronteira de mutação — o storage não impõe nada.
func (c *Services) Add(ctx context.Context, svc models.Service) (models.Service, error) {
	svc.Name = strings.TrimSpace(svc.Name)

	if err := c.validate(ctx, svc, 0); err != nil {
		return svc, err
	}

	return c.Collection.Add(ctx, svc)
}

// Rename altera nome e/ou preço mantendo a unicidade do nome. Id
// ausente é no-op, como nas demais coleções.
func (c *Services) Rename(ctx context.Context, id int64, updated models.Service) error {
	updated.Name = strings.TrimSpace(updated.Name)

	if err := c.validate(ctx, updated, id); err != nil {
		return err
	}

	return c.Update(ctx, id, func(s *models.Service) {
		s.Name = updated.Name
		s.Price = updated.Price
	})
}

func (c *Services) validate(ctx context.Context, svc models.Service, selfID int64) error {
	if svc.Name == "" {
		return httperr.ErrBusiness("missing_required_field")
	}
	if svc.Price.IsNegative() {
		return httperr.ErrBusiness("invalid_price")
	}

	items, err := c.LoadAll(ctx)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID != selfID && strings.EqualFold(strings.TrimSpace(it.Name), svc.Name) {
			return httperr.ErrBusiness("duplicate_name")
		}
	}
	return nil
}
