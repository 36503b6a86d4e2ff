package collection

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/bus"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/store"
)

type Sales struct {
	*Collection[models.Sale]
}

func NewSales(st store.RecordStore, b *bus.Bus, log zerolog.Logger) *Sales {
	return &Sales{
		Collection: New(
			st, b, log,
			store.KeySales,
			Prepend,
			func(s models.Sale) int64 { return s.ID },
			func(s *models.Sale, id int64) { s.ID = id },
		),
	}
}

// RemoveByProduct exclui todas as vendas do produto dado. Usado pelo
// cascade da exclusão de produto; vendas de outros produtos ficam
// intactas.
func (c *Sales) RemoveByProduct(ctx context.Context, productID int64) error {
	items, err := c.LoadAll(ctx)
	if err != nil {
		return err
	}

	out := items[:0]
	removed := false
	for _, s := range items {
		if s.ProductID == productID {
			removed = true
			continue
		}
		out = append(out, s)
	}
	if !removed {
		return nil
	}

	return c.SaveAll(ctx, out)
}
