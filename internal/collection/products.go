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

type Products struct {
	*Collection[models.Product]

	sales *Sales
}

func NewProducts(st store.RecordStore, b *bus.Bus, log zerolog.Logger, sales *Sales) *Products {
	return &Products{
		Collection: New(
			st, b, log,
			store.KeyProducts,
			Append,
			func(p models.Product) int64 { return p.ID },
			func(p *models.Product, id int64) { p.ID = id },
		),
		sales: sales,
	}
}

func (c *Products) Add(ctx context.Context, p models.Product) (models.Product, error) {
	p.Name = strings.TrimSpace(p.Name)

	if p.Name == "" {
		return p, httperr.ErrBusiness("missing_required_field")
	}
	if p.Stock < 0 || p.MinStock < 0 {
		return p, httperr.ErrBusiness("invalid_stock")
	}
	if p.CostPrice.IsNegative() || p.SalePrice.IsNegative() {
		return p, httperr.ErrBusiness("invalid_price")
	}

	return c.Collection.Add(ctx, p)
}

// Remove exclui o produto e, em cascata, todas as vendas que o
// referenciam. Id ausente é no-op completo — o cascade não roda sobre
// vendas órfãs.
func (c *Products) Remove(ctx context.Context, id int64) error {
	if _, ok, err := c.Get(ctx, id); err != nil {
		return err
	} else if !ok {
		return nil
	}

	if err := c.Collection.Remove(ctx, id); err != nil {
		return err
	}
	return c.sales.RemoveByProduct(ctx, id)
}
