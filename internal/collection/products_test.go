package collection

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

func TestProductRemoveCascadesSales(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	pomada, err := reg.Products.Add(ctx, models.Product{
		Name: "Pomada", Stock: 10, MinStock: 2,
		SalePrice: decimal.NewFromInt(35),
	})
	require.NoError(t, err)

	gel, err := reg.Products.Add(ctx, models.Product{
		Name: "Gel", Stock: 10, MinStock: 2,
		SalePrice: decimal.NewFromInt(18),
	})
	require.NoError(t, err)

	_, err = reg.Sales.Add(ctx, models.Sale{ProductID: pomada.ID, ProductName: "Pomada", Quantity: 1})
	require.NoError(t, err)
	_, err = reg.Sales.Add(ctx, models.Sale{ProductID: gel.ID, ProductName: "Gel", Quantity: 2})
	require.NoError(t, err)
	_, err = reg.Sales.Add(ctx, models.Sale{ProductID: pomada.ID, ProductName: "Pomada", Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, reg.Products.Remove(ctx, pomada.ID))

	sales, err := reg.Sales.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, gel.ID, sales[0].ProductID)

	products, err := reg.Products.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Gel", products[0].Name)
}

func TestProductRemoveMissingIDIsFullNoOp(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	// venda órfã: referencia um produto que não existe na coleção
	_, err := reg.Sales.Add(ctx, models.Sale{ProductID: 777, ProductName: "Pomada", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, reg.Products.Remove(ctx, 777))

	sales, err := reg.Sales.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, int64(777), sales[0].ProductID)
}

func TestProductAddRejectsNegativeStock(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.Products.Add(context.Background(), models.Product{
		Name: "Pomada", Stock: -1, MinStock: 2,
		SalePrice: decimal.NewFromInt(35),
	})
	require.Error(t, err)
}
