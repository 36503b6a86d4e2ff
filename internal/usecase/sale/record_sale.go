package sale

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	"github.com/BruksfildServices01/barber-manager/internal/collection"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RecordSaleInput struct {
	ProductID int64
	Quantity  int

	UserID *int64
}

// ======================================================
// USE CASE
// ======================================================

// RecordSale registra a saída de estoque: valida a quantidade contra o
// estoque atual, baixa o estoque e grava a venda com o preço congelado
// do momento. Toda a validação acontece antes de qualquer escrita —
// venda rejeitada não muda nada.
type RecordSale struct {
	products *collection.Products
	sales    *collection.Sales
	audit    *audit.Dispatcher
}

func NewRecordSale(
	products *collection.Products,
	sales *collection.Sales,
	audit *audit.Dispatcher,
) *RecordSale {
	return &RecordSale{
		products: products,
		sales:    sales,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RecordSale) Execute(
	ctx context.Context,
	in RecordSaleInput,
) (models.Sale, error) {

	if in.Quantity <= 0 {
		return models.Sale{}, httperr.ErrBusiness("invalid_quantity")
	}

	product, ok, err := uc.products.Get(ctx, in.ProductID)
	if err != nil {
		return models.Sale{}, err
	}
	if !ok {
		return models.Sale{}, httperr.ErrBusiness("product_not_found")
	}

	if in.Quantity > product.Stock {
		return models.Sale{}, httperr.ErrBusiness("insufficient_stock")
	}

	now := timezone.Now()
	qty := decimal.NewFromInt(int64(in.Quantity))

	if err := uc.products.Update(ctx, in.ProductID, func(p *models.Product) {
		p.Stock -= in.Quantity
	}); err != nil {
		return models.Sale{}, err
	}

	created, err := uc.sales.Add(ctx, models.Sale{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		UnitValue:   product.SalePrice,
		TotalValue:  product.SalePrice.Mul(qty),
		Date:        now.Format("2006-01-02"),
		Time:        now.Format("15:04"),
	})
	if err != nil {
		return models.Sale{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "sale_recorded",
		Entity:   "sale",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"produtoId":  product.ID,
			"quantidade": in.Quantity,
		},
	})

	return created, nil
}
