package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-manager/internal/collection"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	ucSale "github.com/BruksfildServices01/barber-manager/internal/usecase/sale"
)

type SaleHandler struct {
	sales      *collection.Sales
	recordSale *ucSale.RecordSale
}

func NewSaleHandler(sales *collection.Sales, recordSale *ucSale.RecordSale) *SaleHandler {
	return &SaleHandler{sales: sales, recordSale: recordSale}
}

// --------- Requests ---------

type RecordSaleRequest struct {
	ProductID int64 `json:"produtoId" binding:"required"`
	Quantity  int   `json:"quantidade" binding:"required,min=1"`
}

// --------- Handlers ---------

func (h *SaleHandler) List(c *gin.Context) {
	items, err := h.sales.LoadAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_sales", "Erro ao listar vendas.")
		return
	}
	httpresp.List(c, items)
}

func (h *SaleHandler) Create(c *gin.Context) {
	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.recordSale.Execute(c.Request.Context(), ucSale.RecordSaleInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UserID:    currentUserID(c),
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "product_not_found"):
			httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		case httperr.IsBusiness(err, "insufficient_stock"):
			httperr.BadRequest(c, "insufficient_stock", "Estoque insuficiente para a venda.")
		case httperr.IsBusiness(err, "invalid_quantity"):
			httperr.BadRequest(c, "invalid_quantity", "Quantidade inválida.")
		default:
			httperr.Internal(c, "failed_to_record_sale", "Erro ao registrar venda.")
		}
		return
	}

	httpresp.Created(c, created)
}
