package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-manager/internal/collection"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	"github.com/BruksfildServices01/barber-manager/internal/metrics"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type ProductHandler struct {
	products *collection.Products
}

func NewProductHandler(products *collection.Products) *ProductHandler {
	return &ProductHandler{products: products}
}

// --------- Requests / Responses ---------

type CreateProductRequest struct {
	Name     string `json:"nome" binding:"required"`
	Category string `json:"categoria"`
	Stock    int    `json:"estoque" binding:"min=0"`
	MinStock int    `json:"estoqueMinimo" binding:"min=0"`
	Cost     string `json:"precoCusto"`
	Sale     string `json:"precoVenda" binding:"required"`
	Supplier string `json:"fornecedor"`
}

type UpdateProductRequest struct {
	Name     *string `json:"nome,omitempty"`
	Category *string `json:"categoria,omitempty"`
	Stock    *int    `json:"estoque,omitempty"`
	MinStock *int    `json:"estoqueMinimo,omitempty"`
	Cost     *string `json:"precoCusto,omitempty"`
	Sale     *string `json:"precoVenda,omitempty"`
	Supplier *string `json:"fornecedor,omitempty"`
}

// ProductResponse anexa o status de estoque derivado dos limites.
type ProductResponse struct {
	models.Product
	StockStatus string `json:"statusEstoque"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.products.LoadAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_products", "Erro ao listar produtos.")
		return
	}

	out := make([]ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ProductResponse{Product: p, StockStatus: metrics.StockStatus(p)})
	}

	httpresp.List(c, out)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cost, sale, ok := h.parsePrices(c, req.Cost, req.Sale)
	if !ok {
		return
	}

	created, err := h.products.Add(c.Request.Context(), models.Product{
		Name:      req.Name,
		Category:  req.Category,
		Stock:     req.Stock,
		MinStock:  req.MinStock,
		CostPrice: cost,
		SalePrice: sale,
		Supplier:  req.Supplier,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_required_field"):
			httperr.BadRequest(c, "missing_required_field", "Preencha todos os campos obrigatórios.")
		case httperr.IsBusiness(err, "invalid_stock"):
			httperr.BadRequest(c, "invalid_stock", "Estoque inválido.")
		case httperr.IsBusiness(err, "invalid_price"):
			httperr.BadRequest(c, "invalid_price", "Preço inválido.")
		default:
			httperr.Internal(c, "failed_to_create_product", "Erro ao cadastrar produto.")
		}
		return
	}

	httpresp.Created(c, ProductResponse{Product: created, StockStatus: metrics.StockStatus(created)})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if _, found, err := h.products.Get(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_update_product", "Erro ao atualizar produto.")
		return
	} else if !found {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var cost, sale *decimal.Decimal
	if req.Cost != nil {
		parsed, err := decimal.NewFromString(*req.Cost)
		if err != nil || parsed.IsNegative() {
			httperr.BadRequest(c, "invalid_price", "Preço inválido.")
			return
		}
		cost = &parsed
	}
	if req.Sale != nil {
		parsed, err := decimal.NewFromString(*req.Sale)
		if err != nil || parsed.IsNegative() {
			httperr.BadRequest(c, "invalid_price", "Preço inválido.")
			return
		}
		sale = &parsed
	}
	if (req.Stock != nil && *req.Stock < 0) || (req.MinStock != nil && *req.MinStock < 0) {
		httperr.BadRequest(c, "invalid_stock", "Estoque inválido.")
		return
	}

	err := h.products.Update(c.Request.Context(), id, func(p *models.Product) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		if req.MinStock != nil {
			p.MinStock = *req.MinStock
		}
		if cost != nil {
			p.CostPrice = *cost
		}
		if sale != nil {
			p.SalePrice = *sale
		}
		if req.Supplier != nil {
			p.Supplier = *req.Supplier
		}
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_product", "Erro ao atualizar produto.")
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete remove o produto e, em cascata, todas as vendas dele.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.products.Remove(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_product", "Erro ao excluir produto.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) parsePrices(c *gin.Context, costStr, saleStr string) (cost, sale decimal.Decimal, ok bool) {
	cost = decimal.Zero
	if costStr != "" {
		parsed, err := decimal.NewFromString(costStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_price", "Preço inválido.")
			return cost, sale, false
		}
		cost = parsed
	}

	parsed, err := decimal.NewFromString(saleStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_price", "Preço inválido.")
		return cost, sale, false
	}
	sale = parsed
	return cost, sale, true
}
