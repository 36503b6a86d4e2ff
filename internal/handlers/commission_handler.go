package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-manager/internal/collection"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
)

type CommissionHandler struct {
	commission *collection.Commission
}

func NewCommissionHandler(commission *collection.Commission) *CommissionHandler {
	return &CommissionHandler{commission: commission}
}

type UpdateCommissionRequest struct {
	Percent string `json:"percentual" binding:"required"`
}

func (h *CommissionHandler) Get(c *gin.Context) {
	pct, err := h.commission.Get(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_get_commission", "Erro ao carregar comissão.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"percentual": pct})
}

// Update grava o percentual global; a faixa 0–50 é aplicada na
// coleção.
func (h *CommissionHandler) Update(c *gin.Context) {
	var req UpdateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pct, err := decimal.NewFromString(req.Percent)
	if err != nil {
		httperr.BadRequest(c, "invalid_percent", "Percentual inválido.")
		return
	}

	applied, err := h.commission.Set(c.Request.Context(), pct)
	if err != nil {
		httperr.Internal(c, "failed_to_update_commission", "Erro ao salvar comissão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"percentual": applied})
}
