package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-manager/internal/collection"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type ServiceHandler struct {
	services *collection.Services
}

func NewServiceHandler(services *collection.Services) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name  string `json:"nome" binding:"required"`
	Price string `json:"preco" binding:"required"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	items, err := h.services.LoadAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}
	httpresp.List(c, items)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		httperr.BadRequest(c, "invalid_price", "Preço inválido.")
		return
	}

	created, err := h.services.Add(c.Request.Context(), models.Service{
		Name:  req.Name,
		Price: price,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if _, found, err := h.services.Get(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	} else if !found {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		httperr.BadRequest(c, "invalid_price", "Preço inválido.")
		return
	}

	if err := h.services.Rename(c.Request.Context(), id, models.Service{
		Name:  req.Name,
		Price: price,
	}); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.services.Remove(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao excluir serviço.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) writeServiceError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "duplicate_name"):
		httperr.Conflict(c, "duplicate_name", "Já existe um serviço com este nome.")
	case httperr.IsBusiness(err, "invalid_price"):
		httperr.BadRequest(c, "invalid_price", "Preço inválido.")
	case httperr.IsBusiness(err, "missing_required_field"):
		httperr.BadRequest(c, "missing_required_field", "Preencha todos os campos obrigatórios.")
	default:
		httperr.Internal(c, "failed_to_save_service", "Erro ao salvar serviço.")
	}
}
