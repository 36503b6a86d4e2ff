package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-manager/internal/auth"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type BarberHandler struct {
	auth *auth.Service
}

func NewBarberHandler(svc *auth.Service) *BarberHandler {
	return &BarberHandler{auth: svc}
}

// --------- Requests ---------

type RegisterBarberRequest struct {
	Name      string `json:"nome" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"telefone"`
	Specialty string `json:"especialidade"`
}

type UpdateBarberRequest struct {
	Name      *string `json:"nome,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	Phone     *string `json:"telefone,omitempty"`
	Specialty *string `json:"especialidade,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.auth.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}
	httpresp.List(c, barbers)
}

func (h *BarberHandler) Register(c *gin.Context) {
	var req RegisterBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.auth.RegisterBarber(c.Request.Context(), models.User{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	}, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, "duplicate_email") {
			httperr.Conflict(c, "duplicate_email", "Já existe uma conta com este e-mail.")
			return
		}
		if httperr.IsBusiness(err, "missing_required_field") {
			httperr.BadRequest(c, "missing_required_field", "Preencha todos os campos obrigatórios.")
			return
		}
		httperr.Internal(c, "failed_to_register_barber", "Erro ao cadastrar barbeiro.")
		return
	}

	httpresp.Created(c, created)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.auth.UpdateBarber(c.Request.Context(), id, auth.UpdateBarberInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		Status:    req.Status,
	})
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			httperr.NotFound(c, "user_not_found", "Barbeiro não encontrado.")
			return
		}
		if httperr.IsBusiness(err, "duplicate_email") {
			httperr.Conflict(c, "duplicate_email", "Já existe uma conta com este e-mail.")
			return
		}
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BarberHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.auth.RemoveBarber(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "cannot_remove_owner") {
			httperr.Conflict(c, "cannot_remove_owner", "A conta do dono não pode ser removida.")
			return
		}
		httperr.Internal(c, "failed_to_remove_barber", "Erro ao remover barbeiro.")
		return
	}

	c.Status(http.StatusNoContent)
}
