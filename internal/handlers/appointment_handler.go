package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-manager/internal/collection"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	"github.com/BruksfildServices01/barber-manager/internal/metrics"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	appointments *collection.Appointments
	create       *ucAppointment.CreateAppointment
	transition   *ucAppointment.TransitionAppointment
}

func NewAppointmentHandler(
	appointments *collection.Appointments,
	create *ucAppointment.CreateAppointment,
	transition *ucAppointment.TransitionAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		create:       create,
		transition:   transition,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"cliente" binding:"required"`
	ClientPhone string `json:"telefone" binding:"required"`
	ServiceName string `json:"servico" binding:"required"`
	BarberName  string `json:"barbeiro" binding:"required"`
	Date        string `json:"data" binding:"required"`
	Time        string `json:"horario" binding:"required"`
	Value       string `json:"valor"`
}

type UpdateAppointmentRequest struct {
	ClientName  *string `json:"cliente,omitempty"`
	ClientPhone *string `json:"telefone,omitempty"`
	ServiceName *string `json:"servico,omitempty"`
	BarberName  *string `json:"barbeiro,omitempty"`
	Date        *string `json:"data,omitempty"`
	Time        *string `json:"horario,omitempty"`
	Value       *string `json:"valor,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	value := decimal.Zero
	if req.Value != "" {
		parsed, err := decimal.NewFromString(req.Value)
		if err != nil {
			httperr.BadRequest(c, "invalid_value", "Valor inválido.")
			return
		}
		value = parsed
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ServiceName: req.ServiceName,
		BarberName:  req.BarberName,
		Date:        req.Date,
		Time:        req.Time,
		Value:       value,
		UserID:      currentUserID(c),
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "missing_required_field"):
			httperr.BadRequest(c, "missing_required_field", "Preencha todos os campos obrigatórios.")
		case httperr.IsBusiness(err, "invalid_value"):
			httperr.BadRequest(c, "invalid_value", "Valor inválido.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

// List devolve os agendamentos, mais recente primeiro, com filtros
// opcionais por data, barbeiro e status.
func (h *AppointmentHandler) List(c *gin.Context) {
	items, err := h.appointments.LoadAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	if date := c.Query("date"); date != "" {
		items = metrics.FilterByDate(items, date)
	}
	if start, end := c.Query("start"), c.Query("end"); start != "" && end != "" {
		items = metrics.FilterByRange(items, start, end)
	}
	if barber := c.Query("barber"); barber != "" {
		items = metrics.FilterByStaff(items, barber)
	}
	if status := c.Query("status"); status != "" {
		if !domain.IsValid(domain.Status(status)) {
			httperr.BadRequest(c, "invalid_status", "Status desconhecido.")
			return
		}
		filtered := make([]models.Appointment, 0, len(items))
		for _, ap := range items {
			if ap.Status == status {
				filtered = append(filtered, ap)
			}
		}
		items = filtered
	}

	httpresp.List(c, items)
}

// ======================================================
// EDIT
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if _, found, err := h.appointments.Get(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	} else if !found {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// mesmos formatos exigidos na criação
	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
	}
	if req.Time != nil {
		if _, err := time.Parse("15:04", *req.Time); err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
	}

	var value *decimal.Decimal
	if req.Value != nil {
		parsed, err := decimal.NewFromString(*req.Value)
		if err != nil || parsed.IsNegative() {
			httperr.BadRequest(c, "invalid_value", "Valor inválido.")
			return
		}
		value = &parsed
	}

	err := h.appointments.Update(c.Request.Context(), id, func(ap *models.Appointment) {
		if req.ClientName != nil {
			ap.ClientName = *req.ClientName
		}
		if req.ClientPhone != nil {
			ap.ClientPhone = *req.ClientPhone
		}
		if req.ServiceName != nil {
			ap.ServiceName = *req.ServiceName
		}
		if req.BarberName != nil {
			ap.BarberName = *req.BarberName
		}
		if req.Date != nil {
			ap.Date = *req.Date
		}
		if req.Time != nil {
			ap.Time = *req.Time
		}
		if value != nil {
			ap.Value = *value
		}
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.applyTransition(c, h.transition.Confirm)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.applyTransition(c, h.transition.Complete)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.applyTransition(c, h.transition.Cancel)
}

func (h *AppointmentHandler) applyTransition(
	c *gin.Context,
	fn func(ctx context.Context, id int64, userID *int64) (models.Appointment, error),
) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := fn(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.Conflict(c, "invalid_state", "Transição de status inválida.")
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	err := h.transition.Delete(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.Conflict(c, "invalid_state", "Agendamento concluído não pode ser excluído.")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}

	c.Status(http.StatusNoContent)
}
