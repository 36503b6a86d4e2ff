package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-manager/internal/bus"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
	"github.com/BruksfildServices01/barber-manager/internal/view"
)

type DashboardHandler struct {
	dashboard *view.Dashboard
	poller    *bus.Poller
}

func NewDashboardHandler(dashboard *view.Dashboard, poller *bus.Poller) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, poller: poller}
}

// Summary devolve os agregados do dia (ou da data pedida) a partir da
// projeção em memória.
func (h *DashboardHandler) Summary(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timezone.Now().Format("2006-01-02")
	}

	c.JSON(http.StatusOK, h.dashboard.Summary(date))
}

// BarberReport devolve o relatório de um barbeiro pelo nome — o
// agendamento só guarda o nome denormalizado.
func (h *DashboardHandler) BarberReport(c *gin.Context) {
	barber := c.Param("name")
	if barber == "" {
		httperr.BadRequest(c, "missing_barber", "Informe o barbeiro.")
		return
	}

	c.JSON(http.StatusOK, h.dashboard.Report(barber))
}

// Sync força uma reconciliação imediata — o equivalente ao reload
// quando a aba volta a ficar visível.
func (h *DashboardHandler) Sync(c *gin.Context) {
	h.poller.ForceSync()
	c.Status(http.StatusAccepted)
}
