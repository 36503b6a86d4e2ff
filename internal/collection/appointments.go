package collection

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/bus"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/store"
)

type Appointments struct {
	*Collection[models.Appointment]
}

func NewAppointments(st store.RecordStore, b *bus.Bus, log zerolog.Logger) *Appointments {
	return &Appointments{
		Collection: New(
			st, b, log,
			store.KeyAppointments,
			Prepend,
			func(a models.Appointment) int64 { return a.ID },
			func(a *models.Appointment, id int64) { a.ID = id },
		),
	}
}

// Add valida os campos obrigatórios e cria o agendamento como pendente.
func (c *Appointments) Add(ctx context.Context, ap models.Appointment) (models.Appointment, error) {
	ap.ClientName = strings.TrimSpace(ap.ClientName)
	ap.ServiceName = strings.TrimSpace(ap.ServiceName)
	ap.BarberName = strings.TrimSpace(ap.BarberName)

	if ap.ClientName == "" || ap.ServiceName == "" || ap.BarberName == "" || ap.Date == "" || ap.Time == "" {
		return ap, httperr.ErrBusiness("missing_required_field")
	}
	if ap.Value.IsNegative() {
		return ap, httperr.ErrBusiness("invalid_value")
	}

	ap.Status = string(domain.InitialStatus())

	return c.Collection.Add(ctx, ap)
}
