package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	"github.com/BruksfildServices01/barber-manager/internal/collection"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string

	ServiceName string
	BarberName  string

	Date string
	Time string

	// zero = usar o preço atual do serviço
	Value decimal.Decimal

	UserID *int64
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	appointments *collection.Appointments
	services     *collection.Services
	audit        *audit.Dispatcher
}

func NewCreateAppointment(
	appointments *collection.Appointments,
	services *collection.Services,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		appointments: appointments,
		services:     services,
		audit:        audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (models.Appointment, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return models.Appointment{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return models.Appointment{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	value := in.Value
	if value.IsZero() {
		resolved, err := uc.resolveServicePrice(ctx, in.ServiceName)
		if err != nil {
			return models.Appointment{}, err
		}
		value = resolved
	}

	ap, err := uc.appointments.Add(ctx, models.Appointment{
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		ServiceName: in.ServiceName,
		BarberName:  in.BarberName,
		Date:        in.Date,
		Time:        in.Time,
		Value:       value,
	})
	if err != nil {
		return models.Appointment{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *CreateAppointment) resolveServicePrice(ctx context.Context, name string) (decimal.Decimal, error) {
	services, err := uc.services.LoadAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	for _, svc := range services {
		if strings.EqualFold(strings.TrimSpace(svc.Name), strings.TrimSpace(name)) {
			return svc.Price, nil
		}
	}
	return decimal.Zero, httperr.ErrBusiness("service_not_found")
}
