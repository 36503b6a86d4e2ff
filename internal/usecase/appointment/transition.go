package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	"github.com/BruksfildServices01/barber-manager/internal/collection"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// TransitionAppointment concentra as mudanças de status que a UI
// oferece: pendente → confirmado/cancelado, confirmado → concluido.
type TransitionAppointment struct {
	appointments *collection.Appointments
	audit        *audit.Dispatcher
}

func NewTransitionAppointment(
	appointments *collection.Appointments,
	audit *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{
		appointments: appointments,
		audit:        audit,
	}
}

func (uc *TransitionAppointment) Confirm(ctx context.Context, id int64, userID *int64) (models.Appointment, error) {
	return uc.apply(ctx, id, userID, "appointment_confirmed", domain.Confirm)
}

func (uc *TransitionAppointment) Complete(ctx context.Context, id int64, userID *int64) (models.Appointment, error) {
	return uc.apply(ctx, id, userID, "appointment_completed", domain.Complete)
}

func (uc *TransitionAppointment) Cancel(ctx context.Context, id int64, userID *int64) (models.Appointment, error) {
	return uc.apply(ctx, id, userID, "appointment_cancelled", domain.Cancel)
}

// Delete: a coleção em si exclui incondicionalmente; a regra de só
// excluir antes da conclusão vive aqui, na fronteira com a UI.
func (uc *TransitionAppointment) Delete(ctx context.Context, id int64, userID *int64) error {
	ap, ok, err := uc.appointments.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanDelete(domain.Status(ap.Status)); err != nil {
		return err
	}

	if err := uc.appointments.Remove(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})
	return nil
}

func (uc *TransitionAppointment) apply(
	ctx context.Context,
	id int64,
	userID *int64,
	action string,
	transition func(*models.Appointment) error,
) (models.Appointment, error) {

	ap, ok, err := uc.appointments.Get(ctx, id)
	if err != nil {
		return models.Appointment{}, err
	}
	if !ok {
		return models.Appointment{}, httperr.ErrBusiness("appointment_not_found")
	}

	if err := transition(&ap); err != nil {
		return models.Appointment{}, err
	}

	if err := uc.appointments.Update(ctx, id, func(a *models.Appointment) {
		a.Status = ap.Status
	}); err != nil {
		return models.Appointment{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &id,
	})

	return ap, nil
}
