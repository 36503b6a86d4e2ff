package collection

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-manager/internal/bus"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/store"
)

func newTestRegistry(t *testing.T) (*Registry, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()
	b := bus.New(st, zerolog.Nop())
	t.Cleanup(b.Close)

	return NewRegistry(st, b, zerolog.Nop()), st
}

func validAppointment(value int64) models.Appointment {
	return models.Appointment{
		ClientName:  "Pedro",
		ClientPhone: "11999990000",
		ServiceName: "Corte",
		BarberName:  "Carlos",
		Date:        "2025-03-01",
		Time:        "10:00",
		Value:       decimal.NewFromInt(value),
	}
}

func TestLoadAllAbsentKeyIsEmpty(t *testing.T) {
	reg, _ := newTestRegistry(t)

	items, err := reg.Appointments.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadAllMalformedJSONIsEmpty(t *testing.T) {
	reg, st := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, store.KeyAppointments, "{not json"))

	items, err := reg.Appointments.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAppointmentsPrependNewestFirst(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	first, err := reg.Appointments.Add(ctx, validAppointment(30))
	require.NoError(t, err)
	second, err := reg.Appointments.Add(ctx, validAppointment(40))
	require.NoError(t, err)

	items, err := reg.Appointments.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAppointmentAddStartsPending(t *testing.T) {
	reg, _ := newTestRegistry(t)

	ap, err := reg.Appointments.Add(context.Background(), validAppointment(30))
	require.NoError(t, err)
	assert.Equal(t, "pendente", ap.Status)
}

func TestAppointmentAddRequiresFields(t *testing.T) {
	reg, _ := newTestRegistry(t)

	in := validAppointment(30)
	in.ClientName = "  "

	_, err := reg.Appointments.Add(context.Background(), in)
	require.Error(t, err)
}

func TestServicesAppendInOrder(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	_, err := reg.Services.Add(ctx, models.Service{Name: "Corte", Price: decimal.NewFromInt(30)})
	require.NoError(t, err)
	_, err = reg.Services.Add(ctx, models.Service{Name: "Barba", Price: decimal.NewFromInt(20)})
	require.NoError(t, err)

	items, err := reg.Services.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Corte", items[0].Name)
	assert.Equal(t, "Barba", items[1].Name)
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	reg, st := newTestRegistry(t)
	ctx := context.Background()

	_, err := reg.Appointments.Add(ctx, validAppointment(30))
	require.NoError(t, err)

	before, _, err := st.Get(ctx, store.KeyAppointments)
	require.NoError(t, err)

	err = reg.Appointments.Update(ctx, 999, func(a *models.Appointment) {
		a.ClientName = "ninguém"
	})
	require.NoError(t, err)

	after, _, err := st.Get(ctx, store.KeyAppointments)
	require.NoError(t, err)
	assert.Equal(t, before, after, "no-op não deve reescrever a coleção")
}

func TestRemoveMissingIDIsNoOp(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	_, err := reg.Services.Add(ctx, models.Service{Name: "Corte", Price: decimal.NewFromInt(30)})
	require.NoError(t, err)

	require.NoError(t, reg.Services.Remove(ctx, 999))

	items, err := reg.Services.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestSaveLoadRoundTripIsStable(t *testing.T) {
	reg, st := newTestRegistry(t)
	ctx := context.Background()

	_, err := reg.Appointments.Add(ctx, validAppointment(30))
	require.NoError(t, err)
	_, err = reg.Appointments.Add(ctx, validAppointment(45))
	require.NoError(t, err)

	before, _, err := st.Get(ctx, store.KeyAppointments)
	require.NoError(t, err)

	items, err := reg.Appointments.LoadAll(ctx)
	require.NoError(t, err)
	require.NoError(t, reg.Appointments.SaveAll(ctx, items))

	after, _, err := st.Get(ctx, store.KeyAppointments)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSubscribeReceivesSnapshot(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	var got [][]models.Service
	cancel := reg.Services.Subscribe(func(items []models.Service) {
		got = append(got, items)
	})
	defer cancel()

	_, err := reg.Services.Add(ctx, models.Service{Name: "Corte", Price: decimal.NewFromInt(30)})
	require.NoError(t, err)

	// broadcast com payload + sinal do substrato = pelo menos uma entrega
	require.NotEmpty(t, got)
	assert.Len(t, got[len(got)-1], 1)
}
