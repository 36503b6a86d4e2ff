package auth

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-manager/internal/bus"
	"github.com/BruksfildServices01/barber-manager/internal/collection"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/store"
)

func newTestService(t *testing.T) (*Service, *collection.Registry, store.RecordStore) {
	t.Helper()

	st := store.NewMemoryStore()
	b := bus.New(st, zerolog.Nop())
	t.Cleanup(b.Close)

	reg := collection.NewRegistry(st, b, zerolog.Nop())
	require.NoError(t, reg.Seed(context.Background(), st, zerolog.Nop()))

	return NewService(reg.Users, st, zerolog.Nop()), reg, st
}

func TestLoginWithSeededOwner(t *testing.T) {
	svc, _, st := newTestService(t)
	ctx := context.Background()

	user, err := svc.Login(ctx, "admin@barbearia.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, user.Role)
	assert.Empty(t, user.PasswordHash)

	// snapshot da sessão persistido
	_, ok, err := st.Get(ctx, store.KeySession)
	require.NoError(t, err)
	assert.True(t, ok)

	current, logged, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.True(t, logged)
	assert.Equal(t, user.ID, current.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "admin@barbearia.com", "senha-errada")
	requireBusinessErr(t, err, "invalid_credentials")

	_, err = svc.Login(ctx, "ninguem@barbearia.com", "admin123")
	requireBusinessErr(t, err, "invalid_credentials")
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.RegisterBarber(ctx, models.User{
		Name:  "Carlos",
		Email: "carlos@barbearia.com",
	}, "c0rte123")
	require.NoError(t, err)

	inactive := models.UserInactive
	require.NoError(t, svc.UpdateBarber(ctx, created.ID, UpdateBarberInput{Status: &inactive}))

	_, err = svc.Login(ctx, "carlos@barbearia.com", "c0rte123")
	requireBusinessErr(t, err, "inactive_user")
}

func TestLogoutClearsSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "admin@barbearia.com", "admin123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, logged, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, logged)

	// logout de quem já está deslogado não falha
	require.NoError(t, svc.Logout(ctx))
}

func TestRegisterBarberRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterBarber(ctx, models.User{Name: "Carlos", Email: "carlos@barbearia.com"}, "c0rte123")
	require.NoError(t, err)

	// case-insensitive, inclusive contra o dono
	_, err = svc.RegisterBarber(ctx, models.User{Name: "Outro", Email: "CARLOS@barbearia.com"}, "x")
	requireBusinessErr(t, err, "duplicate_email")

	_, err = svc.RegisterBarber(ctx, models.User{Name: "Outro", Email: "Admin@Barbearia.com"}, "x")
	requireBusinessErr(t, err, "duplicate_email")
}

func TestRegisterBarberHashesPassword(t *testing.T) {
	svc, reg, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.RegisterBarber(ctx, models.User{Name: "Carlos", Email: "carlos@barbearia.com"}, "c0rte123")
	require.NoError(t, err)
	assert.Empty(t, created.PasswordHash)

	stored, ok, err := reg.Users.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "c0rte123", stored.PasswordHash)

	// login com a credencial nova funciona
	_, err = svc.Login(ctx, "carlos@barbearia.com", "c0rte123")
	require.NoError(t, err)
}

func TestListBarbersSynthesizesOwner(t *testing.T) {
	svc, _, st := newTestService(t)
	ctx := context.Background()

	// sem nenhuma conta no storage o dono entra sintetizado
	require.NoError(t, st.Delete(ctx, store.KeyUsers))

	barbers, err := svc.ListBarbers(ctx)
	require.NoError(t, err)
	require.Len(t, barbers, 1)
	assert.Equal(t, models.RoleOwner, barbers[0].Role)
	assert.Equal(t, models.PositionManager, barbers[0].Position)
	assert.Empty(t, barbers[0].PasswordHash)
}

func TestListBarbersOwnerFirstThenBarbers(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterBarber(ctx, models.User{Name: "Carlos", Email: "carlos@barbearia.com"}, "x1")
	require.NoError(t, err)
	_, err = svc.RegisterBarber(ctx, models.User{Name: "João", Email: "joao@barbearia.com"}, "x2")
	require.NoError(t, err)

	barbers, err := svc.ListBarbers(ctx)
	require.NoError(t, err)
	require.Len(t, barbers, 3)
	assert.Equal(t, models.RoleOwner, barbers[0].Role)
	assert.Equal(t, models.PositionManager, barbers[0].Position)
	assert.Equal(t, "Carlos", barbers[1].Name)
	assert.Equal(t, "João", barbers[2].Name)
	for _, u := range barbers {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestUpdateBarberEmailUniqueness(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	carlos, err := svc.RegisterBarber(ctx, models.User{Name: "Carlos", Email: "carlos@barbearia.com"}, "x1")
	require.NoError(t, err)
	_, err = svc.RegisterBarber(ctx, models.User{Name: "João", Email: "joao@barbearia.com"}, "x2")
	require.NoError(t, err)

	taken := "joao@barbearia.com"
	err = svc.UpdateBarber(ctx, carlos.ID, UpdateBarberInput{Email: &taken})
	requireBusinessErr(t, err, "duplicate_email")

	// o próprio e-mail não conta como duplicado
	own := "Carlos@barbearia.com"
	require.NoError(t, svc.UpdateBarber(ctx, carlos.ID, UpdateBarberInput{Email: &own}))
}

func TestUpdateBarberRehashesPassword(t *testing.T) {
	svc, reg, _ := newTestService(t)
	ctx := context.Background()

	carlos, err := svc.RegisterBarber(ctx, models.User{Name: "Carlos", Email: "carlos@barbearia.com"}, "antiga")
	require.NoError(t, err)

	before, _, err := reg.Users.Get(ctx, carlos.ID)
	require.NoError(t, err)

	nova := "nova-senha"
	require.NoError(t, svc.UpdateBarber(ctx, carlos.ID, UpdateBarberInput{Password: &nova}))

	after, _, err := reg.Users.Get(ctx, carlos.ID)
	require.NoError(t, err)
	assert.NotEqual(t, before.PasswordHash, after.PasswordHash)

	_, err = svc.Login(ctx, "carlos@barbearia.com", "nova-senha")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "carlos@barbearia.com", "antiga")
	requireBusinessErr(t, err, "invalid_credentials")
}

func TestUpdateBarberUnknownID(t *testing.T) {
	svc, _, _ := newTestService(t)

	name := "Qualquer"
	err := svc.UpdateBarber(context.Background(), 99999, UpdateBarberInput{Name: &name})
	requireBusinessErr(t, err, "user_not_found")
}

func TestRemoveBarber(t *testing.T) {
	svc, reg, _ := newTestService(t)
	ctx := context.Background()

	carlos, err := svc.RegisterBarber(ctx, models.User{Name: "Carlos", Email: "carlos@barbearia.com"}, "x1")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveBarber(ctx, carlos.ID))

	_, ok, err := reg.Users.Get(ctx, carlos.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// id inexistente é no-op
	require.NoError(t, svc.RemoveBarber(ctx, 99999))
}

func TestRemoveBarberNeverRemovesOwner(t *testing.T) {
	svc, reg, _ := newTestService(t)
	ctx := context.Background()

	owner, ok, err := reg.Users.Owner(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	err = svc.RemoveBarber(ctx, owner.ID)
	requireBusinessErr(t, err, "cannot_remove_owner")
}

func requireBusinessErr(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, code), "esperava %q, veio %v", code, err)
}
