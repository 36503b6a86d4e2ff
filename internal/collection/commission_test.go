package collection

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-manager/internal/store"
)

func TestCommissionDefaultWhenAbsent(t *testing.T) {
	reg, _ := newTestRegistry(t)

	pct, err := reg.Commission.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, pct.Equal(decimal.NewFromInt(15)))
}

func TestCommissionDefaultWhenGarbage(t *testing.T) {
	reg, st := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, store.KeyCommission, "abc"))

	pct, err := reg.Commission.Get(ctx)
	require.NoError(t, err)
	assert.True(t, pct.Equal(decimal.NewFromInt(15)))
}

func TestCommissionDefaultWhenOutOfRange(t *testing.T) {
	reg, st := newTestRegistry(t)
	ctx := context.Background()

	// escrita direta no substrato, sem passar pelo clamp do Set
	require.NoError(t, st.Set(ctx, store.KeyCommission, "150"))

	pct, err := reg.Commission.Get(ctx)
	require.NoError(t, err)
	assert.True(t, pct.Equal(decimal.NewFromInt(15)), "pct = %s", pct)

	require.NoError(t, st.Set(ctx, store.KeyCommission, "-10"))

	pct, err = reg.Commission.Get(ctx)
	require.NoError(t, err)
	assert.True(t, pct.Equal(decimal.NewFromInt(15)), "pct = %s", pct)

	// 0–100 é faixa válida de leitura, mesmo acima do teto do Set
	require.NoError(t, st.Set(ctx, store.KeyCommission, "75"))

	pct, err = reg.Commission.Get(ctx)
	require.NoError(t, err)
	assert.True(t, pct.Equal(decimal.NewFromInt(75)), "pct = %s", pct)
}

func TestCommissionSetClampsRange(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	applied, err := reg.Commission.Set(ctx, decimal.NewFromInt(80))
	require.NoError(t, err)
	assert.True(t, applied.Equal(decimal.NewFromInt(50)))

	applied, err = reg.Commission.Set(ctx, decimal.NewFromInt(-3))
	require.NoError(t, err)
	assert.True(t, applied.IsZero())

	applied, err = reg.Commission.Set(ctx, decimal.NewFromInt(20))
	require.NoError(t, err)

	stored, err := reg.Commission.Get(ctx)
	require.NoError(t, err)
	assert.True(t, stored.Equal(applied))
}

func TestSeedWritesDefaultsOnlyOnce(t *testing.T) {
	reg, st := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, reg.Seed(ctx, st, zerolog.Nop()))

	services, err := reg.Services.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 5)

	products, err := reg.Products.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)

	sales, err := reg.Sales.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, 3)

	users, err := reg.Users.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "owner", users[0].Role)

	// segunda passada não duplica nem sobrescreve
	require.NoError(t, reg.Services.Remove(ctx, services[0].ID))
	require.NoError(t, reg.Seed(ctx, st, zerolog.Nop()))

	services, err = reg.Services.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 4)
}
