package collection

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-manager/internal/bus"
	"github.com/BruksfildServices01/barber-manager/internal/store"
)

// DefaultCommission é o percentual aplicado quando nada foi configurado.
var DefaultCommission = decimal.NewFromInt(15)

var (
	commissionMax  = decimal.NewFromInt(50)
	commissionCeil = decimal.NewFromInt(100)
)

// ValidCommission diz se o valor é um percentual plausível. Escritas
// passam pelo clamp do Set, mas o substrato é compartilhado — outro
// processo pode gravar qualquer coisa na chave.
func ValidCommission(pct decimal.Decimal) bool {
	return !pct.IsNegative() && pct.LessThanOrEqual(commissionCeil)
}

// Commission guarda o percentual global de comissão — um único valor
// decimal em texto, sem histórico.
type Commission struct {
	store store.RecordStore
	bus   *bus.Bus
	log   zerolog.Logger
}

func NewCommission(st store.RecordStore, b *bus.Bus, log zerolog.Logger) *Commission {
	return &Commission{store: st, bus: b, log: log}
}

func (c *Commission) Key() string {
	return store.KeyCommission
}

// Get devolve o percentual vigente. Valor ausente, ilegível ou fora da
// faixa cai no default.
func (c *Commission) Get(ctx context.Context) (decimal.Decimal, error) {
	raw, ok, err := c.store.Get(ctx, store.KeyCommission)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return DefaultCommission, nil
	}

	pct, parseErr := decimal.NewFromString(strings.TrimSpace(raw))
	if parseErr != nil {
		c.log.Warn().Err(parseErr).Msg("stored commission is not a number, using default")
		return DefaultCommission, nil
	}
	if !ValidCommission(pct) {
		c.log.Warn().Str("raw", raw).Msg("stored commission out of range, using default")
		return DefaultCommission, nil
	}
	return pct, nil
}

// Set grava o percentual, limitado à faixa 0–50 que a UI oferece, e
// publica a mudança.
func (c *Commission) Set(ctx context.Context, pct decimal.Decimal) (decimal.Decimal, error) {
	if pct.IsNegative() {
		pct = decimal.Zero
	}
	if pct.GreaterThan(commissionMax) {
		pct = commissionMax
	}

	raw := pct.String()
	if err := c.store.Set(ctx, store.KeyCommission, raw); err != nil {
		return pct, err
	}

	c.bus.Publish(store.KeyCommission, raw)
	return pct, nil
}
