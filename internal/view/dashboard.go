// Package view mantém projeções em memória do estado persistido — o
// equivalente às telas montadas do front. Cada view assina o bus,
// troca o snapshot local quando chega mudança e expõe agregados
// derivados sob demanda. Aplicar o mesmo snapshot duas vezes não muda
// nada: o estado é substituído, nunca acumulado.
package view

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-manager/internal/bus"
	"github.com/BruksfildServices01/barber-manager/internal/collection"
	"github.com/BruksfildServices01/barber-manager/internal/metrics"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/store"
)

type Summary struct {
	Date string `json:"data"`

	TodayCount     int `json:"agendamentosHoje"`
	TodayCompleted int `json:"concluidosHoje"`

	GrossToday decimal.Decimal `json:"receitaBrutaHoje"`
	NetToday   decimal.Decimal `json:"receitaLiquidaHoje"`

	GrossTotal decimal.Decimal `json:"receitaBrutaTotal"`
	NetTotal   decimal.Decimal `json:"receitaLiquidaTotal"`

	TopServices []metrics.ServiceRank `json:"topServicos"`
}

type BarberReport struct {
	Barber string `json:"barbeiro"`

	Completed int `json:"concluidos"`

	Gross  decimal.Decimal `json:"receitaBruta"`
	Payout decimal.Decimal `json:"repasse"`
}

// Dashboard é a projeção sobre appointments + comissão + nome do dono.
type Dashboard struct {
	reg *collection.Registry
	log zerolog.Logger

	mu           sync.RWMutex
	appointments []models.Appointment
	commission   decimal.Decimal
	ownerName    string

	cancels []func()
}

func NewDashboard(reg *collection.Registry, b *bus.Bus, log zerolog.Logger) *Dashboard {
	d := &Dashboard{
		reg:        reg,
		log:        log,
		commission: collection.DefaultCommission,
	}

	d.cancels = append(d.cancels, reg.Appointments.Subscribe(func(items []models.Appointment) {
		d.mu.Lock()
		d.appointments = items
		d.mu.Unlock()
	}))

	d.cancels = append(d.cancels, b.Subscribe(store.KeyCommission, func(ev bus.Event) {
		if ev.HasSnapshot {
			pct, err := decimal.NewFromString(strings.TrimSpace(ev.Snapshot))
			if err == nil && collection.ValidCommission(pct) {
				d.mu.Lock()
				d.commission = pct
				d.mu.Unlock()
				return
			}
		}
		// snapshot ilegível ou fora da faixa: relê via Get, que aplica
		// o default
		d.reloadCommission()
	}))

	// renomear o dono muda a atribuição dos agregados
	d.cancels = append(d.cancels, b.Subscribe(store.KeyUsers, func(bus.Event) {
		d.reloadOwner()
	}))

	return d
}

// Refresh carrega o estado inicial direto do store. Chamado na
// montagem e reutilizável como resync forçado.
func (d *Dashboard) Refresh(ctx context.Context) error {
	items, err := d.reg.Appointments.LoadAll(ctx)
	if err != nil {
		return err
	}
	pct, err := d.reg.Commission.Get(ctx)
	if err != nil {
		return err
	}

	owner, ok, err := d.reg.Users.Owner(ctx)
	if err != nil {
		return err
	}
	ownerName := "Administrador"
	if ok {
		ownerName = owner.Name
	}

	d.mu.Lock()
	d.appointments = items
	d.commission = pct
	d.ownerName = ownerName
	d.mu.Unlock()
	return nil
}

// Dispose cancela todas as assinaturas. Toda view montada deve ser
// descartada deterministicamente — nada de intervalo vazado.
func (d *Dashboard) Dispose() {
	for _, cancel := range d.cancels {
		cancel()
	}
	d.cancels = nil
}

// Summary deriva os agregados do dia a partir do snapshot corrente.
func (d *Dashboard) Summary(date string) Summary {
	d.mu.RLock()
	items := d.appointments
	pct := d.commission
	owner := d.ownerName
	d.mu.RUnlock()

	today := metrics.FilterByDate(items, date)
	todayCompleted := metrics.FilterCompleted(today)
	allCompleted := metrics.FilterCompleted(items)

	return Summary{
		Date:           date,
		TodayCount:     len(today),
		TodayCompleted: len(todayCompleted),
		GrossToday:     metrics.GrossRevenue(todayCompleted),
		NetToday:       metrics.NetRevenueForOwner(todayCompleted, pct, owner),
		GrossTotal:     metrics.GrossRevenue(allCompleted),
		NetTotal:       metrics.NetRevenueForOwner(allCompleted, pct, owner),
		TopServices:    metrics.TopServices(allCompleted, 5),
	}
}

// Report deriva o relatório de um barbeiro: serviços concluídos dele,
// receita bruta e o repasse de comissão.
func (d *Dashboard) Report(barber string) BarberReport {
	d.mu.RLock()
	items := d.appointments
	pct := d.commission
	owner := d.ownerName
	d.mu.RUnlock()

	completed := metrics.FilterCompleted(metrics.FilterByStaff(items, barber))

	payout := metrics.NetRevenueForStaff(completed, pct)
	if barber == owner {
		// o dono não paga comissão a si mesmo
		payout = decimal.Zero
	}

	return BarberReport{
		Barber:    barber,
		Completed: len(completed),
		Gross:     metrics.GrossRevenue(completed),
		Payout:    payout,
	}
}

func (d *Dashboard) reloadCommission() {
	pct, err := d.reg.Commission.Get(context.Background())
	if err != nil {
		d.log.Warn().Err(err).Msg("failed to reload commission")
		return
	}
	d.mu.Lock()
	d.commission = pct
	d.mu.Unlock()
}

func (d *Dashboard) reloadOwner() {
	owner, ok, err := d.reg.Users.Owner(context.Background())
	if err != nil {
		d.log.Warn().Err(err).Msg("failed to reload owner")
		return
	}
	if !ok {
		return
	}
	d.mu.Lock()
	d.ownerName = owner.Name
	d.mu.Unlock()
}
