// Package metrics deriva os agregados do dashboard a partir de um
// snapshot de agendamentos, do percentual de comissão e do nome do
// dono. Tudo aqui é função pura: nenhum agregado é persistido, tudo é
// recalculável a qualquer momento a partir do estado atual.
package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

var hundred = decimal.NewFromInt(100)

// ===============================
// Filtros
// ===============================

// FilterByDate: match exato da data (YYYY-MM-DD).
func FilterByDate(items []models.Appointment, date string) []models.Appointment {
	out := make([]models.Appointment, 0, len(items))
	for _, ap := range items {
		if ap.Date == date {
			out = append(out, ap)
		}
	}
	return out
}

// FilterByRange: intervalo de datas inclusivo. O formato YYYY-MM-DD
// ordena lexicograficamente, então a comparação de strings basta.
func FilterByRange(items []models.Appointment, start, end string) []models.Appointment {
	out := make([]models.Appointment, 0, len(items))
	for _, ap := range items {
		if ap.Date >= start && ap.Date <= end {
			out = append(out, ap)
		}
	}
	return out
}

// FilterByStaff: match exato do nome do barbeiro — o agendamento não
// guarda id de barbeiro, só o nome denormalizado.
func FilterByStaff(items []models.Appointment, staffName string) []models.Appointment {
	out := make([]models.Appointment, 0, len(items))
	for _, ap := range items {
		if ap.BarberName == staffName {
			out = append(out, ap)
		}
	}
	return out
}

// FilterCompleted devolve só os concluídos — o ÚNICO conjunto válido
// para qualquer total de receita.
func FilterCompleted(items []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, 0, len(items))
	for _, ap := range items {
		if ap.Status == string(domain.StatusCompleted) {
			out = append(out, ap)
		}
	}
	return out
}

// ===============================
// Receita
// ===============================

// GrossRevenue soma o valor dos agendamentos recebidos. O chamador
// passa o resultado de FilterCompleted; receita nunca inclui pendente,
// confirmado ou cancelado.
func GrossRevenue(completed []models.Appointment) decimal.Decimal {
	total := decimal.Zero
	for _, ap := range completed {
		total = total.Add(ap.Value)
	}
	return total
}

// NetRevenueForOwner é a receita retida pela barbearia: serviços do
// próprio dono entram inteiros, os demais entram descontada a comissão
// do barbeiro.
func NetRevenueForOwner(completed []models.Appointment, commissionPct decimal.Decimal, ownerName string) decimal.Decimal {
	ownerShare := hundred.Sub(commissionPct).Div(hundred)

	total := decimal.Zero
	for _, ap := range completed {
		if ap.BarberName == ownerName {
			total = total.Add(ap.Value)
			continue
		}
		total = total.Add(ap.Value.Mul(ownerShare))
	}
	return total
}

// NetRevenueForStaff é o repasse: a fatia de comissão do barbeiro
// sobre o subconjunto (já filtrado) dos serviços dele.
func NetRevenueForStaff(completed []models.Appointment, commissionPct decimal.Decimal) decimal.Decimal {
	staffShare := commissionPct.Div(hundred)

	total := decimal.Zero
	for _, ap := range completed {
		total = total.Add(ap.Value.Mul(staffShare))
	}
	return total
}

// ===============================
// Ranking de serviços
// ===============================

type ServiceRank struct {
	Name  string          `json:"nome"`
	Count int             `json:"quantidade"`
	Total decimal.Decimal `json:"total"`
}

// TopServices agrupa os concluídos por nome de serviço e devolve os n
// mais frequentes. Ordenação estável: empate em contagem mantém a
// ordem de primeira aparição no snapshot.
func TopServices(completed []models.Appointment, n int) []ServiceRank {
	index := make(map[string]int, len(completed))
	ranks := make([]ServiceRank, 0, len(completed))

	for _, ap := range completed {
		i, ok := index[ap.ServiceName]
		if !ok {
			index[ap.ServiceName] = len(ranks)
			ranks = append(ranks, ServiceRank{Name: ap.ServiceName, Total: decimal.Zero})
			i = len(ranks) - 1
		}
		ranks[i].Count++
		ranks[i].Total = ranks[i].Total.Add(ap.Value)
	}

	sort.SliceStable(ranks, func(a, b int) bool {
		return ranks[a].Count > ranks[b].Count
	})

	if n > 0 && len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}
