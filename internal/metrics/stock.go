package metrics

import "github.com/BruksfildServices01/barber-manager/internal/models"

// Classificação de estoque derivada dos limites do produto.
const (
	StockLow   = "baixo"
	StockAlert = "alerta"
	StockOK    = "ok"
)

// StockStatus: baixo quando estoque ≤ mínimo; alerta quando estoque ≤
// 1.5× mínimo; ok acima disso. A comparação 2×estoque ≤ 3×mínimo evita
// ponto flutuante.
func StockStatus(p models.Product) string {
	if p.Stock <= p.MinStock {
		return StockLow
	}
	if 2*p.Stock <= 3*p.MinStock {
		return StockAlert
	}
	return StockOK
}
