package store

import "context"

// Chaves persistidas, cada uma totalmente independente.
const (
	KeyAppointments = "appointments"
	KeyServices     = "barbershop-services"
	KeyProducts     = "barbershop-produtos"
	KeySales        = "barbershop-vendas"
	KeyCommission   = "barbershop-comissao"
	KeyUsers        = "registeredUsers"
	KeySession      = "user"
	KeyAudit        = "barbershop-audit"
)

// RecordStore é o substrato chave/valor durável. Sem transações, sem
// versionamento de schema; escrita é last-writer-wins.
type RecordStore interface {
	// Get devolve o valor bruto e se a chave existe.
	Get(ctx context.Context, key string) (string, bool, error)

	Set(ctx context.Context, key, value string) error

	Delete(ctx context.Context, key string) error

	// Watch registra um callback disparado quando o substrato sinaliza
	// mudança em uma chave (inclusive escritas de outros processos).
	// O sinal carrega só a chave — quem escuta deve reler o valor.
	// O cancel devolvido remove o registro.
	Watch(fn func(key string)) (cancel func())

	Close() error
}
