package collection

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-manager/internal/bus"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/store"
)

// Credencial inicial do dono; trocada no primeiro acesso.
const (
	seedOwnerEmail    = "admin@barbearia.com"
	seedOwnerPassword = "admin123"
)

// Registry agrupa todas as coleções e o que mais é preciso para montar
// a aplicação.
type Registry struct {
	Appointments *Appointments
	Services     *Services
	Products     *Products
	Sales        *Sales
	Users        *Users
	Commission   *Commission
}

func NewRegistry(st store.RecordStore, b *bus.Bus, log zerolog.Logger) *Registry {
	sales := NewSales(st, b, log)
	return &Registry{
		Appointments: NewAppointments(st, b, log),
		Services:     NewServices(st, b, log),
		Products:     NewProducts(st, b, log, sales),
		Sales:        sales,
		Users:        NewUsers(st, b, log),
		Commission:   NewCommission(st, b, log),
	}
}

// Seed grava os defaults de primeira execução, só quando a chave ainda
// não existe.
func (r *Registry) Seed(ctx context.Context, st store.RecordStore, log zerolog.Logger) error {
	if err := r.seedServices(ctx, st); err != nil {
		return err
	}
	if err := r.seedProducts(ctx, st); err != nil {
		return err
	}
	if err := r.seedSales(ctx, st); err != nil {
		return err
	}
	if err := r.seedOwner(ctx, st, log); err != nil {
		return err
	}
	return r.seedCommission(ctx, st)
}

func (r *Registry) seedServices(ctx context.Context, st store.RecordStore) error {
	if _, ok, err := st.Get(ctx, store.KeyServices); err != nil || ok {
		return err
	}

	return r.Services.SaveAll(ctx, []models.Service{
		{ID: 1, Name: "Corte", Price: decimal.NewFromInt(30)},
		{ID: 2, Name: "Barba", Price: decimal.NewFromInt(20)},
		{ID: 3, Name: "Corte + Barba", Price: decimal.NewFromInt(45)},
		{ID: 4, Name: "Sobrancelha", Price: decimal.NewFromInt(10)},
		{ID: 5, Name: "Pezinho", Price: decimal.NewFromInt(15)},
	})
}

func (r *Registry) seedProducts(ctx context.Context, st store.RecordStore) error {
	if _, ok, err := st.Get(ctx, store.KeyProducts); err != nil || ok {
		return err
	}

	return r.Products.SaveAll(ctx, []models.Product{
		{ID: 1, Name: "Pomada Modeladora", Category: "Finalização", Stock: 12, MinStock: 5, CostPrice: decimal.NewFromInt(15), SalePrice: decimal.NewFromInt(35), Supplier: "Distribuidora Central"},
		{ID: 2, Name: "Shampoo Anticaspa", Category: "Higiene", Stock: 8, MinStock: 4, CostPrice: decimal.NewFromInt(12), SalePrice: decimal.NewFromInt(28), Supplier: "Distribuidora Central"},
		{ID: 3, Name: "Óleo para Barba", Category: "Barba", Stock: 6, MinStock: 3, CostPrice: decimal.NewFromInt(18), SalePrice: decimal.NewFromInt(40), Supplier: "BarberSupply"},
		{ID: 4, Name: "Gel Fixador", Category: "Finalização", Stock: 15, MinStock: 6, CostPrice: decimal.NewFromInt(8), SalePrice: decimal.NewFromInt(18), Supplier: "BarberSupply"},
	})
}

func (r *Registry) seedSales(ctx context.Context, st store.RecordStore) error {
	if _, ok, err := st.Get(ctx, store.KeySales); err != nil || ok {
		return err
	}

	return r.Sales.SaveAll(ctx, []models.Sale{
		{ID: 1, ProductID: 1, ProductName: "Pomada Modeladora", Quantity: 1, UnitValue: decimal.NewFromInt(35), TotalValue: decimal.NewFromInt(35), Date: "2025-01-10", Time: "10:30"},
		{ID: 2, ProductID: 2, ProductName: "Shampoo Anticaspa", Quantity: 2, UnitValue: decimal.NewFromInt(28), TotalValue: decimal.NewFromInt(56), Date: "2025-01-11", Time: "15:05"},
		{ID: 3, ProductID: 4, ProductName: "Gel Fixador", Quantity: 1, UnitValue: decimal.NewFromInt(18), TotalValue: decimal.NewFromInt(18), Date: "2025-01-12", Time: "09:20"},
	})
}

func (r *Registry) seedOwner(ctx context.Context, st store.RecordStore, log zerolog.Logger) error {
	if _, ok, err := st.Get(ctx, store.KeyUsers); err != nil || ok {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedOwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	log.Info().Str("email", seedOwnerEmail).Msg("seeding owner account")

	return r.Users.SaveAll(ctx, []models.User{
		{
			ID:           1,
			Name:         "Administrador",
			Email:        seedOwnerEmail,
			PasswordHash: string(hashed),
			Role:         models.RoleOwner,
			Position:     models.PositionAdmin,
			Status:       models.UserActive,
			BarbershopID: models.BarbershopID,
		},
	})
}

func (r *Registry) seedCommission(ctx context.Context, st store.RecordStore) error {
	if _, ok, err := st.Get(ctx, store.KeyCommission); err != nil || ok {
		return err
	}
	return st.Set(ctx, store.KeyCommission, DefaultCommission.String())
}
