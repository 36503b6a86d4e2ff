// Package auth implementa o colaborador de autenticação: login por
// e-mail e senha contra a coleção de usuários, sessão persistida como
// snapshot sob a chave "user" e o CRUD de barbeiros. As senhas são
// armazenadas com bcrypt — o fluxo (credencial → registro, rejeição de
// e-mail duplicado) é o mesmo do front original, a credencial em claro
// não.
package auth

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-manager/internal/collection"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/store"
)

// Dono sintetizado quando a conta owner não está no storage. Aparece em
// toda listagem de barbeiros disponíveis, com position gerente.
var fallbackOwner = models.User{
	ID:           1,
	Name:         "Administrador",
	Email:        "admin@barbearia.com",
	Role:         models.RoleOwner,
	Status:       models.UserActive,
	BarbershopID: models.BarbershopID,
}

type Service struct {
	users *collection.Users
	store store.RecordStore
	log   zerolog.Logger
}

func NewService(users *collection.Users, st store.RecordStore, log zerolog.Logger) *Service {
	return &Service{users: users, store: st, log: log}
}

// ===============================
// Sessão
// ===============================

// Login valida a credencial e persiste o snapshot do usuário logado.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, error) {
	user, ok, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, httperr.ErrBusiness("invalid_credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, httperr.ErrBusiness("invalid_credentials")
	}

	if user.Status == models.UserInactive {
		return models.User{}, httperr.ErrBusiness("inactive_user")
	}

	snapshot := user.Public()
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return models.User{}, err
	}
	if err := s.store.Set(ctx, store.KeySession, string(raw)); err != nil {
		return models.User{}, err
	}

	return snapshot, nil
}

// Logout remove o snapshot da sessão. Chave ausente = deslogado.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, store.KeySession)
}

// CurrentUser devolve o snapshot persistido da sessão, se houver.
func (s *Service) CurrentUser(ctx context.Context) (models.User, bool, error) {
	raw, ok, err := s.store.Get(ctx, store.KeySession)
	if err != nil || !ok {
		return models.User{}, false, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn().Err(err).Msg("stored session is not valid JSON, treating as logged out")
		return models.User{}, false, nil
	}
	return user, true, nil
}

// ===============================
// Barbeiros
// ===============================

// ListBarbers devolve o dono + barbeiros, sem o campo de senha. O dono
// entra sempre, sintetizado com position gerente mesmo quando não está
// no storage.
func (s *Service) ListBarbers(ctx context.Context) ([]models.User, error) {
	owner, ok, err := s.users.Owner(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		owner = fallbackOwner
	}
	owner = owner.Public()
	owner.Position = models.PositionManager

	out := []models.User{owner}

	users, err := s.users.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Role != models.RoleBarber {
			continue
		}
		out = append(out, u.Public())
	}
	return out, nil
}

// RegisterBarber cria a conta de um barbeiro. E-mail é único entre
// todas as contas, case-insensitive.
func (s *Service) RegisterBarber(ctx context.Context, in models.User, password string) (models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Name == "" || in.Email == "" || password == "" {
		return in, httperr.ErrBusiness("missing_required_field")
	}

	if _, exists, err := s.users.FindByEmail(ctx, in.Email); err != nil {
		return in, err
	} else if exists {
		return in, httperr.ErrBusiness("duplicate_email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return in, err
	}

	in.PasswordHash = string(hashed)
	in.Role = models.RoleBarber
	if in.Position == "" {
		in.Position = models.PositionEmployee
	}
	if in.Status == "" {
		in.Status = models.UserActive
	}
	in.BarbershopID = models.BarbershopID

	created, err := s.users.Add(ctx, in)
	if err != nil {
		return in, err
	}
	return created.Public(), nil
}

// UpdateBarberInput: campos opcionais; nil não altera.
type UpdateBarberInput struct {
	Name      *string
	Email     *string
	Password  *string
	Phone     *string
	Specialty *string
	Status    *string
}

func (s *Service) UpdateBarber(ctx context.Context, id int64, in UpdateBarberInput) error {
	if _, ok, err := s.users.Get(ctx, id); err != nil {
		return err
	} else if !ok {
		return httperr.ErrBusiness("user_not_found")
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if existing, exists, err := s.users.FindByEmail(ctx, email); err != nil {
			return err
		} else if exists && existing.ID != id {
			return httperr.ErrBusiness("duplicate_email")
		}
		in.Email = &email
	}

	var hashed string
	if in.Password != nil && *in.Password != "" {
		b, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hashed = string(b)
	}

	return s.users.Update(ctx, id, func(u *models.User) {
		if in.Name != nil {
			u.Name = strings.TrimSpace(*in.Name)
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if hashed != "" {
			u.PasswordHash = hashed
		}
		if in.Phone != nil {
			u.Phone = *in.Phone
		}
		if in.Specialty != nil {
			u.Specialty = *in.Specialty
		}
		if in.Status != nil {
			u.Status = *in.Status
		}
	})
}

// RemoveBarber exclui a conta; a conta owner nunca é removida.
func (s *Service) RemoveBarber(ctx context.Context, id int64) error {
	user, ok, err := s.users.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		// no-op, como nas demais coleções
		return nil
	}
	if user.Role == models.RoleOwner {
		return httperr.ErrBusiness("cannot_remove_owner")
	}

	return s.users.Remove(ctx, id)
}
