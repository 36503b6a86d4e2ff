package models

const (
	RoleOwner  = "owner"
	RoleBarber = "barber"

	PositionAdmin    = "administrador"
	PositionEmployee = "funcionario"

	// sintetizado para o dono nas listagens; nunca persistido
	PositionManager = "gerente"

	UserActive   = "active"
	UserInactive = "inactive"
)

// BarbershopID é constante: o sistema é single-tenant.
const BarbershopID = 1

type User struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`

	Email string `json:"email"`

	// hash bcrypt; o front original guardava a senha em claro
	PasswordHash string `json:"password,omitempty"`

	Role     string `json:"role"`
	Position string `json:"position"`

	Phone     string `json:"telefone"`
	Specialty string `json:"especialidade"`

	Status string `json:"status"`

	BarbershopID int64 `json:"barbeariaId"`
}

// Public devolve uma cópia sem a credencial, para listagens.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
