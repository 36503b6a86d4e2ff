package models

import "time"

type AuditEvent struct {
	ID string `json:"id"` // uuid

	UserID *int64 `json:"userId"`
	Action string `json:"action"`

	Entity   string `json:"entity"`
	EntityID *int64 `json:"entityId"`
	Metadata string `json:"metadata"`

	CreatedAt time.Time `json:"createdAt"`
}
