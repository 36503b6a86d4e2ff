package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/store"
)

// trilha limitada aos eventos mais recentes
const maxEvents = 500

type Logger struct {
	store store.RecordStore
	log   zerolog.Logger
}

func New(st store.RecordStore, log zerolog.Logger) *Logger {
	return &Logger{store: st, log: log}
}

func (l *Logger) Log(
	ctx context.Context,
	userID *int64,
	action string,
	entity string,
	entityID *int64,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	ev := models.AuditEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now(),
	}

	events, err := l.loadAll(ctx)
	if err != nil {
		return err
	}

	events = append([]models.AuditEvent{ev}, events...)
	if len(events) > maxEvents {
		events = events[:maxEvents]
	}

	raw, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return l.store.Set(ctx, store.KeyAudit, string(raw))
}

// List devolve a trilha, mais recente primeiro.
func (l *Logger) List(ctx context.Context) ([]models.AuditEvent, error) {
	return l.loadAll(ctx)
}

func (l *Logger) loadAll(ctx context.Context) ([]models.AuditEvent, error) {
	raw, ok, err := l.store.Get(ctx, store.KeyAudit)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []models.AuditEvent{}, nil
	}

	var events []models.AuditEvent
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		l.log.Warn().Err(err).Msg("audit trail is not valid JSON, starting over")
		return []models.AuditEvent{}, nil
	}
	return events, nil
}
