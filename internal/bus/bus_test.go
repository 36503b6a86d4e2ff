package bus

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-manager/internal/store"
)

func TestPublishDeliversSnapshotToKeySubscribers(t *testing.T) {
	st := store.NewMemoryStore()
	b := New(st, zerolog.Nop())
	defer b.Close()

	var events []Event
	cancel := b.Subscribe("appointments", func(ev Event) {
		events = append(events, ev)
	})
	defer cancel()

	other := b.Subscribe("barbershop-services", func(Event) {
		t.Fatal("assinante de outra chave não deve receber")
	})
	defer other()

	b.Publish("appointments", `[{"id":1}]`)

	require.Len(t, events, 1)
	assert.True(t, events[0].HasSnapshot)
	assert.Equal(t, `[{"id":1}]`, events[0].Snapshot)
}

func TestStoreWriteSignalsSubscribers(t *testing.T) {
	st := store.NewMemoryStore()
	b := New(st, zerolog.Nop())
	defer b.Close()

	var events []Event
	cancel := b.Subscribe("appointments", func(ev Event) {
		events = append(events, ev)
	})
	defer cancel()

	// escrita direta no substrato (outro "contexto"): chega sem payload
	require.NoError(t, st.Set(context.Background(), "appointments", `[]`))

	require.Len(t, events, 1)
	assert.False(t, events[0].HasSnapshot)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	st := store.NewMemoryStore()
	b := New(st, zerolog.Nop())
	defer b.Close()

	calls := 0
	cancel := b.Subscribe("appointments", func(Event) { calls++ })

	b.Publish("appointments", `[]`)
	cancel()
	b.Publish("appointments", `[]`)

	assert.Equal(t, 1, calls)
}

func TestIdempotentSnapshotDelivery(t *testing.T) {
	st := store.NewMemoryStore()
	b := New(st, zerolog.Nop())
	defer b.Close()

	// estado de view: substituição, nunca acumulação
	var state string
	cancel := b.Subscribe("appointments", func(ev Event) {
		state = ev.Snapshot
	})
	defer cancel()

	b.Publish("appointments", `[{"id":1}]`)
	first := state
	b.Publish("appointments", `[{"id":1}]`)

	assert.Equal(t, first, state)
}

// blindStore esconde o watcher do memory store: só o poller pode
// perceber escritas, como num backend sem feed de mudanças.
type blindStore struct {
	store.RecordStore
}

func (blindStore) Watch(func(key string)) func() { return func() {} }

func TestPollerSignalsOnDivergence(t *testing.T) {
	st := blindStore{store.NewMemoryStore()}
	b := New(st, zerolog.Nop())
	defer b.Close()
	ctx := context.Background()

	signals := make(chan Event, 16)
	cancel := b.Subscribe("appointments", func(ev Event) {
		signals <- ev
	})
	defer cancel()

	p := NewPoller(st, b, 10*time.Millisecond, zerolog.Nop(), "appointments")
	p.Start()
	defer p.Stop()

	// baseline da primeira varredura (chave ausente)
	select {
	case <-signals:
	case <-time.After(2 * time.Second):
		t.Fatal("varredura inicial não sinalizou")
	}

	require.NoError(t, st.Set(ctx, "appointments", `[{"id":1}]`))

	select {
	case ev := <-signals:
		assert.False(t, ev.HasSnapshot)
	case <-time.After(2 * time.Second):
		t.Fatal("poller não detectou a divergência")
	}
}

func TestPollerForceSync(t *testing.T) {
	st := blindStore{store.NewMemoryStore()}
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, "appointments", `[]`))

	b := New(st, zerolog.Nop())
	defer b.Close()

	signals := make(chan Event, 16)
	cancel := b.Subscribe("appointments", func(ev Event) {
		signals <- ev
	})
	defer cancel()

	// intervalo enorme: só o ForceSync pode disparar a varredura
	p := NewPoller(st, b, time.Hour, zerolog.Nop(), "appointments")
	p.Start()
	defer p.Stop()

	p.ForceSync()

	select {
	case <-signals:
	case <-time.After(2 * time.Second):
		t.Fatal("ForceSync não provocou reconciliação")
	}
}
