// Package collection implementa as coleções de domínio: cada uma é um
// array JSON serializado inteiro sob uma chave própria no RecordStore.
// Toda mutação é um read-modify-write completo da coleção — O(n) por
// operação, aceitável nesta escala e sem resolução de conflito entre
// escritores concorrentes (last-writer-wins).
package collection

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/bus"
	"github.com/BruksfildServices01/barber-manager/internal/idgen"
	"github.com/BruksfildServices01/barber-manager/internal/store"
)

// ErrNotFound sinaliza id ausente para quem precisa do detalhe; as
// operações de mutação tratam ausência como no-op silencioso.
var ErrNotFound = errors.New("not_found")

type Order int

const (
	Append Order = iota
	Prepend
)

// Collection é a base genérica de cada coleção tipada.
type Collection[T any] struct {
	store store.RecordStore
	bus   *bus.Bus
	log   zerolog.Logger

	key   string
	order Order

	id    func(T) int64
	setID func(*T, int64)
}

func New[T any](
	st store.RecordStore,
	b *bus.Bus,
	log zerolog.Logger,
	key string,
	order Order,
	id func(T) int64,
	setID func(*T, int64),
) *Collection[T] {
	return &Collection[T]{
		store: st,
		bus:   b,
		log:   log,
		key:   key,
		order: order,
		id:    id,
		setID: setID,
	}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// LoadAll lê e desserializa a coleção inteira. Chave ausente ou JSON
// corrompido viram coleção vazia — erro de decode nunca sobe para a UI.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []T{}, nil
	}

	items, decodeErr := Decode[T](raw)
	if decodeErr != nil {
		c.log.Warn().Err(decodeErr).Str("key", c.key).Msg("stored value is not valid JSON, treating as empty")
		return []T{}, nil
	}
	return items, nil
}

// SaveAll serializa e grava a coleção inteira, depois publica o
// snapshot novo no bus.
func (c *Collection[T]) SaveAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	if err := c.store.Set(ctx, c.key, string(raw)); err != nil {
		return err
	}

	c.bus.Publish(c.key, string(raw))
	return nil
}

// Add atribui um id novo e persiste. Appointments entram no início
// (mais recente primeiro); as demais coleções no final.
func (c *Collection[T]) Add(ctx context.Context, item T) (T, error) {
	items, err := c.LoadAll(ctx)
	if err != nil {
		return item, err
	}

	c.setID(&item, idgen.Next())

	if c.order == Prepend {
		items = append([]T{item}, items...)
	} else {
		items = append(items, item)
	}

	if err := c.SaveAll(ctx, items); err != nil {
		return item, err
	}
	return item, nil
}

// Update aplica o merge no registro com o id dado. Id ausente é no-op
// silencioso; quem precisa de retorno usa Get antes.
func (c *Collection[T]) Update(ctx context.Context, id int64, merge func(*T)) error {
	items, err := c.LoadAll(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if c.id(items[i]) == id {
			merge(&items[i])
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	return c.SaveAll(ctx, items)
}

// Remove exclui o registro com o id dado; ausência é no-op silencioso.
func (c *Collection[T]) Remove(ctx context.Context, id int64) error {
	items, err := c.LoadAll(ctx)
	if err != nil {
		return err
	}

	out := items[:0]
	removed := false
	for _, it := range items {
		if c.id(it) == id {
			removed = true
			continue
		}
		out = append(out, it)
	}
	if !removed {
		return nil
	}

	return c.SaveAll(ctx, out)
}

// Get procura o registro pelo id.
func (c *Collection[T]) Get(ctx context.Context, id int64) (T, bool, error) {
	var zero T

	items, err := c.LoadAll(ctx)
	if err != nil {
		return zero, false, err
	}

	for _, it := range items {
		if c.id(it) == id {
			return it, true, nil
		}
	}
	return zero, false, nil
}

// Subscribe registra um assinante para a chave desta coleção. Eventos
// com snapshot são decodificados direto do payload; sem snapshot (ou
// payload inválido) o assinante recebe a coleção relida do store.
func (c *Collection[T]) Subscribe(fn func([]T)) (cancel func()) {
	return c.bus.Subscribe(c.key, func(ev bus.Event) {
		if ev.HasSnapshot {
			if items, err := Decode[T](ev.Snapshot); err == nil {
				fn(items)
				return
			}
		}

		items, err := c.LoadAll(context.Background())
		if err != nil {
			c.log.Warn().Err(err).Str("key", c.key).Msg("failed to reload collection after change signal")
			return
		}
		fn(items)
	})
}

// Decode desserializa um snapshot bruto.
func Decode[T any](raw string) ([]T, error) {
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
