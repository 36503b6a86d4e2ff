// Package bus propaga mudanças de coleção entre as "views" montadas.
// São três caminhos redundantes, como no front original: broadcast no
// mesmo processo carregando o snapshot novo, sinal do substrato para
// escritas vindas de outros processos (só a chave — quem escuta relê) e
// a reconciliação periódica do Poller. Entrega é at-least-once e sem
// ordem garantida entre canais; os consumidores precisam ser
// idempotentes contra snapshots repetidos.
package bus

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/store"
)

// Event é o que chega a um assinante. Quando HasSnapshot é falso o
// sinal veio sem payload (substrato ou outro processo) e o assinante
// deve reler a coleção.
type Event struct {
	Key         string
	Snapshot    string
	HasSnapshot bool
}

type Handler func(Event)

type subscription struct {
	key string
	fn  Handler
}

type Bus struct {
	log zerolog.Logger

	mu     sync.RWMutex
	subs   map[int]subscription
	nextID int

	cancelWatch func()
}

func New(st store.RecordStore, log zerolog.Logger) *Bus {
	b := &Bus{
		log:  log,
		subs: make(map[int]subscription),
	}

	b.cancelWatch = st.Watch(func(key string) {
		b.deliver(Event{Key: key})
	})

	return b
}

// Publish entrega o snapshot novo a todos os assinantes da chave no
// mesmo processo. Chamado pelas coleções logo após persistir.
func (b *Bus) Publish(key, snapshot string) {
	b.deliver(Event{Key: key, Snapshot: snapshot, HasSnapshot: true})
}

// Signal entrega um aviso sem payload; o assinante relê a coleção.
// Usado pelo Poller quando detecta divergência.
func (b *Bus) Signal(key string) {
	b.deliver(Event{Key: key})
}

// Subscribe registra um assinante para uma chave. O cancel devolvido
// remove o registro; toda view deve chamá-lo ao desmontar.
func (b *Bus) Subscribe(key string, fn Handler) (cancel func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = subscription{key: key, fn: fn}
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

func (b *Bus) Close() {
	if b.cancelWatch != nil {
		b.cancelWatch()
	}
}

func (b *Bus) deliver(ev Event) {
	b.mu.RLock()
	fns := make([]Handler, 0, len(b.subs))
	for _, s := range b.subs {
		if s.key == ev.Key {
			fns = append(fns, s.fn)
		}
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}
