package bus

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/store"
)

// Poller é a rede de segurança: a cada intervalo relê as chaves
// observadas e sinaliza as que divergem do último valor visto. Cobre
// eventos perdidos (view montada depois da escrita, backend sem feed de
// mudanças) e garante consistência dentro de um intervalo de poll.
type Poller struct {
	store    store.RecordStore
	bus      *Bus
	log      zerolog.Logger
	interval time.Duration
	keys     []string

	mu   sync.Mutex
	last map[string]string

	kick chan struct{}
	stop func()
	done chan struct{}
}

func NewPoller(st store.RecordStore, b *Bus, interval time.Duration, log zerolog.Logger, keys ...string) *Poller {
	return &Poller{
		store:    st,
		bus:      b,
		log:      log,
		interval: interval,
		keys:     keys,
		last:     make(map[string]string),
		kick:     make(chan struct{}, 1),
	}
}

func (p *Poller) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.stop = cancel
	p.done = make(chan struct{})

	go p.run(ctx)
}

// Stop encerra o loop. Seguro chamar uma única vez após Start.
func (p *Poller) Stop() {
	if p.stop != nil {
		p.stop()
		<-p.done
	}
}

// ForceSync agenda uma passada imediata — o análogo do reload forçado
// quando o documento volta a ficar visível.
func (p *Poller) ForceSync() {
	select {
	case p.kick <- struct{}{}:
	default:
		// passada já agendada
	}
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.sweep(ctx)
		case <-p.kick:
			p.sweep(ctx)
		}
	}
}

func (p *Poller) sweep(ctx context.Context) {
	for _, key := range p.keys {
		raw, ok, err := p.store.Get(ctx, key)
		if err != nil {
			p.log.Warn().Err(err).Str("key", key).Msg("poller: failed to read key")
			continue
		}
		if !ok {
			raw = ""
		}

		p.mu.Lock()
		prev, seen := p.last[key]
		changed := !seen || prev != raw
		if changed {
			p.last[key] = raw
		}
		p.mu.Unlock()

		if changed {
			p.bus.Signal(key)
		}
	}
}
