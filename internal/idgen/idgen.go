package idgen

import (
	"sync"
	"time"
)

// O front original derivava identificadores de Date.now(), o que colide
// quando duas criações caem no mesmo milissegundo. Aqui o contador é
// monotônico: nunca devolve o mesmo valor duas vezes dentro do processo.

var (
	mu   sync.Mutex
	last int64
)

// Next devolve um identificador inteiro único e crescente, ancorado no
// relógio em milissegundos.
func Next() int64 {
	mu.Lock()
	defer mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= last {
		now = last + 1
	}
	last = now
	return now
}
