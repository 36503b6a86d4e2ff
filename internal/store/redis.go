package store

import (
	"context"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// canal único de notificação; a mensagem é a chave alterada
const changeChannel = "barber:store:changed"

// prefixo evita colisão com outras aplicações no mesmo Redis
const keyPrefix = "barber:"

// RedisStore usa o Redis como substrato durável. Cada escrita publica a
// chave no canal de mudanças, o análogo do storage event entre abas —
// outros processos apontados para o mesmo Redis enxergam a alteração.
type RedisStore struct {
	client *redis.Client
	pubsub *redis.PubSub
	log    zerolog.Logger

	mu       sync.RWMutex
	watchers map[int]func(key string)
	nextID   int

	done chan struct{}
}

func NewRedisStore(url string, log zerolog.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	s := &RedisStore{
		client:   client,
		pubsub:   client.Subscribe(ctx, changeChannel),
		log:      log,
		watchers: make(map[int]func(key string)),
		done:     make(chan struct{}),
	}

	go s.listen()

	return s, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	pipe := s.client.Pipeline()
	pipe.Set(ctx, keyPrefix+key, value, 0)
	pipe.Publish(ctx, changeChannel, key)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, keyPrefix+key)
	pipe.Publish(ctx, changeChannel, key)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Watch(fn func(key string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.watchers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.watchers, id)
	}
}

func (s *RedisStore) Close() error {
	close(s.done)
	s.pubsub.Close()
	return s.client.Close()
}

func (s *RedisStore) listen() {
	ch := s.pubsub.Channel()
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			s.mu.RLock()
			fns := make([]func(key string), 0, len(s.watchers))
			for _, fn := range s.watchers {
				fns = append(fns, fn)
			}
			s.mu.RUnlock()

			for _, fn := range fns {
				fn(msg.Payload)
			}
		}
	}
}
