package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
)

const redisPrefix = "booking:"

// RedisStore guarda estado de sessão (carrinho, perfil) no Redis.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (s *RedisStore) Load(ctx context.Context, key string, dest any) {
	raw, err := s.rdb.Get(ctx, redisPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("store: load %q failed, keeping default: %v", key, err)
		}
		return
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("store: decode %q failed, keeping default: %v", key, err)
	}
}

func (s *RedisStore) Save(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: encode %q failed, dropping write: %v", key, err)
		return
	}

	if err := s.rdb.Set(ctx, redisPrefix+key, raw, 0).Err(); err != nil {
		log.Printf("store: save %q failed, dropping write: %v", key, err)
	}
}

var _ Store = (*RedisStore)(nil)
