package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotCache guarda listas de horários resolvidas. Cada profissional tem uma
// versão; escrever na agenda ou no livro de agendamentos incrementa a versão
// e torna as chaves antigas inalcançáveis até expirarem.
type SlotCache interface {
	Version(ctx context.Context, professionalID uint) (int64, error)
	Get(ctx context.Context, key SlotKey) ([]string, bool, error)
	Set(ctx context.Context, key SlotKey, slots []string) error
	Bump(ctx context.Context, professionalID uint) error
}

type SlotKey struct {
	ProfessionalID uint
	Version        int64
	Date           string
	DurationMin    int
}

func (k SlotKey) String() string {
	return fmt.Sprintf("slots:%d:v%d:%s:%d", k.ProfessionalID, k.Version, k.Date, k.DurationMin)
}

func versionKey(professionalID uint) string {
	return fmt.Sprintf("slots:%d:version", professionalID)
}

// --------------------------------------------------
// Redis
// --------------------------------------------------

type RedisSlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSlotCache(client *redis.Client, ttl time.Duration) *RedisSlotCache {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &RedisSlotCache{client: client, ttl: ttl}
}

// NewRedisClient conecta e valida com ping curto
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func (c *RedisSlotCache) Version(ctx context.Context, professionalID uint) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(professionalID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *RedisSlotCache) Get(ctx context.Context, key SlotKey) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false, err
	}
	return slots, true, nil
}

func (c *RedisSlotCache) Set(ctx context.Context, key SlotKey, slots []string) error {
	if slots == nil {
		slots = []string{}
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key.String(), raw, c.ttl).Err()
}

func (c *RedisSlotCache) Bump(ctx context.Context, professionalID uint) error {
	return c.client.Incr(ctx, versionKey(professionalID)).Err()
}

// --------------------------------------------------
// Noop
// --------------------------------------------------

// Noop é usado quando REDIS_ADDR está vazio
type Noop struct{}

func (Noop) Version(context.Context, uint) (int64, error) { return 0, nil }

func (Noop) Get(context.Context, SlotKey) ([]string, bool, error) { return nil, false, nil }

func (Noop) Set(context.Context, SlotKey, []string) error { return nil }

func (Noop) Bump(context.Context, uint) error { return nil }

var (
	_ SlotCache = (*RedisSlotCache)(nil)
	_ SlotCache = Noop{}
)
