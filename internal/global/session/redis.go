package session

import (
	"context"
	"fmt"
	"strconv"

	"cadpro-backend/config"

	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix = "session:token:"
	userKeyPrefix  = "session:user:"
)

// RedisStore mantém o mapeamento token<->usuário em duas chaves, para
// que o login reaproveite o token vigente sem varrer o keyspace.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore() *RedisStore {
	cfg := config.Get().Redis
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisStore{client: client}
}

func (r *RedisStore) GetOrCreate(ctx context.Context, userID uint) (string, error) {
	userKey := userKeyPrefix + strconv.FormatUint(uint64(userID), 10)

	token, err := r.client.Get(ctx, userKey).Result()
	if err == nil {
		return token, nil
	}
	if err != redis.Nil {
		return "", fmt.Errorf("consulta de sessão: %w", err)
	}

	token = NewToken()
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, tokenKeyPrefix+token, userID, 0)
	pipe.Set(ctx, userKey, token, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("criação de sessão: %w", err)
	}
	return token, nil
}

func (r *RedisStore) Resolve(ctx context.Context, token string) (uint, bool, error) {
	val, err := r.client.Get(ctx, tokenKeyPrefix+token).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("consulta de sessão: %w", err)
	}
	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("sessão corrompida: %w", err)
	}
	return uint(userID), true, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	val, err := r.client.Get(ctx, tokenKeyPrefix+token).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("consulta de sessão: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, tokenKeyPrefix+token)
	pipe.Del(ctx, userKeyPrefix+val)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("remoção de sessão: %w", err)
	}
	return nil
}
