package draftstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cinema-checkout/internal/data/entity"
	"cinema-checkout/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "checkout:draft:"

// RedisStore keeps drafts in Redis with a TTL, so abandoned checkouts
// clean themselves up without a sweeper job.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisStore(config utils.RedisConfig, ttl time.Duration, log *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("store", "draft_redis")),
	}, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*entity.CheckoutDraft, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		s.log.Error("Failed to get draft", zap.Error(err))
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var draft entity.CheckoutDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		s.log.Error("Failed to decode draft", zap.Error(err))
		return nil, fmt.Errorf("decode draft: %w", err)
	}

	return &draft, nil
}

func (s *RedisStore) Put(ctx context.Context, token string, draft *entity.CheckoutDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	// Every write refreshes the TTL; an active wizard never expires mid-step.
	if err := s.client.Set(ctx, redisKeyPrefix+token, data, s.ttl).Err(); err != nil {
		s.log.Error("Failed to put draft", zap.Error(err))
		return fmt.Errorf("put draft: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		s.log.Error("Failed to delete draft", zap.Error(err))
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
