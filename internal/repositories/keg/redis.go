package keg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/kegweb/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	kegKeyPrefix  = "keg:"
	allKegsKey    = "kegs"
	onlineKegsKey = "kegs:online"

	// maxServedVolumeRetries bounds optimistic lock retries in AddServedVolume
	maxServedVolumeRetries = 10
)

// ErrKegNotFound is returned when a keg is not found
var ErrKegNotFound = errors.New("keg not found")

// Config holds configuration for the Redis keg repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed keg repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveKeg persists a keg to Redis
func (r *redisRepository) SaveKeg(ctx context.Context, input *SaveKegInput) error {
	if input == nil || input.Keg == nil {
		return errors.New("input and keg cannot be nil")
	}

	if input.Keg.ID == "" {
		return errors.New("keg ID cannot be empty")
	}

	// Marshal the keg to JSON
	kegJSON, err := json.Marshal(input.Keg)
	if err != nil {
		return fmt.Errorf("failed to marshal keg: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.TxPipeline()

	pipe.Set(ctx, kegKeyPrefix+input.Keg.ID, kegJSON, 0)
	pipe.SAdd(ctx, allKegsKey, input.Keg.ID)

	// Keep the online index in step with the keg
	if input.Keg.Online {
		pipe.SAdd(ctx, onlineKegsKey, input.Keg.ID)
	} else {
		pipe.SRem(ctx, onlineKegsKey, input.Keg.ID)
	}

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save keg: %w", err)
	}

	return nil
}

// GetKeg retrieves a keg by ID from Redis
func (r *redisRepository) GetKeg(ctx context.Context, input *GetKegInput) (*models.Keg, error) {
	if input == nil || input.KegID == "" {
		return nil, errors.New("input and keg ID cannot be empty")
	}

	kegJSON, err := r.client.Get(ctx, kegKeyPrefix+input.KegID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrKegNotFound
		}
		return nil, fmt.Errorf("failed to get keg: %w", err)
	}

	var keg models.Keg
	if err := json.Unmarshal([]byte(kegJSON), &keg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keg: %w", err)
	}

	return &keg, nil
}

// ListKegs retrieves all kegs ordered by ID
func (r *redisRepository) ListKegs(ctx context.Context, input *ListKegsInput) (*ListKegsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	indexKey := allKegsKey
	if input.OnlineOnly {
		indexKey = onlineKegsKey
	}

	kegIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get keg IDs: %w", err)
	}

	if len(kegIDs) == 0 {
		return &ListKegsOutput{
			Kegs: []*models.Keg{},
		}, nil
	}

	sort.Strings(kegIDs)

	// Get all kegs using a pipeline
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(kegIDs))
	for i, kegID := range kegIDs {
		cmds[i] = pipe.Get(ctx, kegKeyPrefix+kegID)
	}

	// redis.Nil for a removed keg surfaces from Exec; it is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get kegs: %w", err)
	}

	kegs := make([]*models.Keg, 0, len(kegIDs))
	for i, cmd := range cmds {
		kegJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get keg %s: %w", kegIDs[i], err)
		}

		var keg models.Keg
		if err := json.Unmarshal([]byte(kegJSON), &keg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal keg %s: %w", kegIDs[i], err)
		}
		kegs = append(kegs, &keg)
	}

	return &ListKegsOutput{
		Kegs: kegs,
	}, nil
}

// AddServedVolume adds a poured amount to a keg's served volume. A negative
// amount gives volume back, never taking the served volume below zero.
// Concurrent pours on the same keg are serialized with WATCH.
func (r *redisRepository) AddServedVolume(ctx context.Context, input *AddServedVolumeInput) (*models.Keg, error) {
	if input == nil || input.KegID == "" {
		return nil, errors.New("input and keg ID cannot be empty")
	}

	kegKey := kegKeyPrefix + input.KegID
	var updated models.Keg

	txf := func(tx *redis.Tx) error {
		kegJSON, err := tx.Get(ctx, kegKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrKegNotFound
			}
			return fmt.Errorf("failed to get keg: %w", err)
		}

		if err := json.Unmarshal([]byte(kegJSON), &updated); err != nil {
			return fmt.Errorf("failed to unmarshal keg: %w", err)
		}

		updated.ServedVolumeML += input.VolumeML
		if updated.ServedVolumeML < 0 {
			updated.ServedVolumeML = 0
		}

		updatedJSON, err := json.Marshal(updated)
		if err != nil {
			return fmt.Errorf("failed to marshal keg: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, kegKey, updatedJSON, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxServedVolumeRetries; i++ {
		err := r.client.Watch(ctx, txf, kegKey)
		if err == nil {
			return &updated, nil
		}
		if err == redis.TxFailedErr {
			// Another pour changed the keg first; retry on the new value
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to update served volume for keg %s: too much contention", input.KegID)
}
