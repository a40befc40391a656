package drinker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/kegweb/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	drinkerKeyPrefix       = "drinker:"
	grantKeyPrefix         = "grant:"
	drinkerGrantsKeyPrefix = "drinker_grants:"
)

var (
	// ErrDrinkerNotFound is returned when a drinker is not found
	ErrDrinkerNotFound = errors.New("drinker not found")

	// ErrGrantNotFound is returned when a grant is not found
	ErrGrantNotFound = errors.New("grant not found")
)

// Config holds configuration for the Redis drinker repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed drinker repository
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

// SaveDrinker persists a drinker to Redis
func (r *redisRepository) SaveDrinker(ctx context.Context, input *SaveDrinkerInput) error {
	if input == nil || input.Drinker == nil {
		return errors.New("input and drinker cannot be nil")
	}

	if input.Drinker.ID == "" {
		return errors.New("drinker ID cannot be empty")
	}

	drinkerJSON, err := json.Marshal(input.Drinker)
	if err != nil {
		return fmt.Errorf("failed to marshal drinker: %w", err)
	}

	if err := r.client.Set(ctx, drinkerKeyPrefix+input.Drinker.ID, drinkerJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save drinker: %w", err)
	}

	return nil
}

// GetDrinker retrieves a drinker by ID from Redis
func (r *redisRepository) GetDrinker(ctx context.Context, input *GetDrinkerInput) (*models.Drinker, error) {
	if input == nil || input.DrinkerID == "" {
		return nil, errors.New("input and drinker ID cannot be empty")
	}

	drinkerJSON, err := r.client.Get(ctx, drinkerKeyPrefix+input.DrinkerID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDrinkerNotFound
		}
		return nil, fmt.Errorf("failed to get drinker: %w", err)
	}

	var drinker models.Drinker
	if err := json.Unmarshal([]byte(drinkerJSON), &drinker); err != nil {
		return nil, fmt.Errorf("failed to unmarshal drinker: %w", err)
	}

	return &drinker, nil
}

// SaveGrant persists a grant and indexes it under its drinker
func (r *redisRepository) SaveGrant(ctx context.Context, input *SaveGrantInput) error {
	if input == nil || input.Grant == nil {
		return errors.New("input and grant cannot be nil")
	}

	grant := input.Grant
	if grant.ID == "" {
		return errors.New("grant ID cannot be empty")
	}

	if grant.DrinkerID == "" {
		return errors.New("grant drinker ID cannot be empty")
	}

	grantJSON, err := json.Marshal(grant)
	if err != nil {
		return fmt.Errorf("failed to marshal grant: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.TxPipeline()

	pipe.Set(ctx, grantKeyPrefix+grant.ID, grantJSON, 0)
	pipe.ZAdd(ctx, drinkerGrantsKeyPrefix+grant.DrinkerID, redis.Z{
		Score:  float64(grant.IssuedAt.UnixNano()),
		Member: grant.ID,
	})

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save grant: %w", err)
	}

	return nil
}

// GetGrant retrieves a grant by ID from Redis
func (r *redisRepository) GetGrant(ctx context.Context, input *GetGrantInput) (*models.Grant, error) {
	if input == nil || input.GrantID == "" {
		return nil, errors.New("input and grant ID cannot be empty")
	}

	grantJSON, err := r.client.Get(ctx, grantKeyPrefix+input.GrantID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGrantNotFound
		}
		return nil, fmt.Errorf("failed to get grant: %w", err)
	}

	var grant models.Grant
	if err := json.Unmarshal([]byte(grantJSON), &grant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal grant: %w", err)
	}

	return &grant, nil
}

// GetGrantsForDrinker retrieves every grant issued to a drinker, oldest first
func (r *redisRepository) GetGrantsForDrinker(ctx context.Context, input *GetGrantsForDrinkerInput) (*GetGrantsForDrinkerOutput, error) {
	if input == nil || input.DrinkerID == "" {
		return nil, errors.New("input and drinker ID cannot be empty")
	}

	grantIDs, err := r.client.ZRange(ctx, drinkerGrantsKeyPrefix+input.DrinkerID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get grant IDs for drinker: %w", err)
	}

	// If there are no grants, return an empty slice
	if len(grantIDs) == 0 {
		return &GetGrantsForDrinkerOutput{
			Grants: []*models.Grant{},
		}, nil
	}

	// Get all grants in one round trip, keeping index order
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(grantIDs))
	for i, grantID := range grantIDs {
		cmds[i] = pipe.Get(ctx, grantKeyPrefix+grantID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get grants: %w", err)
	}

	grants := make([]*models.Grant, 0, len(grantIDs))
	for i, cmd := range cmds {
		grantJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Grant was deleted between getting the IDs and fetching the grant
				continue
			}
			return nil, fmt.Errorf("failed to get grant %s: %w", grantIDs[i], err)
		}

		var grant models.Grant
		if err := json.Unmarshal([]byte(grantJSON), &grant); err != nil {
			return nil, fmt.Errorf("failed to unmarshal grant %s: %w", grantIDs[i], err)
		}

		grants = append(grants, &grant)
	}

	return &GetGrantsForDrinkerOutput{
		Grants: grants,
	}, nil
}
