package drink_ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/kegweb/internal/drink"
	"github.com/KirkDiggler/kegweb/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	drinkKeyPrefix         = "drink:"
	kegDrinksKeyPrefix     = "keg_drinks:"
	drinkerDrinksKeyPrefix = "drinker_drinks:"
	recentDrinksKey        = "drinks:recent"
	drinkSequenceKey       = "drinks:sequence"
	pourEventKeyPrefix     = "pour_event:"

	// pourEventRetention is how long a meter event ID is remembered
	pourEventRetention = 24 * time.Hour

	// maxWatchRetries bounds optimistic lock retries
	maxWatchRetries = 10
)

var (
	// ErrDrinkNotFound is returned when a drink record is not found
	ErrDrinkNotFound = errors.New("drink record not found")

	// ErrDuplicateEvent is returned when a meter event was already saved
	ErrDuplicateEvent = errors.New("pour event already recorded")
)

// Config holds configuration for the Redis drink ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed drink ledger repository
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

// NextDrinkID allocates the next sequential drink ID
func (r *redisRepository) NextDrinkID(ctx context.Context) (string, error) {
	id, err := r.client.Incr(ctx, drinkSequenceKey).Result()
	if err != nil {
		return "", fmt.Errorf("failed to allocate drink ID: %w", err)
	}

	return strconv.FormatInt(id, 10), nil
}

// SaveDrink stores the pour row as a hash of its raw fields. With an event
// ID the row is only written if no other row claimed that event.
func (r *redisRepository) SaveDrink(ctx context.Context, input *SaveDrinkInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.ID == "" {
		return errors.New("drink record ID cannot be empty")
	}

	// Index scores use the end time read as UTC; every row shares one zone
	// so the ordering is the same whatever zone the rows were written in
	end, err := record.EndInstant(time.UTC)
	if err != nil {
		return fmt.Errorf("failed to index drink record %s: %w", record.ID, err)
	}

	if input.EventID == "" {
		// Create a Redis transaction
		pipe := r.client.TxPipeline()
		queueSaveDrink(ctx, pipe, record, float64(end.Unix()))

		// Execute the transaction
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to save drink record: %w", err)
		}
		return nil
	}

	eventKey := pourEventKeyPrefix + input.EventID

	txf := func(tx *redis.Tx) error {
		claimed, err := tx.Exists(ctx, eventKey).Result()
		if err != nil {
			return fmt.Errorf("failed to check pour event: %w", err)
		}

		if claimed > 0 {
			return ErrDuplicateEvent
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			queueSaveDrink(ctx, pipe, record, float64(end.Unix()))
			pipe.Set(ctx, eventKey, record.ID, pourEventRetention)
			return nil
		})
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := r.client.Watch(ctx, txf, eventKey)
		if err == nil {
			return nil
		}
		if err == redis.TxFailedErr {
			// A redelivery claimed the event first; the next pass reports it
			continue
		}
		if errors.Is(err, ErrDuplicateEvent) {
			return err
		}
		return fmt.Errorf("failed to save drink record: %w", err)
	}

	return fmt.Errorf("failed to save drink record %s: too much contention", record.ID)
}

// queueSaveDrink adds the row and its index entries to a transaction
func queueSaveDrink(ctx context.Context, pipe redis.Pipeliner, record *drink.Record, score float64) {
	fields := record.Fields()
	fields[drink.FieldStatus] = string(record.Status)

	values := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		values[k] = v
	}

	// Store the row, replacing any previous version of it
	drinkKey := drinkKeyPrefix + record.ID
	pipe.Del(ctx, drinkKey)
	pipe.HSet(ctx, drinkKey, values)

	member := redis.Z{
		Score:  score,
		Member: record.ID,
	}

	pipe.ZAdd(ctx, recentDrinksKey, member)

	if record.KegID != "" {
		pipe.ZAdd(ctx, kegDrinksKeyPrefix+record.KegID, member)
	}

	if record.UserID != "" {
		pipe.ZAdd(ctx, drinkerDrinksKeyPrefix+record.UserID, member)
	}
}

// GetDrink retrieves a pour row by ID
func (r *redisRepository) GetDrink(ctx context.Context, input *GetDrinkInput) (*drink.Record, error) {
	if input == nil || input.DrinkID == "" {
		return nil, errors.New("input and drink ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, drinkKeyPrefix+input.DrinkID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get drink record: %w", err)
	}

	// HGETALL on a missing key returns an empty hash
	if len(fields) == 0 {
		return nil, ErrDrinkNotFound
	}

	record, err := drink.New(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to load drink record %s: %w", input.DrinkID, err)
	}

	return record, nil
}

// ListRecentDrinks retrieves the newest pours across all kegs
func (r *redisRepository) ListRecentDrinks(ctx context.Context, input *ListRecentDrinksInput) (*ListDrinksOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return r.listDrinks(ctx, recentDrinksKey, input.Limit)
}

// ListDrinksForKeg retrieves the newest pours from a keg
func (r *redisRepository) ListDrinksForKeg(ctx context.Context, input *ListDrinksForKegInput) (*ListDrinksOutput, error) {
	if input == nil || input.KegID == "" {
		return nil, errors.New("input and keg ID cannot be empty")
	}

	return r.listDrinks(ctx, kegDrinksKeyPrefix+input.KegID, input.Limit)
}

// ListDrinksForDrinker retrieves the newest pours by a drinker
func (r *redisRepository) ListDrinksForDrinker(ctx context.Context, input *ListDrinksForDrinkerInput) (*ListDrinksOutput, error) {
	if input == nil || input.DrinkerID == "" {
		return nil, errors.New("input and drinker ID cannot be empty")
	}

	return r.listDrinks(ctx, drinkerDrinksKeyPrefix+input.DrinkerID, input.Limit)
}

// listDrinks loads the rows referenced by a sorted set index, newest first
func (r *redisRepository) listDrinks(ctx context.Context, indexKey string, limit int) (*ListDrinksOutput, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	drinkIDs, err := r.client.ZRevRange(ctx, indexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get drink IDs: %w", err)
	}

	// If there are no drinks, return an empty slice
	if len(drinkIDs) == 0 {
		return &ListDrinksOutput{
			Records: []*drink.Record{},
		}, nil
	}

	// Get all drink rows in one round trip, keeping index order
	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(drinkIDs))
	for i, drinkID := range drinkIDs {
		cmds[i] = pipe.HGetAll(ctx, drinkKeyPrefix+drinkID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get drink records: %w", err)
	}

	records := make([]*drink.Record, 0, len(drinkIDs))
	for i, cmd := range cmds {
		fields, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get drink record %s: %w", drinkIDs[i], err)
		}

		if len(fields) == 0 {
			// Row was removed after the index was read
			continue
		}

		record, err := drink.New(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to load drink record %s: %w", drinkIDs[i], err)
		}

		records = append(records, record)
	}

	return &ListDrinksOutput{
		Records: records,
	}, nil
}

// SetDrinkStatus changes the lifecycle tag of a pour. The read and the
// write happen under WATCH, so when callers race to move a pour from the
// same status only one of them reports Changed.
func (r *redisRepository) SetDrinkStatus(ctx context.Context, input *SetDrinkStatusInput) (*SetDrinkStatusOutput, error) {
	if input == nil || input.DrinkID == "" {
		return nil, errors.New("input and drink ID cannot be empty")
	}

	if input.Status == "" {
		return nil, errors.New("drink status cannot be empty")
	}

	drinkKey := drinkKeyPrefix + input.DrinkID
	var changed bool

	txf := func(tx *redis.Tx) error {
		changed = false

		// Only update rows that exist so a typo does not create a partial row
		current, err := tx.HGet(ctx, drinkKey, drink.FieldStatus).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrDrinkNotFound
			}
			return fmt.Errorf("failed to get drink status: %w", err)
		}

		status := models.DrinkStatus(current)
		if status == input.Status {
			return nil
		}
		if input.From != "" && status != input.From {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, drinkKey, drink.FieldStatus, string(input.Status))
			return nil
		})
		if err == nil {
			changed = true
		}
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := r.client.Watch(ctx, txf, drinkKey)
		if err == nil {
			return &SetDrinkStatusOutput{
				Changed: changed,
			}, nil
		}
		if err == redis.TxFailedErr {
			// Another caller changed the row first; re-read its status
			continue
		}
		if errors.Is(err, ErrDrinkNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update drink status: %w", err)
	}

	return nil, fmt.Errorf("failed to update status of drink %s: too much contention", input.DrinkID)
}
