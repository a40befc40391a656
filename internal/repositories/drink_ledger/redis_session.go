package drink_ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/kegweb/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Session key prefixes for Redis
	sessionKeyPrefix         = "session:"
	sessionDrinksKeyPrefix   = "session_drinks:"
	sessionDrinkersKeyPrefix = "session_drinkers:"
	drinkSessionKeyPrefix    = "drink_session:"
	kegDrinkersKeyPrefix     = "keg_drinkers:"
	allSessionsKey           = "sessions"
	currentSessionKey        = "sessions:current"
	sessionSequenceKey       = "sessions:sequence"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// AddDrinkToSession puts a pour in the current session, or starts a new one.
// The current session pointer and the session itself are watched so
// concurrent pours never split one session in two.
func (r *redisRepository) AddDrinkToSession(ctx context.Context, input *AddDrinkToSessionInput) (*models.Session, error) {
	if input == nil || input.DrinkID == "" {
		return nil, errors.New("input and drink ID cannot be empty")
	}

	if input.PouredAt.IsZero() {
		return nil, errors.New("pour time cannot be empty")
	}

	if input.Timeout <= 0 {
		return nil, errors.New("session timeout must be positive")
	}

	var session *models.Session

	txf := func(tx *redis.Tx) error {
		current, err := r.loadCurrentSession(ctx, tx)
		if err != nil {
			return err
		}

		makeCurrent := false
		if current != nil && current.Accepts(input.PouredAt, input.Timeout) {
			session = current
		} else {
			id, err := r.client.Incr(ctx, sessionSequenceKey).Result()
			if err != nil {
				return fmt.Errorf("failed to allocate session ID: %w", err)
			}
			session = &models.Session{
				ID: strconv.FormatInt(id, 10),
			}

			// A late pour that predates the current session does not replace it
			makeCurrent = current == nil || input.PouredAt.After(current.StartTime)
		}

		session.AddPour(input.PouredAt, input.VolumeML, input.Timeout)

		sessionJSON, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, sessionKeyPrefix+session.ID, sessionJSON, 0)
			pipe.ZAdd(ctx, allSessionsKey, redis.Z{
				Score:  float64(session.StartTime.Unix()),
				Member: session.ID,
			})
			if makeCurrent {
				pipe.Set(ctx, currentSessionKey, session.ID, 0)
			}

			pipe.ZAdd(ctx, sessionDrinksKeyPrefix+session.ID, redis.Z{
				Score:  float64(input.PouredAt.Unix()),
				Member: input.DrinkID,
			})
			pipe.Set(ctx, drinkSessionKeyPrefix+input.DrinkID, session.ID, 0)

			if input.DrinkerID != "" {
				pipe.ZIncrBy(ctx, sessionDrinkersKeyPrefix+session.ID, input.VolumeML, input.DrinkerID)
			}
			return nil
		})
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := r.client.Watch(ctx, txf, currentSessionKey)
		if err == nil {
			return session, nil
		}
		if err == redis.TxFailedErr {
			// Another pour moved the session first; regroup against it
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to add drink %s to a session: too much contention", input.DrinkID)
}

// loadCurrentSession reads the current session inside a WATCH and adds the
// session key to the watched set. It returns nil when there is none.
func (r *redisRepository) loadCurrentSession(ctx context.Context, tx *redis.Tx) (*models.Session, error) {
	sessionID, err := tx.Get(ctx, currentSessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current session: %w", err)
	}

	sessionKey := sessionKeyPrefix + sessionID
	if err := tx.Watch(ctx, sessionKey).Err(); err != nil {
		return nil, fmt.Errorf("failed to watch session: %w", err)
	}

	session, err := getSession(ctx, tx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return session, nil
}

// RemoveDrinkFromSession takes a voided pour out of its session's totals.
// Pours that were never grouped are ignored.
func (r *redisRepository) RemoveDrinkFromSession(ctx context.Context, input *RemoveDrinkFromSessionInput) error {
	if input == nil || input.DrinkID == "" {
		return errors.New("input and drink ID cannot be empty")
	}

	drinkSessionKey := drinkSessionKeyPrefix + input.DrinkID

	txf := func(tx *redis.Tx) error {
		sessionID, err := tx.Get(ctx, drinkSessionKey).Result()
		if err != nil {
			if err == redis.Nil {
				return nil
			}
			return fmt.Errorf("failed to get session for drink: %w", err)
		}

		sessionKey := sessionKeyPrefix + sessionID
		if err := tx.Watch(ctx, sessionKey).Err(); err != nil {
			return fmt.Errorf("failed to watch session: %w", err)
		}

		session, err := getSession(ctx, tx, sessionID)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				return nil
			}
			return err
		}

		session.RemovePour(input.VolumeML)

		sessionJSON, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, sessionKey, sessionJSON, 0)
			pipe.ZRem(ctx, sessionDrinksKeyPrefix+sessionID, input.DrinkID)
			pipe.Del(ctx, drinkSessionKey)

			if input.DrinkerID != "" {
				drinkersKey := sessionDrinkersKeyPrefix + sessionID
				pipe.ZIncrBy(ctx, drinkersKey, -input.VolumeML, input.DrinkerID)
				pipe.ZRemRangeByScore(ctx, drinkersKey, "-inf", "0")
			}
			return nil
		})
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := r.client.Watch(ctx, txf, drinkSessionKey)
		if err == nil {
			return nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return err
	}

	return fmt.Errorf("failed to remove drink %s from its session: too much contention", input.DrinkID)
}

// GetSession retrieves a session by ID
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	return getSession(ctx, r.client, input.SessionID)
}

// GetCurrentSession retrieves the newest session
func (r *redisRepository) GetCurrentSession(ctx context.Context) (*models.Session, error) {
	sessionID, err := r.client.Get(ctx, currentSessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get current session: %w", err)
	}

	return getSession(ctx, r.client, sessionID)
}

// ListSessions retrieves sessions, newest first
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	sessionIDs, err := r.client.ZRevRange(ctx, allSessionsKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session IDs: %w", err)
	}

	// If there are no sessions, return an empty slice
	if len(sessionIDs) == 0 {
		return &ListSessionsOutput{
			Sessions: []*models.Session{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(sessionIDs))
	for i, sessionID := range sessionIDs {
		cmds[i] = pipe.Get(ctx, sessionKeyPrefix+sessionID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for i, cmd := range cmds {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", sessionIDs[i], err)
		}

		var session models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionIDs[i], err)
		}
		sessions = append(sessions, &session)
	}

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// GetSessionDrinkers ranks the drinkers of a session by volume
func (r *redisRepository) GetSessionDrinkers(ctx context.Context, input *GetSessionDrinkersInput) (*models.Leaderboard, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	drinkers, err := r.rankDrinkers(ctx, sessionDrinkersKeyPrefix+input.SessionID, 0)
	if err != nil {
		return nil, err
	}

	return &models.Leaderboard{
		SessionID: input.SessionID,
		Drinkers:  drinkers,
	}, nil
}

// AddKegDrinkerVolume adjusts a drinker's running total on a keg. Totals
// that drop to zero leave the ranking.
func (r *redisRepository) AddKegDrinkerVolume(ctx context.Context, input *AddKegDrinkerVolumeInput) error {
	if input == nil || input.KegID == "" || input.DrinkerID == "" {
		return errors.New("input, keg ID and drinker ID cannot be empty")
	}

	drinkersKey := kegDrinkersKeyPrefix + input.KegID

	pipe := r.client.TxPipeline()
	pipe.ZIncrBy(ctx, drinkersKey, input.VolumeML, input.DrinkerID)
	pipe.ZRemRangeByScore(ctx, drinkersKey, "-inf", "0")

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update keg drinker volume: %w", err)
	}

	return nil
}

// GetTopDrinkers ranks the drinkers of a keg by volume
func (r *redisRepository) GetTopDrinkers(ctx context.Context, input *GetTopDrinkersInput) (*models.Leaderboard, error) {
	if input == nil || input.KegID == "" {
		return nil, errors.New("input and keg ID cannot be empty")
	}

	drinkers, err := r.rankDrinkers(ctx, kegDrinkersKeyPrefix+input.KegID, input.Limit)
	if err != nil {
		return nil, err
	}

	return &models.Leaderboard{
		KegID:    input.KegID,
		Drinkers: drinkers,
	}, nil
}

// rankDrinkers reads a drinker volume sorted set, largest first
func (r *redisRepository) rankDrinkers(ctx context.Context, key string, limit int) ([]*models.DrinkerVolume, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	entries, err := r.client.ZRevRangeWithScores(ctx, key, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to rank drinkers: %w", err)
	}

	drinkers := make([]*models.DrinkerVolume, 0, len(entries))
	for _, entry := range entries {
		drinkerID, ok := entry.Member.(string)
		if !ok {
			continue
		}
		drinkers = append(drinkers, &models.DrinkerVolume{
			DrinkerID: drinkerID,
			VolumeML:  entry.Score,
		})
	}

	return drinkers, nil
}

// getSession loads a session with any client, inside a transaction or not
func getSession(ctx context.Context, client redis.Cmdable, sessionID string) (*models.Session, error) {
	sessionJSON, err := client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}
