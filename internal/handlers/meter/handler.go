package meter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/kegweb/internal/services/pour"
)

// TopicPattern is the subscription matching every keg's pour topic,
// kegs/<keg_id>/pours
const TopicPattern = "kegs/+/pours"

// PourEvent is the payload a flow meter controller publishes when a pour ends
type PourEvent struct {
	KegID     string `json:"keg_id,omitempty"`
	DrinkerID string `json:"drinker_id,omitempty"`
	GrantID   string `json:"grant_id,omitempty"`
	Ticks     int64  `json:"ticks"`

	// EventID identifies the pour across redeliveries. The broker delivers
	// at least once, so without it a redelivered event records a second pour.
	EventID string `json:"event_id,omitempty"`

	// StartTime and EndTime are RFC 3339; either may be omitted
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// Handler turns pour events into recorded pours
type Handler struct {
	pourService pour.Service
	logger      *slog.Logger
}

// NewHandler creates a new pour event handler
func NewHandler(pourService pour.Service, logger *slog.Logger) (*Handler, error) {
	if pourService == nil {
		return nil, errors.New("pour service cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		pourService: pourService,
		logger:      logger.With("component", "meter"),
	}, nil
}

// HandlePour records the pour carried by one message. The keg ID falls back
// to the topic's second segment when the payload omits it.
func (h *Handler) HandlePour(ctx context.Context, topic string, payload []byte) error {
	var event PourEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("decode pour event: %w", err)
	}

	if event.KegID == "" {
		parts := strings.Split(topic, "/")
		if len(parts) >= 2 {
			event.KegID = parts[1]
		}
	}

	start, err := parseEventTime(event.StartTime)
	if err != nil {
		return fmt.Errorf("decode pour start time: %w", err)
	}

	end, err := parseEventTime(event.EndTime)
	if err != nil {
		return fmt.Errorf("decode pour end time: %w", err)
	}

	output, err := h.pourService.RecordPour(ctx, &pour.RecordPourInput{
		KegID:     event.KegID,
		DrinkerID: event.DrinkerID,
		GrantID:   event.GrantID,
		Ticks:     event.Ticks,
		StartTime: start,
		EndTime:   end,
		EventID:   event.EventID,
	})
	if errors.Is(err, pour.ErrDuplicatePour) {
		h.logger.Info("ignored redelivered pour event", "topic", topic, "event_id", event.EventID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("record pour from %s: %w", topic, err)
	}

	h.logger.Debug("pour event recorded", "topic", topic, "drink_id", output.Drink.ID)
	return nil
}

func parseEventTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}
