package pour

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/KirkDiggler/kegweb/internal/common/clock"
	"github.com/KirkDiggler/kegweb/internal/common/uuid"
	"github.com/KirkDiggler/kegweb/internal/drink"
	"github.com/KirkDiggler/kegweb/internal/models"
	drinkLedgerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drink_ledger"
	drinkerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drinker"
	kegRepo "github.com/KirkDiggler/kegweb/internal/repositories/keg"
)

// service implements the Service interface
type service struct {
	listLimit       int
	sessionTimeout  time.Duration
	drinkLedgerRepo drinkLedgerRepo.Repository
	kegRepo         kegRepo.Repository
	drinkerRepo     drinkerRepo.Repository
	clock           clock.Clock
	uuidGenerator   uuid.UUID
	logger          *slog.Logger
}

// New creates a new pour service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DrinkLedgerRepo == nil {
		return nil, ErrNilDrinkRepo
	}

	if cfg.KegRepo == nil {
		return nil, ErrNilKegRepo
	}

	if cfg.DrinkerRepo == nil {
		return nil, ErrNilDrinkerRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	listLimit := cfg.ListLimit
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}

	sessionTimeout := cfg.SessionTimeout
	if sessionTimeout <= 0 {
		sessionTimeout = DefaultSessionTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		listLimit:       listLimit,
		sessionTimeout:  sessionTimeout,
		drinkLedgerRepo: cfg.DrinkLedgerRepo,
		kegRepo:         cfg.KegRepo,
		drinkerRepo:     cfg.DrinkerRepo,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		logger:          logger.With("service", "pour"),
	}, nil
}

// RecordPour stores a pour reported by a keg's flow meter
func (s *service) RecordPour(ctx context.Context, input *RecordPourInput) (*RecordPourOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.KegID == "" {
		return nil, ErrKegIDRequired
	}

	if input.Ticks < 0 {
		return nil, ErrInvalidTicks
	}

	keg, err := s.kegRepo.GetKeg(ctx, &kegRepo.GetKegInput{
		KegID: input.KegID,
	})
	if err != nil {
		if errors.Is(err, kegRepo.ErrKegNotFound) {
			return nil, ErrKegNotFound
		}
		return nil, fmt.Errorf("failed to load keg: %w", err)
	}

	// Timestamps are stored in the clock's zone and read back in it
	now := s.clock.Now()
	end := input.EndTime
	if end.IsZero() {
		end = now
	}
	start := input.StartTime
	if start.IsZero() {
		start = end
	}
	end = end.In(now.Location())
	start = start.In(now.Location())

	var drinker *models.Drinker
	if input.DrinkerID != "" {
		drinker, err = s.drinkerRepo.GetDrinker(ctx, &drinkerRepo.GetDrinkerInput{
			DrinkerID: input.DrinkerID,
		})
		if err != nil {
			if errors.Is(err, drinkerRepo.ErrDrinkerNotFound) {
				return nil, ErrDrinkerNotFound
			}
			return nil, fmt.Errorf("failed to load drinker: %w", err)
		}
	}

	var grant *models.Grant
	if input.GrantID != "" {
		grant, err = s.drinkerRepo.GetGrant(ctx, &drinkerRepo.GetGrantInput{
			GrantID: input.GrantID,
		})
		if err != nil {
			if errors.Is(err, drinkerRepo.ErrGrantNotFound) {
				return nil, ErrGrantNotFound
			}
			return nil, fmt.Errorf("failed to load grant: %w", err)
		}

		if grant.DrinkerID != input.DrinkerID {
			return nil, ErrGrantMismatch
		}

		if !grant.IsActive(end) {
			return nil, ErrGrantInactive
		}
	}

	drinkID, err := s.drinkLedgerRepo.NextDrinkID(ctx)
	if err != nil {
		return nil, err
	}

	volume := keg.VolumeForTicks(input.Ticks)

	fields := drink.Fields{
		drink.FieldID:        drinkID,
		drink.FieldTicks:     strconv.FormatInt(input.Ticks, 10),
		drink.FieldVolume:    strconv.FormatFloat(volume, 'f', -1, 64),
		drink.FieldStartTime: drink.FormatTimestamp(start),
		drink.FieldEndTime:   drink.FormatTimestamp(end),
		drink.FieldUserID:    input.DrinkerID,
		drink.FieldKegID:     input.KegID,
		drink.FieldStatus:    string(models.DrinkStatusValid),
	}
	if grant != nil {
		fields[drink.FieldGrantID] = grant.ID
	}

	record, err := drink.New(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build drink record: %w", err)
	}

	if err := s.drinkLedgerRepo.SaveDrink(ctx, &drinkLedgerRepo.SaveDrinkInput{
		Record:  record,
		EventID: input.EventID,
	}); err != nil {
		if errors.Is(err, drinkLedgerRepo.ErrDuplicateEvent) {
			return nil, ErrDuplicatePour
		}
		return nil, err
	}

	// The pour is already recorded; failed totals are logged, not returned,
	// so callers do not retry and record the pour twice
	volumeML := keg.ToML(volume)
	updatedKeg, err := s.kegRepo.AddServedVolume(ctx, &kegRepo.AddServedVolumeInput{
		KegID:    keg.ID,
		VolumeML: volumeML,
	})
	if err != nil {
		s.logger.Error("failed to update keg served volume",
			"drink_id", drinkID, "keg_id", keg.ID, "error", err)
	} else {
		keg = updatedKeg
	}

	s.trackPour(ctx, record, end, volumeML)

	record.AttachKeg(keg)
	if drinker != nil {
		record.AttachDrinker(drinker)
		record.SetDisplayName(drinker.Name())
	} else {
		record.SetDisplayName(GuestName)
	}
	if grant != nil {
		record.AttachGrant(grant)
	}

	view, err := buildView(record, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("pour recorded",
		"drink_id", drinkID,
		"keg_id", keg.ID,
		"drinker_id", input.DrinkerID,
		"ticks", input.Ticks,
		"ounces", view.Ounces)

	return &RecordPourOutput{
		Drink: view,
	}, nil
}

// GetDrink describes a single pour
func (s *service) GetDrink(ctx context.Context, input *GetDrinkInput) (*GetDrinkOutput, error) {
	if input == nil || input.DrinkID == "" {
		return nil, ErrInvalidInput
	}

	record, err := s.drinkLedgerRepo.GetDrink(ctx, &drinkLedgerRepo.GetDrinkInput{
		DrinkID: input.DrinkID,
	})
	if err != nil {
		if errors.Is(err, drinkLedgerRepo.ErrDrinkNotFound) {
			return nil, ErrDrinkNotFound
		}
		return nil, err
	}

	if err := s.newEnricher().enrich(ctx, record); err != nil {
		return nil, err
	}

	view, err := buildView(record, s.clock.Now())
	if err != nil {
		return nil, err
	}

	return &GetDrinkOutput{
		Drink: view,
	}, nil
}

// ListRecentDrinks describes the newest pours across all kegs
func (s *service) ListRecentDrinks(ctx context.Context, input *ListRecentDrinksInput) (*ListDrinksOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	output, err := s.drinkLedgerRepo.ListRecentDrinks(ctx, &drinkLedgerRepo.ListRecentDrinksInput{
		Limit: s.limit(input.Limit),
	})
	if err != nil {
		return nil, err
	}

	return s.describe(ctx, output.Records, input.IncludeVoided)
}

// ListDrinksForKeg describes the newest pours from a keg
func (s *service) ListDrinksForKeg(ctx context.Context, input *ListDrinksForKegInput) (*ListDrinksOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.KegID == "" {
		return nil, ErrKegIDRequired
	}

	output, err := s.drinkLedgerRepo.ListDrinksForKeg(ctx, &drinkLedgerRepo.ListDrinksForKegInput{
		KegID: input.KegID,
		Limit: s.limit(input.Limit),
	})
	if err != nil {
		return nil, err
	}

	return s.describe(ctx, output.Records, input.IncludeVoided)
}

// ListDrinksForDrinker describes the newest pours by a drinker
func (s *service) ListDrinksForDrinker(ctx context.Context, input *ListDrinksForDrinkerInput) (*ListDrinksOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.DrinkerID == "" {
		return nil, ErrDrinkerRequired
	}

	output, err := s.drinkLedgerRepo.ListDrinksForDrinker(ctx, &drinkLedgerRepo.ListDrinksForDrinkerInput{
		DrinkerID: input.DrinkerID,
		Limit:     s.limit(input.Limit),
	})
	if err != nil {
		return nil, err
	}

	return s.describe(ctx, output.Records, input.IncludeVoided)
}

// limit applies the service default to a requested list size
func (s *service) limit(requested int) int {
	if requested <= 0 {
		return s.listLimit
	}
	return requested
}

// describe enriches records and builds their views with a single now,
// so every row in a list is aged against the same instant
func (s *service) describe(ctx context.Context, records []*drink.Record, includeVoided bool) (*ListDrinksOutput, error) {
	now := s.clock.Now()
	e := s.newEnricher()

	views := make([]*DrinkView, 0, len(records))
	for _, record := range records {
		if record.Status == models.DrinkStatusInvalid && !includeVoided {
			continue
		}

		if err := e.enrich(ctx, record); err != nil {
			return nil, err
		}

		view, err := buildView(record, now)
		if err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	return &ListDrinksOutput{
		Drinks: views,
	}, nil
}

// VoidDrink marks a pour invalid and returns its volume to the keg. The
// status change is a compare-and-set, so of several concurrent voids only
// one gives the volume back.
func (s *service) VoidDrink(ctx context.Context, input *VoidDrinkInput) (*VoidDrinkOutput, error) {
	if input == nil || input.DrinkID == "" {
		return nil, ErrInvalidInput
	}

	record, err := s.drinkLedgerRepo.GetDrink(ctx, &drinkLedgerRepo.GetDrinkInput{
		DrinkID: input.DrinkID,
	})
	if err != nil {
		if errors.Is(err, drinkLedgerRepo.ErrDrinkNotFound) {
			return nil, ErrDrinkNotFound
		}
		return nil, err
	}

	if record.Status == models.DrinkStatusInvalid {
		return &VoidDrinkOutput{
			AlreadyVoided: true,
		}, nil
	}

	statusOutput, err := s.drinkLedgerRepo.SetDrinkStatus(ctx, &drinkLedgerRepo.SetDrinkStatusInput{
		DrinkID: record.ID,
		From:    record.Status,
		Status:  models.DrinkStatusInvalid,
	})
	if err != nil {
		if errors.Is(err, drinkLedgerRepo.ErrDrinkNotFound) {
			return nil, ErrDrinkNotFound
		}
		return nil, err
	}

	// Another void won the race between the read and the write
	if !statusOutput.Changed {
		return &VoidDrinkOutput{
			AlreadyVoided: true,
		}, nil
	}

	keg, err := s.kegRepo.GetKeg(ctx, &kegRepo.GetKegInput{
		KegID: record.KegID,
	})
	if err != nil {
		// Voiding succeeded; only the totals could not be corrected
		s.logger.Warn("voided drink without returning volume to keg",
			"drink_id", record.ID, "keg_id", record.KegID, "error", err)
		return &VoidDrinkOutput{}, nil
	}

	volumeML := keg.ToML(record.Volume)
	if _, err := s.kegRepo.AddServedVolume(ctx, &kegRepo.AddServedVolumeInput{
		KegID:    keg.ID,
		VolumeML: -volumeML,
	}); err != nil {
		s.logger.Error("failed to return voided volume to keg",
			"drink_id", record.ID, "keg_id", keg.ID, "error", err)
	}

	s.untrackPour(ctx, record, volumeML)

	s.logger.Info("drink voided", "drink_id", record.ID, "keg_id", record.KegID)

	return &VoidDrinkOutput{}, nil
}

// trackPour adds a recorded pour to its session and the keg's drinker
// ranking. Failures are logged; the pour itself is already stored.
func (s *service) trackPour(ctx context.Context, record *drink.Record, pouredAt time.Time, volumeML float64) {
	session, err := s.drinkLedgerRepo.AddDrinkToSession(ctx, &drinkLedgerRepo.AddDrinkToSessionInput{
		DrinkID:   record.ID,
		DrinkerID: record.UserID,
		PouredAt:  pouredAt,
		VolumeML:  volumeML,
		Timeout:   s.sessionTimeout,
	})
	if err != nil {
		s.logger.Error("failed to add drink to session", "drink_id", record.ID, "error", err)
	} else {
		s.logger.Debug("drink added to session", "drink_id", record.ID, "session_id", session.ID)
	}

	if record.UserID == "" {
		return
	}

	if err := s.drinkLedgerRepo.AddKegDrinkerVolume(ctx, &drinkLedgerRepo.AddKegDrinkerVolumeInput{
		KegID:     record.KegID,
		DrinkerID: record.UserID,
		VolumeML:  volumeML,
	}); err != nil {
		s.logger.Error("failed to update keg drinker volume",
			"drink_id", record.ID, "keg_id", record.KegID, "error", err)
	}
}

// untrackPour takes a voided pour back out of its session and the keg ranking
func (s *service) untrackPour(ctx context.Context, record *drink.Record, volumeML float64) {
	if err := s.drinkLedgerRepo.RemoveDrinkFromSession(ctx, &drinkLedgerRepo.RemoveDrinkFromSessionInput{
		DrinkID:   record.ID,
		DrinkerID: record.UserID,
		VolumeML:  volumeML,
	}); err != nil {
		s.logger.Error("failed to remove voided drink from session", "drink_id", record.ID, "error", err)
	}

	if record.UserID == "" {
		return
	}

	if err := s.drinkLedgerRepo.AddKegDrinkerVolume(ctx, &drinkLedgerRepo.AddKegDrinkerVolumeInput{
		KegID:     record.KegID,
		DrinkerID: record.UserID,
		VolumeML:  -volumeML,
	}); err != nil {
		s.logger.Error("failed to take voided volume from keg drinker",
			"drink_id", record.ID, "keg_id", record.KegID, "error", err)
	}
}
