package pour

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/KirkDiggler/kegweb/internal/drink"
	"github.com/KirkDiggler/kegweb/internal/models"
	"github.com/KirkDiggler/kegweb/internal/units"
	drinkerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drinker"
	kegRepo "github.com/KirkDiggler/kegweb/internal/repositories/keg"
)

// enricher attaches kegs, drinkers and grants to records, loading each
// association at most once per request
type enricher struct {
	kegRepo     kegRepo.Repository
	drinkerRepo drinkerRepo.Repository
	logger      *slog.Logger

	kegs     map[string]*models.Keg
	drinkers map[string]*models.Drinker
	grants   map[string]*models.Grant
}

func (s *service) newEnricher() *enricher {
	return &enricher{
		kegRepo:     s.kegRepo,
		drinkerRepo: s.drinkerRepo,
		logger:      s.logger,
		kegs:        make(map[string]*models.Keg),
		drinkers:    make(map[string]*models.Drinker),
		grants:      make(map[string]*models.Grant),
	}
}

// enrich attaches whatever associations of the record still exist.
// A missing keg, drinker or grant is logged and left unattached.
func (e *enricher) enrich(ctx context.Context, record *drink.Record) error {
	if err := e.attachKeg(ctx, record); err != nil {
		return err
	}

	if err := e.attachDrinker(ctx, record); err != nil {
		return err
	}

	return e.attachGrant(ctx, record)
}

func (e *enricher) attachKeg(ctx context.Context, record *drink.Record) error {
	keg, ok := e.kegs[record.KegID]
	if !ok {
		var err error
		keg, err = e.kegRepo.GetKeg(ctx, &kegRepo.GetKegInput{
			KegID: record.KegID,
		})
		if err != nil {
			if !errors.Is(err, kegRepo.ErrKegNotFound) {
				return fmt.Errorf("failed to load keg %s: %w", record.KegID, err)
			}
			e.logger.Warn("drink references missing keg",
				"drink_id", record.ID, "keg_id", record.KegID)
		}
		e.kegs[record.KegID] = keg
	}

	if keg != nil {
		record.AttachKeg(keg)
	}

	return nil
}

func (e *enricher) attachDrinker(ctx context.Context, record *drink.Record) error {
	if record.UserID == "" {
		record.SetDisplayName(GuestName)
		return nil
	}

	drinker, err := e.loadDrinker(ctx, record.UserID)
	if err != nil {
		return err
	}

	if drinker == nil {
		e.logger.Warn("drink references missing drinker",
			"drink_id", record.ID, "drinker_id", record.UserID)
		record.SetDisplayName(GuestName)
		return nil
	}

	record.AttachDrinker(drinker)
	record.SetDisplayName(drinker.Name())
	return nil
}

// loadDrinker returns the cached drinker, or nil when it no longer exists
func (e *enricher) loadDrinker(ctx context.Context, drinkerID string) (*models.Drinker, error) {
	if drinker, ok := e.drinkers[drinkerID]; ok {
		return drinker, nil
	}

	drinker, err := e.drinkerRepo.GetDrinker(ctx, &drinkerRepo.GetDrinkerInput{
		DrinkerID: drinkerID,
	})
	if err != nil {
		if !errors.Is(err, drinkerRepo.ErrDrinkerNotFound) {
			return nil, fmt.Errorf("failed to load drinker %s: %w", drinkerID, err)
		}
	}

	e.drinkers[drinkerID] = drinker
	return drinker, nil
}

// drinkerTotals names the drinkers of a ranking
func (e *enricher) drinkerTotals(ctx context.Context, ranked []*models.DrinkerVolume) ([]*DrinkerTotal, error) {
	totals := make([]*DrinkerTotal, 0, len(ranked))
	for _, entry := range ranked {
		drinker, err := e.loadDrinker(ctx, entry.DrinkerID)
		if err != nil {
			return nil, err
		}

		name := GuestName
		if drinker != nil {
			name = drinker.Name()
		}

		totals = append(totals, &DrinkerTotal{
			DrinkerID:   entry.DrinkerID,
			DrinkerName: name,
			VolumeML:    entry.VolumeML,
			Ounces:      units.MLToOunces(entry.VolumeML),
		})
	}
	return totals, nil
}

func (e *enricher) attachGrant(ctx context.Context, record *drink.Record) error {
	if record.GrantID == "" {
		return nil
	}

	grant, ok := e.grants[record.GrantID]
	if !ok {
		var err error
		grant, err = e.drinkerRepo.GetGrant(ctx, &drinkerRepo.GetGrantInput{
			GrantID: record.GrantID,
		})
		if err != nil {
			if !errors.Is(err, drinkerRepo.ErrGrantNotFound) {
				return fmt.Errorf("failed to load grant %s: %w", record.GrantID, err)
			}
			e.logger.Warn("drink references missing grant",
				"drink_id", record.ID, "grant_id", record.GrantID)
		}
		e.grants[record.GrantID] = grant
	}

	if grant != nil {
		record.AttachGrant(grant)
	}

	return nil
}

// buildView computes the display metrics of an enriched record at now
func buildView(record *drink.Record, now time.Time) (*DrinkView, error) {
	when, err := record.RelativeTimeDescription(now)
	if err != nil {
		return nil, fmt.Errorf("failed to describe drink %s: %w", record.ID, err)
	}

	endedAt, err := record.EndInstant(now.Location())
	if err != nil {
		return nil, fmt.Errorf("failed to describe drink %s: %w", record.ID, err)
	}

	duration, err := record.PourDuration(now.Location())
	if err != nil {
		return nil, fmt.Errorf("failed to describe drink %s: %w", record.ID, err)
	}

	name, err := record.DrinkerName()
	if err != nil || name == "" {
		name = GuestName
	}

	view := &DrinkView{
		ID:          record.ID,
		Path:        record.DetailPath(),
		DrinkerID:   record.UserID,
		DrinkerName: name,
		KegID:       record.KegID,
		Ticks:       record.Ticks,
		Cost:        record.Cost(),
		When:        when,
		EndedAt:     endedAt,
		Duration:    duration,
		Status:      record.Status,
	}

	if keg, ok := record.Keg().(*models.Keg); ok && keg != nil {
		view.KegName = keg.Name
		view.BeverageName = keg.BeverageName
	}

	if grant := record.Grant(); grant != nil {
		view.GrantPolicy = grant.Policy
	}

	if record.Keg() == nil {
		return view, nil
	}

	if view.Ounces, err = record.OuncesPoured(); err != nil {
		return nil, err
	}
	if view.Calories, err = record.CaloriesPoured(); err != nil {
		return nil, err
	}
	if view.SizeOunces, err = record.PourSizeOunces(); err != nil {
		return nil, err
	}
	view.Measured = true

	return view, nil
}

// buildKegView computes a keg's level
func buildKegView(keg *models.Keg) *KegView {
	view := &KegView{
		ID:             keg.ID,
		Name:           keg.Name,
		BeverageName:   keg.BeverageName,
		Online:         keg.Online,
		TappedAt:       keg.TappedAt,
		FullVolumeML:   keg.FullVolumeML,
		ServedVolumeML: keg.ServedVolumeML,
	}

	// Without a size there is no level to report
	if keg.FullVolumeML <= 0 {
		return view
	}

	view.RemainingVolumeML = math.Max(keg.RemainingVolumeML(), 0)
	view.RemainingOunces = units.MLToOunces(view.RemainingVolumeML)
	view.PercentFull = keg.PercentFull()
	view.Empty = keg.IsEmpty()

	return view
}

// buildSessionView computes a session's display fields at now
func buildSessionView(session *models.Session, now time.Time) *SessionView {
	startedAt := session.StartTime.In(now.Location())

	return &SessionView{
		ID:         session.ID,
		Title:      fmt.Sprintf("Session %s", session.ID),
		StartedAt:  startedAt,
		EndsAt:     session.EndTime.In(now.Location()),
		Active:     session.IsActive(now),
		When:       drink.RelativeTime(startedAt, now),
		VolumeML:   session.VolumeML,
		Ounces:     units.MLToOunces(session.VolumeML),
		DrinkCount: session.DrinkCount,
	}
}
