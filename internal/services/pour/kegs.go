package pour

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/kegweb/internal/models"
	drinkLedgerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drink_ledger"
	kegRepo "github.com/KirkDiggler/kegweb/internal/repositories/keg"
)

// AddKeg puts a new keg on tap. Keg IDs are never reused so a keg's pours
// and rankings stay its own.
func (s *service) AddKeg(ctx context.Context, input *AddKegInput) (*AddKegOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.KegID == "" {
		return nil, ErrKegIDRequired
	}

	if input.Name == "" {
		return nil, ErrKegNameRequired
	}

	if input.MLPerTick <= 0 {
		return nil, ErrInvalidMLPerTick
	}

	if input.MLPerVolumeUnit < 0 || input.CaloriesPerML < 0 || input.FullVolumeML < 0 {
		return nil, ErrInvalidInput
	}

	_, err := s.kegRepo.GetKeg(ctx, &kegRepo.GetKegInput{
		KegID: input.KegID,
	})
	if err == nil {
		return nil, ErrKegExists
	}
	if !errors.Is(err, kegRepo.ErrKegNotFound) {
		return nil, fmt.Errorf("failed to load keg: %w", err)
	}

	keg := &models.Keg{
		ID:              input.KegID,
		Name:            input.Name,
		BeverageName:    input.BeverageName,
		MLPerTick:       input.MLPerTick,
		MLPerVolumeUnit: input.MLPerVolumeUnit,
		CaloriesPerML:   input.CaloriesPerML,
		FullVolumeML:    input.FullVolumeML,
		Online:          input.Online,
		TappedAt:        s.clock.Now(),
	}

	if err := s.kegRepo.SaveKeg(ctx, &kegRepo.SaveKegInput{
		Keg: keg,
	}); err != nil {
		return nil, err
	}

	s.logger.Info("keg added", "keg_id", keg.ID, "beverage", keg.BeverageName, "online", keg.Online)

	return &AddKegOutput{
		Keg: buildKegView(keg),
	}, nil
}

// SetKegOnline connects or disconnects a keg from its tap
func (s *service) SetKegOnline(ctx context.Context, input *SetKegOnlineInput) (*SetKegOnlineOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.KegID == "" {
		return nil, ErrKegIDRequired
	}

	keg, err := s.loadKeg(ctx, input.KegID)
	if err != nil {
		return nil, err
	}

	if keg.Online != input.Online {
		keg.Online = input.Online

		if err := s.kegRepo.SaveKeg(ctx, &kegRepo.SaveKegInput{
			Keg: keg,
		}); err != nil {
			return nil, err
		}

		s.logger.Info("keg online state changed", "keg_id", keg.ID, "online", keg.Online)
	}

	return &SetKegOnlineOutput{
		Keg: buildKegView(keg),
	}, nil
}

// GetKeg describes a keg's level and its top drinkers
func (s *service) GetKeg(ctx context.Context, input *GetKegInput) (*GetKegOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.KegID == "" {
		return nil, ErrKegIDRequired
	}

	keg, err := s.loadKeg(ctx, input.KegID)
	if err != nil {
		return nil, err
	}

	limit := input.TopDrinkers
	if limit <= 0 {
		limit = DefaultTopDrinkers
	}

	board, err := s.drinkLedgerRepo.GetTopDrinkers(ctx, &drinkLedgerRepo.GetTopDrinkersInput{
		KegID: keg.ID,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	view := buildKegView(keg)
	if view.TopDrinkers, err = s.newEnricher().drinkerTotals(ctx, board.Drinkers); err != nil {
		return nil, err
	}

	return &GetKegOutput{
		Keg: view,
	}, nil
}

// ListKegs describes every keg's level, ordered by ID
func (s *service) ListKegs(ctx context.Context, input *ListKegsInput) (*ListKegsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	output, err := s.kegRepo.ListKegs(ctx, &kegRepo.ListKegsInput{
		OnlineOnly: input.OnlineOnly,
	})
	if err != nil {
		return nil, err
	}

	views := make([]*KegView, 0, len(output.Kegs))
	for _, keg := range output.Kegs {
		views = append(views, buildKegView(keg))
	}

	return &ListKegsOutput{
		Kegs: views,
	}, nil
}

func (s *service) loadKeg(ctx context.Context, kegID string) (*models.Keg, error) {
	keg, err := s.kegRepo.GetKeg(ctx, &kegRepo.GetKegInput{
		KegID: kegID,
	})
	if err != nil {
		if errors.Is(err, kegRepo.ErrKegNotFound) {
			return nil, ErrKegNotFound
		}
		return nil, fmt.Errorf("failed to load keg: %w", err)
	}
	return keg, nil
}
