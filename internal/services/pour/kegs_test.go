package pour

import (
	"context"
	"errors"

	"github.com/KirkDiggler/kegweb/internal/models"
	drinkLedgerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drink_ledger"
	drinkerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drinker"
	kegRepo "github.com/KirkDiggler/kegweb/internal/repositories/keg"
	"go.uber.org/mock/gomock"
)

func (s *PourServiceTestSuite) TestAddKeg() {
	s.mockKegRepo.EXPECT().
		GetKeg(s.ctx, &kegRepo.GetKegInput{KegID: "keg-2"}).
		Return(nil, kegRepo.ErrKegNotFound)
	s.mockKegRepo.EXPECT().
		SaveKeg(s.ctx, &kegRepo.SaveKegInput{Keg: &models.Keg{
			ID:            "keg-2",
			Name:          "Side Tap",
			BeverageName:  "Anchor Steam",
			MLPerTick:     2.2,
			CaloriesPerML: 0.45,
			FullVolumeML:  19550,
			Online:        true,
			TappedAt:      s.testTime,
		}}).
		Return(nil)

	output, err := s.pourService.AddKeg(s.ctx, &AddKegInput{
		KegID:         "keg-2",
		Name:          "Side Tap",
		BeverageName:  "Anchor Steam",
		MLPerTick:     2.2,
		CaloriesPerML: 0.45,
		FullVolumeML:  19550,
		Online:        true,
	})
	s.Require().NoError(err)

	view := output.Keg
	s.Equal("keg-2", view.ID)
	s.True(view.Online)
	s.Equal(100.0, view.PercentFull)
	s.InDelta(19550.0, view.RemainingVolumeML, 1e-9)
	s.False(view.Empty)
}

func (s *PourServiceTestSuite) TestAddKegValidation() {
	testCases := []struct {
		name     string
		input    *AddKegInput
		expected error
	}{
		{name: "nil input", input: nil, expected: ErrInvalidInput},
		{name: "no ID", input: &AddKegInput{Name: "Tap", MLPerTick: 1}, expected: ErrKegIDRequired},
		{name: "no name", input: &AddKegInput{KegID: "keg-2", MLPerTick: 1}, expected: ErrKegNameRequired},
		{name: "no calibration", input: &AddKegInput{KegID: "keg-2", Name: "Tap"}, expected: ErrInvalidMLPerTick},
		{name: "negative size", input: &AddKegInput{KegID: "keg-2", Name: "Tap", MLPerTick: 1, FullVolumeML: -1}, expected: ErrInvalidInput},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.pourService.AddKeg(s.ctx, tc.input)
			s.Nil(output)
			s.ErrorIs(err, tc.expected)
		})
	}
}

func (s *PourServiceTestSuite) TestAddKegRejectsExistingID() {
	s.mockKegRepo.EXPECT().GetKeg(s.ctx, gomock.Any()).Return(s.expectedKeg, nil)

	_, err := s.pourService.AddKeg(s.ctx, &AddKegInput{KegID: s.testKegID, Name: "Main Tap", MLPerTick: 0.5})
	s.ErrorIs(err, ErrKegExists)
}

func (s *PourServiceTestSuite) TestSetKegOnline() {
	keg := *s.expectedKeg

	s.mockKegRepo.EXPECT().GetKeg(s.ctx, gomock.Any()).Return(&keg, nil)
	s.mockKegRepo.EXPECT().
		SaveKeg(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *kegRepo.SaveKegInput) error {
			s.False(input.Keg.Online)
			return nil
		})

	output, err := s.pourService.SetKegOnline(s.ctx, &SetKegOnlineInput{KegID: s.testKegID, Online: false})
	s.Require().NoError(err)
	s.False(output.Keg.Online)

	// Already offline: nothing to save
	s.mockKegRepo.EXPECT().GetKeg(s.ctx, gomock.Any()).Return(&keg, nil)

	_, err = s.pourService.SetKegOnline(s.ctx, &SetKegOnlineInput{KegID: s.testKegID, Online: false})
	s.Require().NoError(err)

	s.mockKegRepo.EXPECT().GetKeg(s.ctx, gomock.Any()).Return(nil, kegRepo.ErrKegNotFound)

	_, err = s.pourService.SetKegOnline(s.ctx, &SetKegOnlineInput{KegID: "missing", Online: true})
	s.ErrorIs(err, ErrKegNotFound)
}

func (s *PourServiceTestSuite) TestGetKegWithTopDrinkers() {
	keg := *s.expectedKeg
	keg.FullVolumeML = 1000
	keg.ServedVolumeML = 750

	s.mockKegRepo.EXPECT().GetKeg(s.ctx, &kegRepo.GetKegInput{KegID: s.testKegID}).Return(&keg, nil)
	s.mockDrinkRepo.EXPECT().
		GetTopDrinkers(s.ctx, &drinkLedgerRepo.GetTopDrinkersInput{KegID: s.testKegID, Limit: DefaultTopDrinkers}).
		Return(&models.Leaderboard{
			KegID: s.testKegID,
			Drinkers: []*models.DrinkerVolume{
				{DrinkerID: s.testDrinkerID, VolumeML: 500},
				{DrinkerID: "user-gone", VolumeML: 250},
			},
		}, nil)
	s.mockDrinkerRepo.EXPECT().
		GetDrinker(s.ctx, &drinkerRepo.GetDrinkerInput{DrinkerID: s.testDrinkerID}).
		Return(s.expectedDrinker, nil)
	s.mockDrinkerRepo.EXPECT().
		GetDrinker(s.ctx, &drinkerRepo.GetDrinkerInput{DrinkerID: "user-gone"}).
		Return(nil, drinkerRepo.ErrDrinkerNotFound)

	output, err := s.pourService.GetKeg(s.ctx, &GetKegInput{KegID: s.testKegID})
	s.Require().NoError(err)

	view := output.Keg
	s.InDelta(250.0, view.RemainingVolumeML, 1e-9)
	s.InDelta(25.0, view.PercentFull, 1e-9)
	s.InDelta(8.4535, view.RemainingOunces, 0.001)
	s.False(view.Empty)

	s.Require().Len(view.TopDrinkers, 2)
	s.Equal("Mike", view.TopDrinkers[0].DrinkerName)
	s.InDelta(16.907, view.TopDrinkers[0].Ounces, 0.001)
	s.Equal(GuestName, view.TopDrinkers[1].DrinkerName)
}

func (s *PourServiceTestSuite) TestGetKegErrors() {
	_, err := s.pourService.GetKeg(s.ctx, &GetKegInput{})
	s.ErrorIs(err, ErrKegIDRequired)

	s.mockKegRepo.EXPECT().GetKeg(s.ctx, gomock.Any()).Return(nil, kegRepo.ErrKegNotFound)
	_, err = s.pourService.GetKeg(s.ctx, &GetKegInput{KegID: "missing"})
	s.ErrorIs(err, ErrKegNotFound)

	rankErr := errors.New("redis down")
	s.mockKegRepo.EXPECT().GetKeg(s.ctx, gomock.Any()).Return(s.expectedKeg, nil)
	s.mockDrinkRepo.EXPECT().GetTopDrinkers(s.ctx, gomock.Any()).Return(nil, rankErr)
	_, err = s.pourService.GetKeg(s.ctx, &GetKegInput{KegID: s.testKegID, TopDrinkers: 3})
	s.ErrorIs(err, rankErr)
}

func (s *PourServiceTestSuite) TestListKegs() {
	empty := &models.Keg{ID: "keg-0", Name: "Old Tap", FullVolumeML: 1000, ServedVolumeML: 1200}
	unsized := &models.Keg{ID: "keg-9", Name: "Mystery"}

	s.mockKegRepo.EXPECT().
		ListKegs(s.ctx, &kegRepo.ListKegsInput{OnlineOnly: true}).
		Return(&kegRepo.ListKegsOutput{Kegs: []*models.Keg{empty, s.expectedKeg, unsized}}, nil)

	output, err := s.pourService.ListKegs(s.ctx, &ListKegsInput{OnlineOnly: true})
	s.Require().NoError(err)
	s.Require().Len(output.Kegs, 3)

	s.True(output.Kegs[0].Empty)
	s.Equal(0.0, output.Kegs[0].RemainingVolumeML)
	s.Equal(0.0, output.Kegs[0].PercentFull)

	s.Equal(100.0, output.Kegs[1].PercentFull)
	s.Nil(output.Kegs[1].TopDrinkers)

	s.False(output.Kegs[2].Empty)
	s.Zero(output.Kegs[2].FullVolumeML)
}
