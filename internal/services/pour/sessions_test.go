package pour

import (
	"time"

	"github.com/KirkDiggler/kegweb/internal/models"
	drinkLedgerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drink_ledger"
	"go.uber.org/mock/gomock"
)

func (s *PourServiceTestSuite) newSession(id string, startedAgo time.Duration) *models.Session {
	session := &models.Session{ID: id}
	session.AddPour(s.testTime.Add(-startedAgo), 355, DefaultSessionTimeout)
	return session
}

func (s *PourServiceTestSuite) TestGetCurrentSession() {
	session := s.newSession("4", 2*time.Hour)

	s.mockDrinkRepo.EXPECT().GetCurrentSession(s.ctx).Return(session, nil)
	s.mockDrinkRepo.EXPECT().
		GetSessionDrinkers(s.ctx, &drinkLedgerRepo.GetSessionDrinkersInput{SessionID: "4"}).
		Return(&models.Leaderboard{
			SessionID: "4",
			Drinkers:  []*models.DrinkerVolume{{DrinkerID: s.testDrinkerID, VolumeML: 355}},
		}, nil)
	s.mockDrinkerRepo.EXPECT().GetDrinker(s.ctx, gomock.Any()).Return(s.expectedDrinker, nil)

	output, err := s.pourService.GetSession(s.ctx, &GetSessionInput{})
	s.Require().NoError(err)

	view := output.Session
	s.Equal("Session 4", view.Title)
	s.True(view.Active)
	s.Equal("2 hours 0 minutes ago", view.When)
	s.Equal(1, view.DrinkCount)
	s.InDelta(12.004, view.Ounces, 0.001)
	s.Require().Len(view.Drinkers, 1)
	s.Equal("Mike", view.Drinkers[0].DrinkerName)
}

func (s *PourServiceTestSuite) TestGetSessionByID() {
	session := s.newSession("2", 30*time.Hour)

	s.mockDrinkRepo.EXPECT().
		GetSession(s.ctx, &drinkLedgerRepo.GetSessionInput{SessionID: "2"}).
		Return(session, nil)
	s.mockDrinkRepo.EXPECT().
		GetSessionDrinkers(s.ctx, gomock.Any()).
		Return(&models.Leaderboard{SessionID: "2"}, nil)

	output, err := s.pourService.GetSession(s.ctx, &GetSessionInput{SessionID: "2"})
	s.Require().NoError(err)
	s.False(output.Session.Active)
	s.Empty(output.Session.Drinkers)
}

func (s *PourServiceTestSuite) TestGetSessionNotFound() {
	s.mockDrinkRepo.EXPECT().GetCurrentSession(s.ctx).Return(nil, drinkLedgerRepo.ErrSessionNotFound)

	_, err := s.pourService.GetSession(s.ctx, &GetSessionInput{})
	s.ErrorIs(err, ErrSessionNotFound)

	s.mockDrinkRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(nil, drinkLedgerRepo.ErrSessionNotFound)

	_, err = s.pourService.GetSession(s.ctx, &GetSessionInput{SessionID: "99"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *PourServiceTestSuite) TestListSessions() {
	s.mockDrinkRepo.EXPECT().
		ListSessions(s.ctx, &drinkLedgerRepo.ListSessionsInput{Limit: DefaultListLimit}).
		Return(&drinkLedgerRepo.ListSessionsOutput{
			Sessions: []*models.Session{
				s.newSession("2", time.Hour),
				s.newSession("1", 48*time.Hour),
			},
		}, nil)

	output, err := s.pourService.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Sessions, 2)
	s.True(output.Sessions[0].Active)
	s.False(output.Sessions[1].Active)
	s.Nil(output.Sessions[0].Drinkers)
}
