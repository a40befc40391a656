package drink_ledger

import (
	"sync"
	"time"

	"github.com/KirkDiggler/kegweb/internal/models"
)

const testSessionTimeout = 3 * time.Hour

func (s *RedisRepositoryTestSuite) addToSession(drinkID, drinkerID string, at time.Time, volumeML float64) *models.Session {
	session, err := s.repo.AddDrinkToSession(s.ctx, &AddDrinkToSessionInput{
		DrinkID:   drinkID,
		DrinkerID: drinkerID,
		PouredAt:  at,
		VolumeML:  volumeML,
		Timeout:   testSessionTimeout,
	})
	s.Require().NoError(err)
	return session
}

func (s *RedisRepositoryTestSuite) TestAddDrinkToSessionGroupsByTimeout() {
	first := s.addToSession("1", "user-1", s.testNow, 350)
	s.Equal("1", first.ID)
	s.Equal(s.testNow.Add(testSessionTimeout), first.EndTime)

	// Two hours later is inside the window and pushes the end out
	second := s.addToSession("2", "user-2", s.testNow.Add(2*time.Hour), 150)
	s.Equal("1", second.ID)
	s.Equal(s.testNow.Add(5*time.Hour), second.EndTime)
	s.InDelta(500.0, second.VolumeML, 1e-9)
	s.Equal(2, second.DrinkCount)

	// Past the end starts a new session
	third := s.addToSession("3", "user-1", s.testNow.Add(6*time.Hour), 200)
	s.Equal("2", third.ID)

	current, err := s.repo.GetCurrentSession(s.ctx)
	s.Require().NoError(err)
	s.Equal("2", current.ID)

	output, err := s.repo.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Sessions, 2)
	s.Equal("2", output.Sessions[0].ID)
	s.Equal("1", output.Sessions[1].ID)

	limited, err := s.repo.ListSessions(s.ctx, &ListSessionsInput{Limit: 1})
	s.Require().NoError(err)
	s.Len(limited.Sessions, 1)
}

func (s *RedisRepositoryTestSuite) TestAddDrinkToSessionLatePourKeepsCurrent() {
	s.addToSession("1", "user-1", s.testNow, 350)
	s.addToSession("2", "user-1", s.testNow.Add(4*time.Hour), 350)

	// Reported late, well before the current session
	late := s.addToSession("3", "user-1", s.testNow.Add(-10*time.Hour), 100)
	s.Equal("3", late.ID)

	current, err := s.repo.GetCurrentSession(s.ctx)
	s.Require().NoError(err)
	s.Equal("2", current.ID)
}

func (s *RedisRepositoryTestSuite) TestAddDrinkToSessionConcurrentPoursShareSession() {
	const pours = 6
	var wg sync.WaitGroup

	for i := 0; i < pours; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.repo.AddDrinkToSession(s.ctx, &AddDrinkToSessionInput{
				DrinkID:   string(rune('a' + i)),
				DrinkerID: "user-1",
				PouredAt:  s.testNow.Add(time.Duration(i) * time.Minute),
				VolumeML:  100,
				Timeout:   testSessionTimeout,
			})
			s.NoError(err)
		}(i)
	}
	wg.Wait()

	output, err := s.repo.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Sessions, 1)
	s.Equal(pours, output.Sessions[0].DrinkCount)
	s.InDelta(600.0, output.Sessions[0].VolumeML, 1e-9)
}

func (s *RedisRepositoryTestSuite) TestAddDrinkToSessionValidatesInput() {
	_, err := s.repo.AddDrinkToSession(s.ctx, &AddDrinkToSessionInput{DrinkID: "1", PouredAt: s.testNow})
	s.Error(err)

	_, err = s.repo.AddDrinkToSession(s.ctx, &AddDrinkToSessionInput{DrinkID: "1", Timeout: time.Hour})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestRemoveDrinkFromSession() {
	s.addToSession("1", "user-1", s.testNow, 350)
	s.addToSession("2", "user-2", s.testNow.Add(time.Minute), 150)

	err := s.repo.RemoveDrinkFromSession(s.ctx, &RemoveDrinkFromSessionInput{
		DrinkID:   "2",
		DrinkerID: "user-2",
		VolumeML:  150,
	})
	s.Require().NoError(err)

	session, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "1"})
	s.Require().NoError(err)
	s.InDelta(350.0, session.VolumeML, 1e-9)
	s.Equal(1, session.DrinkCount)

	board, err := s.repo.GetSessionDrinkers(s.ctx, &GetSessionDrinkersInput{SessionID: "1"})
	s.Require().NoError(err)
	s.Require().Len(board.Drinkers, 1)
	s.Equal("user-1", board.Drinkers[0].DrinkerID)

	// A second removal finds no session link and changes nothing
	err = s.repo.RemoveDrinkFromSession(s.ctx, &RemoveDrinkFromSessionInput{
		DrinkID:   "2",
		DrinkerID: "user-2",
		VolumeML:  150,
	})
	s.Require().NoError(err)

	session, err = s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "1"})
	s.Require().NoError(err)
	s.Equal(1, session.DrinkCount)
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "9"})
	s.ErrorIs(err, ErrSessionNotFound)

	_, err = s.repo.GetCurrentSession(s.ctx)
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSessionDrinkersRanked() {
	s.addToSession("1", "user-1", s.testNow, 100)
	s.addToSession("2", "user-2", s.testNow.Add(time.Minute), 300)
	s.addToSession("3", "user-1", s.testNow.Add(2*time.Minute), 100)
	s.addToSession("4", "", s.testNow.Add(3*time.Minute), 500)

	board, err := s.repo.GetSessionDrinkers(s.ctx, &GetSessionDrinkersInput{SessionID: "1"})
	s.Require().NoError(err)
	s.Equal("1", board.SessionID)
	s.Equal([]*models.DrinkerVolume{
		{DrinkerID: "user-2", VolumeML: 300},
		{DrinkerID: "user-1", VolumeML: 200},
	}, board.Drinkers)
}

func (s *RedisRepositoryTestSuite) TestTopDrinkers() {
	for _, entry := range []struct {
		drinkerID string
		volumeML  float64
	}{
		{"user-1", 350},
		{"user-2", 500},
		{"user-3", 100},
		{"user-1", 350},
	} {
		err := s.repo.AddKegDrinkerVolume(s.ctx, &AddKegDrinkerVolumeInput{
			KegID:     "keg-1",
			DrinkerID: entry.drinkerID,
			VolumeML:  entry.volumeML,
		})
		s.Require().NoError(err)
	}

	board, err := s.repo.GetTopDrinkers(s.ctx, &GetTopDrinkersInput{KegID: "keg-1", Limit: 2})
	s.Require().NoError(err)
	s.Equal("keg-1", board.KegID)
	s.Equal([]*models.DrinkerVolume{
		{DrinkerID: "user-1", VolumeML: 700},
		{DrinkerID: "user-2", VolumeML: 500},
	}, board.Drinkers)

	// Taking a drinker's whole total back removes them
	err = s.repo.AddKegDrinkerVolume(s.ctx, &AddKegDrinkerVolumeInput{
		KegID:     "keg-1",
		DrinkerID: "user-3",
		VolumeML:  -100,
	})
	s.Require().NoError(err)

	board, err = s.repo.GetTopDrinkers(s.ctx, &GetTopDrinkersInput{KegID: "keg-1"})
	s.Require().NoError(err)
	s.Len(board.Drinkers, 2)

	empty, err := s.repo.GetTopDrinkers(s.ctx, &GetTopDrinkersInput{KegID: "keg-2"})
	s.Require().NoError(err)
	s.Empty(empty.Drinkers)
}
