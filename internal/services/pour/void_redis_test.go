package pour

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/kegweb/internal/common/clock"
	"github.com/KirkDiggler/kegweb/internal/common/uuid"
	"github.com/KirkDiggler/kegweb/internal/drink"
	"github.com/KirkDiggler/kegweb/internal/models"
	drinkLedgerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drink_ledger"
	drinkerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drinker"
	kegRepo "github.com/KirkDiggler/kegweb/internal/repositories/keg"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// gatedLedger holds every GetDrink until the expected number of callers
// have read the row, so concurrent voids all see it as valid
type gatedLedger struct {
	drinkLedgerRepo.Repository
	reads *sync.WaitGroup
}

func (g *gatedLedger) GetDrink(ctx context.Context, input *drinkLedgerRepo.GetDrinkInput) (*drink.Record, error) {
	record, err := g.Repository.GetDrink(ctx, input)
	g.reads.Done()
	g.reads.Wait()
	return record, err
}

type PourRedisTestSuite struct {
	suite.Suite
	mr          *miniredis.Miniredis
	client      *redis.Client
	ledger      drinkLedgerRepo.Repository
	kegs        kegRepo.Repository
	drinkers    drinkerRepo.Repository
	ctx         context.Context
	logger      *slog.Logger
	pourService Service
}

func (s *PourRedisTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	ledger, err := drinkLedgerRepo.NewRedis(&drinkLedgerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.ledger = ledger

	kegs, err := kegRepo.NewRedis(&kegRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.kegs = kegs

	drinkers, err := drinkerRepo.NewRedis(&drinkerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.drinkers = drinkers

	s.pourService = s.newService(s.ledger)

	s.Require().NoError(s.kegs.SaveKeg(s.ctx, &kegRepo.SaveKegInput{Keg: &models.Keg{
		ID:             "keg-1",
		Name:           "Main Tap",
		MLPerTick:      1,
		FullVolumeML:   19550,
		ServedVolumeML: 500,
		Online:         true,
		TappedAt:       time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
	}}))
	s.Require().NoError(s.drinkers.SaveDrinker(s.ctx, &drinkerRepo.SaveDrinkerInput{Drinker: &models.Drinker{
		ID:       "user-1",
		Username: "mikey",
	}}))
}

func (s *PourRedisTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestPourRedisTestSuite(t *testing.T) {
	suite.Run(t, new(PourRedisTestSuite))
}

func (s *PourRedisTestSuite) newService(ledger drinkLedgerRepo.Repository) Service {
	svc, err := New(&Config{
		DrinkLedgerRepo: ledger,
		KegRepo:         s.kegs,
		DrinkerRepo:     s.drinkers,
		Clock:           clock.NewSiteClock(time.UTC),
		UUIDGenerator:   uuid.New(),
		Logger:          s.logger,
	})
	s.Require().NoError(err)
	return svc
}

func (s *PourRedisTestSuite) servedML() float64 {
	keg, err := s.kegs.GetKeg(s.ctx, &kegRepo.GetKegInput{KegID: "keg-1"})
	s.Require().NoError(err)
	return keg.ServedVolumeML
}

func (s *PourRedisTestSuite) TestConcurrentVoidsReturnVolumeOnce() {
	recorded, err := s.pourService.RecordPour(s.ctx, &RecordPourInput{
		KegID:     "keg-1",
		DrinkerID: "user-1",
		Ticks:     100,
	})
	s.Require().NoError(err)
	s.InDelta(600.0, s.servedML(), 1e-9)

	const voiders = 2
	reads := &sync.WaitGroup{}
	reads.Add(voiders)
	racing := s.newService(&gatedLedger{Repository: s.ledger, reads: reads})

	outputs := make([]*VoidDrinkOutput, voiders)
	errs := make([]error, voiders)

	var wg sync.WaitGroup
	for i := 0; i < voiders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outputs[i], errs[i] = racing.VoidDrink(s.ctx, &VoidDrinkInput{DrinkID: recorded.Drink.ID})
		}(i)
	}
	wg.Wait()

	voided := 0
	for i := 0; i < voiders; i++ {
		s.Require().NoError(errs[i])
		if !outputs[i].AlreadyVoided {
			voided++
		}
	}
	s.Equal(1, voided)
	s.InDelta(500.0, s.servedML(), 1e-9)

	got, err := s.pourService.GetDrink(s.ctx, &GetDrinkInput{DrinkID: recorded.Drink.ID})
	s.Require().NoError(err)
	s.Equal(models.DrinkStatusInvalid, got.Drink.Status)
}

func (s *PourRedisTestSuite) TestRecordedPourJoinsSessionAndRanking() {
	_, err := s.pourService.RecordPour(s.ctx, &RecordPourInput{
		KegID:     "keg-1",
		DrinkerID: "user-1",
		Ticks:     355,
	})
	s.Require().NoError(err)

	session, err := s.pourService.GetSession(s.ctx, &GetSessionInput{})
	s.Require().NoError(err)
	s.True(session.Session.Active)
	s.Equal(1, session.Session.DrinkCount)
	s.Require().Len(session.Session.Drinkers, 1)
	s.Equal("mikey", session.Session.Drinkers[0].DrinkerName)

	keg, err := s.pourService.GetKeg(s.ctx, &GetKegInput{KegID: "keg-1"})
	s.Require().NoError(err)
	s.InDelta(855.0, keg.Keg.ServedVolumeML, 1e-9)
	s.Require().Len(keg.Keg.TopDrinkers, 1)
	s.InDelta(355.0, keg.Keg.TopDrinkers[0].VolumeML, 1e-9)
}
