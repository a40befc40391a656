package pour

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/kegweb/internal/models"
	drinkerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drinker"
	"go.uber.org/mock/gomock"
)

func (s *PourServiceTestSuite) TestRegisterDrinkerCreates() {
	s.mockDrinkerRepo.EXPECT().
		GetDrinker(s.ctx, &drinkerRepo.GetDrinkerInput{DrinkerID: s.testDrinkerID}).
		Return(nil, drinkerRepo.ErrDrinkerNotFound)
	s.mockDrinkerRepo.EXPECT().
		SaveDrinker(s.ctx, &drinkerRepo.SaveDrinkerInput{Drinker: &models.Drinker{
			ID:          s.testDrinkerID,
			Username:    "mikey",
			DisplayName: "Mike",
			CreatedAt:   s.testTime,
		}}).
		Return(nil)

	output, err := s.pourService.RegisterDrinker(s.ctx, &RegisterDrinkerInput{
		DrinkerID:   s.testDrinkerID,
		Username:    "mikey",
		DisplayName: "Mike",
	})
	s.Require().NoError(err)
	s.True(output.Created)
	s.Equal("Mike", output.Drinker.Name())
}

func (s *PourServiceTestSuite) TestRegisterDrinkerUpdatesNames() {
	existing := &models.Drinker{
		ID:        s.testDrinkerID,
		Username:  "mikey",
		CreatedAt: s.testTime.Add(-24 * time.Hour),
	}

	s.mockDrinkerRepo.EXPECT().GetDrinker(s.ctx, gomock.Any()).Return(existing, nil)
	s.mockDrinkerRepo.EXPECT().
		SaveDrinker(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *drinkerRepo.SaveDrinkerInput) error {
			s.Equal("Big Mike", input.Drinker.DisplayName)
			s.Equal(s.testTime.Add(-24*time.Hour), input.Drinker.CreatedAt)
			return nil
		})

	output, err := s.pourService.RegisterDrinker(s.ctx, &RegisterDrinkerInput{
		DrinkerID:   s.testDrinkerID,
		Username:    "mikey",
		DisplayName: "Big Mike",
	})
	s.Require().NoError(err)
	s.False(output.Created)
}

func (s *PourServiceTestSuite) TestRegisterDrinkerValidation() {
	_, err := s.pourService.RegisterDrinker(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.pourService.RegisterDrinker(s.ctx, &RegisterDrinkerInput{Username: "mikey"})
	s.ErrorIs(err, ErrDrinkerRequired)

	lookupErr := errors.New("redis down")
	s.mockDrinkerRepo.EXPECT().GetDrinker(s.ctx, gomock.Any()).Return(nil, lookupErr)

	_, err = s.pourService.RegisterDrinker(s.ctx, &RegisterDrinkerInput{DrinkerID: s.testDrinkerID})
	s.ErrorIs(err, lookupErr)
}

func (s *PourServiceTestSuite) TestListGrants() {
	revoked := *s.expectedGrant
	revoked.ID = "grant-2"
	revoked.Status = models.GrantStatusRevoked

	expired := *s.expectedGrant
	expired.ID = "grant-3"
	expired.ExpiresAt = s.testTime.Add(-time.Minute)

	s.mockDrinkerRepo.EXPECT().
		GetGrantsForDrinker(s.ctx, &drinkerRepo.GetGrantsForDrinkerInput{DrinkerID: s.testDrinkerID}).
		Return(&drinkerRepo.GetGrantsForDrinkerOutput{
			Grants: []*models.Grant{s.expectedGrant, &revoked, &expired},
		}, nil).
		Times(2)

	active, err := s.pourService.ListGrants(s.ctx, &ListGrantsInput{DrinkerID: s.testDrinkerID})
	s.Require().NoError(err)
	s.Require().Len(active.Grants, 1)
	s.Equal(s.testGrantID, active.Grants[0].ID)

	all, err := s.pourService.ListGrants(s.ctx, &ListGrantsInput{DrinkerID: s.testDrinkerID, IncludeInactive: true})
	s.Require().NoError(err)
	s.Len(all.Grants, 3)

	_, err = s.pourService.ListGrants(s.ctx, &ListGrantsInput{})
	s.ErrorIs(err, ErrDrinkerRequired)
}
