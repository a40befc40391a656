package pour

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/kegweb/internal/models"
	drinkerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drinker"
)

// RegisterDrinker creates a drinker or refreshes the names of an existing
// one, keeping its registration time
func (s *service) RegisterDrinker(ctx context.Context, input *RegisterDrinkerInput) (*RegisterDrinkerOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.DrinkerID == "" {
		return nil, ErrDrinkerRequired
	}

	drinker, err := s.drinkerRepo.GetDrinker(ctx, &drinkerRepo.GetDrinkerInput{
		DrinkerID: input.DrinkerID,
	})
	if err != nil && !errors.Is(err, drinkerRepo.ErrDrinkerNotFound) {
		return nil, fmt.Errorf("failed to load drinker: %w", err)
	}

	created := drinker == nil
	if created {
		drinker = &models.Drinker{
			ID:        input.DrinkerID,
			CreatedAt: s.clock.Now(),
		}
	}
	drinker.Username = input.Username
	drinker.DisplayName = input.DisplayName

	if err := s.drinkerRepo.SaveDrinker(ctx, &drinkerRepo.SaveDrinkerInput{
		Drinker: drinker,
	}); err != nil {
		return nil, err
	}

	if created {
		s.logger.Info("drinker registered", "drinker_id", drinker.ID, "username", drinker.Username)
	}

	return &RegisterDrinkerOutput{
		Drinker: drinker,
		Created: created,
	}, nil
}

// ListGrants lists the grants issued to a drinker, oldest first
func (s *service) ListGrants(ctx context.Context, input *ListGrantsInput) (*ListGrantsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.DrinkerID == "" {
		return nil, ErrDrinkerRequired
	}

	output, err := s.drinkerRepo.GetGrantsForDrinker(ctx, &drinkerRepo.GetGrantsForDrinkerInput{
		DrinkerID: input.DrinkerID,
	})
	if err != nil {
		return nil, err
	}

	if input.IncludeInactive {
		return &ListGrantsOutput{
			Grants: output.Grants,
		}, nil
	}

	now := s.clock.Now()
	grants := make([]*models.Grant, 0, len(output.Grants))
	for _, grant := range output.Grants {
		if grant.IsActive(now) {
			grants = append(grants, grant)
		}
	}

	return &ListGrantsOutput{
		Grants: grants,
	}, nil
}

// IssueGrant authorizes a drinker to pour under a policy
func (s *service) IssueGrant(ctx context.Context, input *IssueGrantInput) (*IssueGrantOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.DrinkerID == "" {
		return nil, ErrDrinkerRequired
	}

	if _, err := s.drinkerRepo.GetDrinker(ctx, &drinkerRepo.GetDrinkerInput{
		DrinkerID: input.DrinkerID,
	}); err != nil {
		if errors.Is(err, drinkerRepo.ErrDrinkerNotFound) {
			return nil, ErrDrinkerNotFound
		}
		return nil, fmt.Errorf("failed to load drinker: %w", err)
	}

	grant := &models.Grant{
		ID:        s.uuidGenerator.NewUUID(),
		DrinkerID: input.DrinkerID,
		Policy:    input.Policy,
		Status:    models.GrantStatusActive,
		IssuedAt:  s.clock.Now(),
		ExpiresAt: input.ExpiresAt,
	}

	if err := s.drinkerRepo.SaveGrant(ctx, &drinkerRepo.SaveGrantInput{
		Grant: grant,
	}); err != nil {
		return nil, err
	}

	s.logger.Info("grant issued",
		"grant_id", grant.ID, "drinker_id", grant.DrinkerID, "policy", grant.Policy)

	return &IssueGrantOutput{
		Grant: grant,
	}, nil
}

// RevokeGrant withdraws a grant
func (s *service) RevokeGrant(ctx context.Context, input *RevokeGrantInput) (*RevokeGrantOutput, error) {
	if input == nil || input.GrantID == "" {
		return nil, ErrInvalidInput
	}

	grant, err := s.drinkerRepo.GetGrant(ctx, &drinkerRepo.GetGrantInput{
		GrantID: input.GrantID,
	})
	if err != nil {
		if errors.Is(err, drinkerRepo.ErrGrantNotFound) {
			return nil, ErrGrantNotFound
		}
		return nil, err
	}

	if grant.Status == models.GrantStatusRevoked {
		return &RevokeGrantOutput{
			Grant: grant,
		}, nil
	}

	grant.Status = models.GrantStatusRevoked

	if err := s.drinkerRepo.SaveGrant(ctx, &drinkerRepo.SaveGrantInput{
		Grant: grant,
	}); err != nil {
		return nil, err
	}

	s.logger.Info("grant revoked", "grant_id", grant.ID, "drinker_id", grant.DrinkerID)

	return &RevokeGrantOutput{
		Grant: grant,
	}, nil
}
