package pour

import (
	"context"
	"errors"

	"github.com/KirkDiggler/kegweb/internal/models"
	drinkLedgerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drink_ledger"
)

// GetSession describes a drinking session and ranks who drank in it. An
// empty session ID selects the current session.
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var (
		session *models.Session
		err     error
	)
	if input.SessionID == "" {
		session, err = s.drinkLedgerRepo.GetCurrentSession(ctx)
	} else {
		session, err = s.drinkLedgerRepo.GetSession(ctx, &drinkLedgerRepo.GetSessionInput{
			SessionID: input.SessionID,
		})
	}
	if err != nil {
		if errors.Is(err, drinkLedgerRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	board, err := s.drinkLedgerRepo.GetSessionDrinkers(ctx, &drinkLedgerRepo.GetSessionDrinkersInput{
		SessionID: session.ID,
	})
	if err != nil {
		return nil, err
	}

	view := buildSessionView(session, s.clock.Now())
	if view.Drinkers, err = s.newEnricher().drinkerTotals(ctx, board.Drinkers); err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session: view,
	}, nil
}

// ListSessions describes the newest drinking sessions
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	output, err := s.drinkLedgerRepo.ListSessions(ctx, &drinkLedgerRepo.ListSessionsInput{
		Limit: s.limit(input.Limit),
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	views := make([]*SessionView, 0, len(output.Sessions))
	for _, session := range output.Sessions {
		views = append(views, buildSessionView(session, now))
	}

	return &ListSessionsOutput{
		Sessions: views,
	}, nil
}
