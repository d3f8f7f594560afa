package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "offerengine/internal/delivery/context"
	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/repository"
	"offerengine/internal/domain/service"
	"offerengine/internal/errors"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// LeaderboardParams holds the dependencies of the leaderboard scorer
type LeaderboardParams struct {
	fx.In

	Logger          *slog.Logger
	TxManager       repository.TransactionManager
	LeaderboardRepo repository.LeaderboardRepository
	Notifier        service.Notifier
	Metrics         service.MetricsRecorder
}

type leaderboardService struct {
	logger          *slog.Logger
	txManager       repository.TransactionManager
	leaderboardRepo repository.LeaderboardRepository
	notifier        service.Notifier
	metrics         service.MetricsRecorder

	now func() time.Time
}

// NewLeaderboardService creates the leaderboard scorer
func NewLeaderboardService(params LeaderboardParams) usecase.LeaderboardUsecase {
	return &leaderboardService{
		logger:          params.Logger,
		txManager:       params.TxManager,
		leaderboardRepo: params.LeaderboardRepo,
		notifier:        params.Notifier,
		metrics:         params.Metrics,
		now:             time.Now,
	}
}

// ApplyEvent credits the event once. Points always follow the kind's schedule.
func (s *leaderboardService) ApplyEvent(ctx context.Context, event *entity.ScoreEvent) (bool, error) {
	if event == nil || event.AccountID == uuid.Nil || event.Kind.Points() == 0 {
		return false, domainerrors.ErrValidationFailed.WithDetails("invalid score event")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if event.Points != event.Kind.Points() {
		logger.Warn("Score event points do not match schedule",
			slog.String("event_id", event.ID.String()),
			slog.Int64("points", event.Points),
		)
		event.Points = event.Kind.Points()
	}
	if event.ID == uuid.Nil {
		event.ID = entity.NewScoreEvent(event.Kind, event.AccountID, event.SourceID, event.OccurredAt).ID
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now().UTC()
	}

	var (
		applied bool
		score   *entity.LeaderboardScore
	)
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		leaderboardRepo := txRepoFactory.NewLeaderboardRepository()

		inserted, err := leaderboardRepo.InsertEventIfAbsent(ctx, event)
		if err != nil {
			return err
		}
		if !inserted {
			return nil
		}

		score, err = leaderboardRepo.AddPoints(ctx, event.AccountID, event.Points, s.now().UTC())
		if err != nil {
			return err
		}
		applied = true

		return nil
	})
	if err != nil {
		return false, errors.Wrapf(err, "apply score event %s", event.ID)
	}

	s.metrics.ScoreEventApplied(string(event.Kind), applied)

	if !applied {
		logger.Debug("Score event already applied", slog.String("event_id", event.ID.String()))

		return false, nil
	}

	logger.Info("Applied score event",
		slog.String("event_id", event.ID.String()),
		slog.String("kind", string(event.Kind)),
		slog.String("account_id", event.AccountID.String()),
		slog.Int64("total", score.Points),
	)

	s.notifier.NotifyAccount(ctx, event.AccountID, &entity.RealtimeMessage{
		Type:  entity.RealtimeTypePoints,
		Title: "Points earned",
		Body:  "+" + strconv.FormatInt(event.Points, 10) + " points",
		Data: map[string]string{
			"kind":   string(event.Kind),
			"points": strconv.FormatInt(event.Points, 10),
			"total":  strconv.FormatInt(score.Points, 10),
		},
		Timestamp: score.LastAccruedAt,
	})

	return true, nil
}

// Top returns the ranked leaderboard
func (s *leaderboardService) Top(ctx context.Context, limit int) ([]*entity.LeaderboardScore, error) {
	switch {
	case limit <= 0:
		limit = defaultLeaderboardLimit
	case limit > maxLeaderboardLimit:
		limit = maxLeaderboardLimit
	}

	scores, err := s.leaderboardRepo.Top(ctx, limit)
	if err != nil {
		return nil, err
	}

	for i, score := range scores {
		score.Rank = i + 1
	}

	return scores, nil
}

// GetScore returns an account's total; accounts without points have a zero score
func (s *leaderboardService) GetScore(ctx context.Context, accountID uuid.UUID) (*entity.LeaderboardScore, error) {
	score, err := s.leaderboardRepo.FindScore(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrScoreNotFound) {
			return &entity.LeaderboardScore{AccountID: accountID}, nil
		}

		return nil, err
	}

	return score, nil
}

// RecordSignupReferral credits the referrer once per referred account
func (s *leaderboardService) RecordSignupReferral(ctx context.Context, referrerAccountID, referredAccountID uuid.UUID) (bool, error) {
	if referrerAccountID == uuid.Nil || referredAccountID == uuid.Nil || referrerAccountID == referredAccountID {
		return false, domainerrors.ErrValidationFailed.WithDetails("referrer and referred accounts must differ")
	}

	event := entity.NewScoreEvent(entity.ScoreRetailerSignupReferral, referrerAccountID, referredAccountID, s.now().UTC())
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	return s.ApplyEvent(ctx, event)
}
