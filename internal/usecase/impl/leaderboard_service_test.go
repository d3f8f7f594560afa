package impl

import (
	"context"
	"testing"
	"time"

	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/repository"
	"offerengine/internal/infra/metrics"
	mockRepo "offerengine/internal/mocks/repository"
	mockSvc "offerengine/internal/mocks/service"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type leaderboardFixtures struct {
	service         usecase.LeaderboardUsecase
	txManager       *mockRepo.MockTransactionManager
	txFactory       *mockRepo.MockRepositoryFactory
	leaderboardRepo *mockRepo.MockLeaderboardRepository
	txLeaderboard   *mockRepo.MockLeaderboardRepository
	notifier        *mockSvc.MockNotifier
}

func createTestLeaderboardService(t *testing.T) leaderboardFixtures {
	fx := leaderboardFixtures{
		txManager:       mockRepo.NewMockTransactionManager(t),
		txFactory:       mockRepo.NewMockRepositoryFactory(t),
		leaderboardRepo: mockRepo.NewMockLeaderboardRepository(t),
		txLeaderboard:   mockRepo.NewMockLeaderboardRepository(t),
		notifier:        mockSvc.NewMockNotifier(t),
	}

	fx.service = NewLeaderboardService(LeaderboardParams{
		Logger:          discardLogger(),
		TxManager:       fx.txManager,
		LeaderboardRepo: fx.leaderboardRepo,
		Notifier:        fx.notifier,
		Metrics:         metrics.NewRecorder(nil),
	})

	return fx
}

func (fx leaderboardFixtures) expectTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.txFactory)
		})
	fx.txFactory.EXPECT().NewLeaderboardRepository().Return(fx.txLeaderboard)
}

func TestLeaderboardService_ApplyEventCreditsSchedule(t *testing.T) {
	fx := createTestLeaderboardService(t)
	account := uuid.New()

	event := entity.NewScoreEvent(entity.ScoreReferredRedemption, account, uuid.New(), time.Now())
	event.Points = 500

	fx.expectTransaction()
	fx.txLeaderboard.EXPECT().
		InsertEventIfAbsent(mock.Anything, mock.MatchedBy(func(e *entity.ScoreEvent) bool { return e.Points == 5 })).
		Return(true, nil)
	fx.txLeaderboard.EXPECT().
		AddPoints(mock.Anything, account, int64(5), mock.Anything).
		Return(&entity.LeaderboardScore{AccountID: account, Points: 5, LastAccruedAt: time.Now()}, nil)
	fx.notifier.EXPECT().
		NotifyAccount(mock.Anything, account, mock.MatchedBy(func(m *entity.RealtimeMessage) bool {
			return m.Type == entity.RealtimeTypePoints && m.Data["total"] == "5"
		})).
		Return()

	applied, err := fx.service.ApplyEvent(context.Background(), event)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestLeaderboardService_RedeliveredEventIsIgnored(t *testing.T) {
	fx := createTestLeaderboardService(t)
	event := entity.NewScoreEvent(entity.ScoreImpression, uuid.New(), uuid.New(), time.Now())

	fx.expectTransaction()
	fx.txLeaderboard.EXPECT().InsertEventIfAbsent(mock.Anything, event).Return(false, nil)

	applied, err := fx.service.ApplyEvent(context.Background(), event)
	require.NoError(t, err)
	assert.False(t, applied)
	fx.txLeaderboard.AssertNotCalled(t, "AddPoints", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.notifier.AssertNotCalled(t, "NotifyAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestLeaderboardService_ApplyEventRejectsUnknownKind(t *testing.T) {
	fx := createTestLeaderboardService(t)

	_, err := fx.service.ApplyEvent(context.Background(), &entity.ScoreEvent{ID: uuid.New(), Kind: "bonus", AccountID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.ApplyEvent(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLeaderboardService_ApplyEventStoreFailureIsTransient(t *testing.T) {
	fx := createTestLeaderboardService(t)
	event := entity.NewScoreEvent(entity.ScoreImpression, uuid.New(), uuid.New(), time.Now())

	fx.expectTransaction()
	fx.txLeaderboard.EXPECT().
		InsertEventIfAbsent(mock.Anything, event).
		Return(false, domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to insert score event"))

	_, err := fx.service.ApplyEvent(context.Background(), event)
	assert.True(t, domainerrors.IsTransient(err))
}

func TestLeaderboardService_TopAssignsRanks(t *testing.T) {
	fx := createTestLeaderboardService(t)
	first, second := uuid.New(), uuid.New()

	fx.leaderboardRepo.EXPECT().
		Top(mock.Anything, defaultLeaderboardLimit).
		Return([]*entity.LeaderboardScore{{AccountID: first, Points: 9}, {AccountID: second, Points: 4}}, nil)

	scores, err := fx.service.Top(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, 1, scores[0].Rank)
	assert.Equal(t, 2, scores[1].Rank)

	fx.leaderboardRepo.EXPECT().Top(mock.Anything, maxLeaderboardLimit).Return(nil, nil)
	_, err = fx.service.Top(context.Background(), 1000)
	require.NoError(t, err)
}

func TestLeaderboardService_GetScoreDefaultsToZero(t *testing.T) {
	fx := createTestLeaderboardService(t)
	account := uuid.New()

	fx.leaderboardRepo.EXPECT().FindScore(mock.Anything, account).Return(nil, repository.ErrScoreNotFound)

	score, err := fx.service.GetScore(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, account, score.AccountID)
	assert.Zero(t, score.Points)
}

func TestLeaderboardService_RecordSignupReferral(t *testing.T) {
	fx := createTestLeaderboardService(t)
	referrer, referred := uuid.New(), uuid.New()
	expectedID := entity.NewScoreEvent(entity.ScoreRetailerSignupReferral, referrer, referred, time.Now()).ID

	fx.expectTransaction()
	fx.txLeaderboard.EXPECT().
		InsertEventIfAbsent(mock.Anything, mock.MatchedBy(func(e *entity.ScoreEvent) bool {
			return e.ID == expectedID && e.Points == 3 && e.AccountID == referrer
		})).
		Return(true, nil)
	fx.txLeaderboard.EXPECT().
		AddPoints(mock.Anything, referrer, int64(3), mock.Anything).
		Return(&entity.LeaderboardScore{AccountID: referrer, Points: 3}, nil)
	fx.notifier.EXPECT().NotifyAccount(mock.Anything, referrer, mock.Anything).Return()

	applied, err := fx.service.RecordSignupReferral(context.Background(), referrer, referred)
	require.NoError(t, err)
	assert.True(t, applied)

	_, err = fx.service.RecordSignupReferral(context.Background(), referrer, referrer)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
