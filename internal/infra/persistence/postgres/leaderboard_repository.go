package postgres

import (
	"context"
	"time"

	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/repository"
	"offerengine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type leaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository is the constructor for leaderboardRepository.
func NewLeaderboardRepository(db *gorm.DB) repository.LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (repo *leaderboardRepository) InsertEventIfAbsent(ctx context.Context, event *entity.ScoreEvent) (bool, error) {
	eventM := &model.ScoreEventModel{
		ID:         event.ID,
		Kind:       string(event.Kind),
		AccountID:  event.AccountID,
		Points:     event.Points,
		SourceID:   event.SourceID,
		OccurredAt: event.OccurredAt,
		AppliedAt:  time.Now().UTC(),
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(eventM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert score event")
	}

	return result.RowsAffected == 1, nil
}

// AddPoints upserts the running total in one statement so concurrent first accruals do not collide.
func (repo *leaderboardRepository) AddPoints(ctx context.Context, accountID uuid.UUID, points int64, at time.Time) (*entity.LeaderboardScore, error) {
	scoreM := &model.LeaderboardScoreModel{
		AccountID:      accountID,
		Points:         points,
		FirstAccruedAt: at,
		LastAccruedAt:  at,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"points":          gorm.Expr("leaderboard_scores.points + excluded.points"),
				"last_accrued_at": gorm.Expr("excluded.last_accrued_at"),
			}),
		}).
		Create(scoreM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add leaderboard points")
	}

	return repo.FindScore(ctx, accountID)
}

func (repo *leaderboardRepository) FindScore(ctx context.Context, accountID uuid.UUID) (*entity.LeaderboardScore, error) {
	var scoreM model.LeaderboardScoreModel

	if err := repo.db.WithContext(ctx).Where("account_id = ?", accountID).First(&scoreM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find leaderboard score")
	}

	return toLeaderboardScoreDomain(&scoreM), nil
}

func (repo *leaderboardRepository) Top(ctx context.Context, limit int) ([]*entity.LeaderboardScore, error) {
	var scoreModels []*model.LeaderboardScoreModel

	if err := repo.db.WithContext(ctx).
		Order("points DESC, last_accrued_at ASC, account_id ASC").
		Limit(limit).
		Find(&scoreModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load leaderboard")
	}

	scores := make([]*entity.LeaderboardScore, 0, len(scoreModels))
	for _, m := range scoreModels {
		scores = append(scores, toLeaderboardScoreDomain(m))
	}

	return scores, nil
}

func toLeaderboardScoreDomain(data *model.LeaderboardScoreModel) *entity.LeaderboardScore {
	return &entity.LeaderboardScore{
		AccountID:      data.AccountID,
		Points:         data.Points,
		FirstAccruedAt: data.FirstAccruedAt,
		LastAccruedAt:  data.LastAccruedAt,
	}
}
