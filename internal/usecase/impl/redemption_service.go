package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"offerengine/config"
	deliverycontext "offerengine/internal/delivery/context"
	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/lifecycle"
	"offerengine/internal/domain/repository"
	"offerengine/internal/domain/service"
	"offerengine/internal/errors"
	"offerengine/internal/usecase"
	"offerengine/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxRedemptionListLimit = 200

// Rejection labels recorded with RedemptionProcessed.
const (
	outcomeInvalidCode     = "invalid_code"
	outcomeAlreadyRedeemed = "already_redeemed"
	outcomeNotEligible     = "not_eligible"
)

// RedemptionParams holds the dependencies of the redemption processor
type RedemptionParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	TxManager      repository.TransactionManager
	CodeRepo       repository.RedemptionCodeRepository
	RedemptionRepo repository.RedemptionRepository
	LocationRepo   repository.LocationRepository
	OfferRepo      repository.OfferRepository
	Publisher      service.EventPublisher
	Notifier       service.Notifier
	Metrics        service.MetricsRecorder
}

type redemptionService struct {
	logger         *slog.Logger
	txManager      repository.TransactionManager
	codeRepo       repository.RedemptionCodeRepository
	redemptionRepo repository.RedemptionRepository
	locationRepo   repository.LocationRepository
	offerRepo      repository.OfferRepository
	publisher      service.EventPublisher
	notifier       service.Notifier
	metrics        service.MetricsRecorder

	timeout time.Duration
	now     func() time.Time
}

// NewRedemptionService creates the redemption processor
func NewRedemptionService(params RedemptionParams) usecase.RedemptionUsecase {
	return &redemptionService{
		logger:         params.Logger,
		txManager:      params.TxManager,
		codeRepo:       params.CodeRepo,
		redemptionRepo: params.RedemptionRepo,
		locationRepo:   params.LocationRepo,
		offerRepo:      params.OfferRepo,
		publisher:      params.Publisher,
		notifier:       params.Notifier,
		metrics:        params.Metrics,
		timeout:        params.Config.Engine.OperationTimeout,
		now:            time.Now,
	}
}

// Redeem consumes a code at a redeeming location. The code transition and the redemption fact
// commit together; scoring and notifications follow the commit and never undo it.
func (s *redemptionService) Redeem(ctx context.Context, code string, redeemingLocationID uuid.UUID) (*entity.Redemption, error) {
	ctx, cancel := withOperationTimeout(ctx, s.timeout)
	defer cancel()

	redemption, offer, err := s.redeem(ctx, code, redeemingLocationID)
	if err != nil {
		s.metrics.RedemptionProcessed(rejectionOutcome(err))

		return nil, err
	}

	s.afterCommit(ctx, redemption, offer)

	return redemption, nil
}

func (s *redemptionService) redeem(ctx context.Context, code string, redeemingLocationID uuid.UUID) (*entity.Redemption, *entity.Offer, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	normalized := normalizeCode(code)
	if !wellFormedCode(normalized) {
		return nil, nil, domainerrors.ErrInvalidCode
	}

	redemptionCode, err := s.codeRepo.FindCodeByValue(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrRedemptionCodeNotFound) {
			return nil, nil, domainerrors.ErrInvalidCode
		}

		return nil, nil, err
	}
	if redemptionCode.Status != entity.CodeStatusActive {
		return nil, nil, s.alreadyRedeemed(ctx, redemptionCode.ID)
	}

	redeeming, err := s.locationRepo.FindLocationByID(ctx, redeemingLocationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, nil, domainerrors.ErrLocationNotFound
		}

		return nil, nil, err
	}

	offer, err := s.offerRepo.FindOfferByID(ctx, redemptionCode.OfferID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, nil, domainerrors.ErrOfferNotFound
		}

		return nil, nil, err
	}

	now := s.now().UTC()
	if !offer.IsActiveAt(now) {
		return nil, nil, domainerrors.ErrOfferNotEligible
	}

	// A disabled display location can no longer refer; its code still redeems for the offer owner.
	displayOwner := offer.OwnerAccountID
	display, err := s.locationRepo.FindLocationByID(ctx, redemptionCode.DisplayLocationID)
	switch {
	case err == nil:
		displayOwner = display.OwnerAccountID
	case errors.Is(err, repository.ErrLocationNotFound):
		logger.Warn("Display location unavailable, redeeming without referral",
			slog.String("display_location_id", redemptionCode.DisplayLocationID.String()),
		)
	default:
		return nil, nil, err
	}

	attribution, ok := entity.Attribute(offer.OwnerAccountID, displayOwner, redeeming.OwnerAccountID)
	if !ok {
		logger.Info("Code presented at an unrelated location",
			slog.String("code", util.MaskCode(normalized)),
			slog.String("redeeming_location_id", redeemingLocationID.String()),
		)

		return nil, nil, domainerrors.ErrInvalidCode.WithDetails("code cannot be redeemed at this location")
	}

	redemption := &entity.Redemption{
		ID:                  uuid.New(),
		CodeID:              redemptionCode.ID,
		Code:                redemptionCode.Code,
		OfferID:             offer.ID,
		OfferOwnerAccountID: offer.OwnerAccountID,
		RedeemingLocationID: redeeming.ID,
		RedeemingAccountID:  redeeming.OwnerAccountID,
		DisplayLocationID:   redemptionCode.DisplayLocationID,
		ReferrerAccountID:   displayOwner,
		Inbound:             attribution.Inbound,
		Outbound:            attribution.Outbound,
		RedeemedAt:          now,
	}

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := redemptionCode.Redeem(now); err != nil {
			return err
		}
		if err := txRepoFactory.NewRedemptionCodeRepository().MarkRedeemed(ctx, redemptionCode); err != nil {
			return err
		}

		return txRepoFactory.NewRedemptionRepository().CreateRedemption(ctx, redemption)
	})
	if err != nil {
		if errors.Is(err, entity.ErrCodeNotActive) ||
			errors.Is(err, repository.ErrCodeAlreadyRedeemed) ||
			errors.Is(err, repository.ErrDuplicateRedemption) {
			return nil, nil, s.alreadyRedeemed(ctx, redemptionCode.ID)
		}

		return nil, nil, err
	}

	logger.Info("Redeemed offer",
		slog.String("redemption_id", redemption.ID.String()),
		slog.String("offer_id", offer.ID.String()),
		slog.Bool("inbound", redemption.Inbound),
		slog.Bool("outbound", redemption.Outbound),
	)

	return redemption, offer, nil
}

// alreadyRedeemed names the redemption that consumed the code when it can be read back.
func (s *redemptionService) alreadyRedeemed(ctx context.Context, codeID uuid.UUID) error {
	existing, err := s.redemptionRepo.FindRedemptionByCodeID(ctx, codeID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Redemption fact not readable for consumed code",
			slog.String("code_id", codeID.String()),
			slog.Any("error", err),
		)

		return domainerrors.ErrAlreadyRedeemed
	}

	return domainerrors.ErrAlreadyRedeemed.WithDetails(fmt.Sprintf("redeemed at %s as redemption %s",
		existing.RedeemedAt.UTC().Format(time.RFC3339), existing.ID))
}

// afterCommit scores and announces a committed redemption. Failures are logged only.
func (s *redemptionService) afterCommit(ctx context.Context, redemption *entity.Redemption, offer *entity.Offer) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("redemption_id", redemption.ID.String()),
	)
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	var events []*entity.ScoreEvent
	if redemption.Inbound {
		s.metrics.RedemptionProcessed(service.OutcomeInbound)
		events = append(events, entity.NewScoreEvent(entity.ScoreRedemptionLogged, redemption.OfferOwnerAccountID, redemption.ID, redemption.RedeemedAt))
	}
	if redemption.Outbound {
		s.metrics.RedemptionProcessed(service.OutcomeOutbound)
		events = append(events, entity.NewScoreEvent(entity.ScoreReferredRedemption, redemption.ReferrerAccountID, redemption.ID, redemption.RedeemedAt))
	}

	for _, event := range events {
		event.RequestID = requestID
		if err := s.publisher.PublishScoreEvent(ctx, event); err != nil {
			logger.Error("Failed to publish redemption score event",
				slog.String("event_id", event.ID.String()),
				slog.String("kind", string(event.Kind)),
				slog.Any("error", err),
			)
		}
	}

	message := &entity.RealtimeMessage{
		Type:  entity.RealtimeTypeRedemption,
		Title: "Offer redeemed",
		Body:  offer.Title,
		Data: map[string]string{
			"redemption_id": redemption.ID.String(),
			"offer_id":      redemption.OfferID.String(),
			"location_id":   redemption.RedeemingLocationID.String(),
		},
		Timestamp: redemption.RedeemedAt,
	}

	s.notifier.NotifyAccount(ctx, redemption.OfferOwnerAccountID, message)
	if redemption.Outbound && redemption.ReferrerAccountID != redemption.OfferOwnerAccountID {
		s.notifier.NotifyAccount(ctx, redemption.ReferrerAccountID, message)
	}
}

// ListRedemptions lists an account's inbound or outbound redemptions, newest first
func (s *redemptionService) ListRedemptions(
	ctx context.Context,
	accountID uuid.UUID,
	direction entity.RedemptionDirection,
	limit int,
) ([]*entity.Redemption, error) {
	if direction != entity.DirectionInbound && direction != entity.DirectionOutbound {
		return nil, domainerrors.ErrValidationFailed.WithDetails("direction must be inbound or outbound")
	}
	if limit > maxRedemptionListLimit {
		limit = maxRedemptionListLimit
	}

	return s.redemptionRepo.ListRedemptions(ctx, accountID, direction, limit)
}

func rejectionOutcome(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrInvalidCode):
		return outcomeInvalidCode
	case errors.Is(err, domainerrors.ErrAlreadyRedeemed):
		return outcomeAlreadyRedeemed
	case errors.Is(err, domainerrors.ErrOfferNotEligible):
		return outcomeNotEligible
	default:
		return service.OutcomeFailed
	}
}
