package impl

import (
	"context"
	"log/slog"
	"sync"
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

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ImpressionParams holds the dependencies of the impression tracker
type ImpressionParams struct {
	fx.In

	Lc             fx.Lifecycle
	Config         *config.Config
	Logger         *slog.Logger
	ImpressionRepo repository.ImpressionRepository
	LocationRepo   repository.LocationRepository
	OfferRepo      repository.OfferRepository
	CodeRepo       repository.RedemptionCodeRepository
	RedemptionRepo repository.RedemptionRepository
	Deduper        service.SessionDeduper
	Publisher      service.EventPublisher
	Metrics        service.MetricsRecorder
}

type impressionJob struct {
	impression *entity.Impression
	logger     *slog.Logger
	requestID  string
	// referrerAccountID earns the impression point; uuid.Nil when the owner displays its own offer
	referrerAccountID uuid.UUID
}

type impressionService struct {
	logger         *slog.Logger
	impressionRepo repository.ImpressionRepository
	locationRepo   repository.LocationRepository
	offerRepo      repository.OfferRepository
	codeRepo       repository.RedemptionCodeRepository
	redemptionRepo repository.RedemptionRepository
	deduper        service.SessionDeduper
	publisher      service.EventPublisher
	metrics        service.MetricsRecorder

	workers int
	queue   chan impressionJob
	wg      sync.WaitGroup

	// mu guards closed so that no send races the channel close on shutdown
	mu     sync.RWMutex
	closed bool

	now func() time.Time
}

// NewImpressionService creates the impression tracker and registers its write workers with the lifecycle
func NewImpressionService(params ImpressionParams) usecase.ImpressionUsecase {
	engine := params.Config.Engine

	workers := engine.ImpressionWorkers
	if workers <= 0 {
		workers = 1
	}
	queueSize := engine.ImpressionQueueSize
	if queueSize <= 0 {
		queueSize = 1
	}

	s := &impressionService{
		logger:         params.Logger,
		impressionRepo: params.ImpressionRepo,
		locationRepo:   params.LocationRepo,
		offerRepo:      params.OfferRepo,
		codeRepo:       params.CodeRepo,
		redemptionRepo: params.RedemptionRepo,
		deduper:        params.Deduper,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		workers:        workers,
		queue:          make(chan impressionJob, queueSize),
		now:            time.Now,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.start()

			return nil
		},
		OnStop: s.stop,
	})

	return s
}

// RecordImpression validates the viewed offer and display location, claims the
// view for the session and queues the write. Store failures never reach the
// viewer: they are logged and the view is reported as accepted.
func (s *impressionService) RecordImpression(ctx context.Context, input *usecase.RecordImpressionInput) (usecase.ImpressionStatus, error) {
	if input == nil || !input.Channel.Valid() || input.SessionID == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("invalid impression")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("offer_id", input.OfferID.String()),
		slog.String("display_location_id", input.DisplayLocationID.String()),
	)

	offer, display, err := s.resolveViewed(ctx, input)
	if err != nil {
		if _, ok := errors.AsType[domainerrors.AppError](err); ok && !domainerrors.IsTransient(err) {
			return "", err
		}
		s.metrics.ImpressionRecorded(service.OutcomeFailed)
		logger.Warn("Impression lookup failed, view not recorded", slog.Any("error", err))

		return usecase.ImpressionAccepted, nil
	}

	key := entity.ImpressionKey(input.OfferID, input.DisplayLocationID)

	claimed, err := s.deduper.Claim(ctx, input.SessionID, key)
	if err != nil {
		s.metrics.ImpressionRecorded(service.OutcomeFailed)
		logger.Warn("Impression dedup store unavailable, view not recorded", slog.Any("error", err))

		return usecase.ImpressionAccepted, nil
	}
	if !claimed {
		s.metrics.ImpressionRecorded(service.OutcomeDuplicate)

		return usecase.ImpressionDuplicate, nil
	}

	job := impressionJob{
		impression: &entity.Impression{
			ID:                  uuid.New(),
			OfferID:             offer.ID,
			OfferHomeLocationID: offer.LocationID,
			DisplayLocationID:   display.ID,
			Channel:             input.Channel,
			SessionID:           input.SessionID,
			CreatedAt:           s.now().UTC(),
		},
		logger:    logger,
		requestID: deliverycontext.GetRequestIDFromContext(ctx),
	}
	// Only a view at another retailer's storefront refers traffic.
	if display.OwnerAccountID != offer.OwnerAccountID {
		job.referrerAccountID = display.OwnerAccountID
	}

	if !s.enqueue(job) {
		s.metrics.ImpressionRecorded(service.OutcomeDropped)
		logger.Warn("Impression queue full, dropping view")
		if err := s.deduper.Release(ctx, input.SessionID, key); err != nil {
			logger.Warn("Failed to release impression key", slog.Any("error", err))
		}
	}

	return usecase.ImpressionAccepted, nil
}

// resolveViewed loads the offer and the display location of a view. Unknown
// ids and an offer reported under a foreign home location are rejected; any
// other error is a store failure.
func (s *impressionService) resolveViewed(ctx context.Context, input *usecase.RecordImpressionInput) (*entity.Offer, *entity.Location, error) {
	offer, err := s.offerRepo.FindOfferByID(ctx, input.OfferID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, nil, domainerrors.ErrOfferNotFound
		}

		return nil, nil, err
	}
	if offer.LocationID != input.OfferHomeLocationID {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("offer does not belong to the given home location")
	}

	display, err := s.locationRepo.FindLocationByID(ctx, input.DisplayLocationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, nil, domainerrors.ErrLocationNotFound
		}

		return nil, nil, err
	}

	return offer, display, nil
}

// GetOfferStats aggregates views, issued codes and redemptions of an offer
func (s *impressionService) GetOfferStats(ctx context.Context, offerID uuid.UUID) (*entity.OfferStats, error) {
	if _, err := s.offerRepo.FindOfferByID(ctx, offerID); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, err
	}

	impressions, locations, err := s.impressionRepo.CountImpressionsByOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	codes, err := s.codeRepo.CountCodesByOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	redemptions, err := s.redemptionRepo.CountRedemptionsByOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	return &entity.OfferStats{
		OfferID:         offerID,
		Impressions:     impressions,
		Redemptions:     redemptions,
		CodesIssued:     codes,
		UniqueLocations: locations,
	}, nil
}

func (s *impressionService) enqueue(job impressionJob) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.queue <- job:
		return true
	default:
		return false
	}
}

func (s *impressionService) start() {
	for range s.workers {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for job := range s.queue {
				s.write(job)
			}
		}()
	}
}

// stop closes the queue and waits for queued writes until the drain timeout or ctx expires.
func (s *impressionService) stop(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return nil
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	drainCtx, cancel := context.WithTimeout(ctx, lifecycle.DrainTimeout)
	defer cancel()

	select {
	case <-done:
		return nil
	case <-drainCtx.Done():
		s.logger.Warn("Impression workers did not drain in time", slog.Int("pending", len(s.queue)))

		return nil
	}
}

func (s *impressionService) write(job impressionJob) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	ctx = deliverycontext.WithLogger(ctx, job.logger)
	ctx = deliverycontext.WithRequestID(ctx, job.requestID)

	impression := job.impression
	logger := job.logger

	if err := s.impressionRepo.CreateImpression(ctx, impression); err != nil {
		s.metrics.ImpressionRecorded(service.OutcomeFailed)
		logger.Error("Failed to record impression", slog.Any("error", err))

		if releaseErr := s.deduper.Release(ctx, impression.SessionID, impression.DedupKey()); releaseErr != nil {
			logger.Warn("Failed to release impression key", slog.Any("error", releaseErr))
		}

		return
	}
	s.metrics.ImpressionRecorded(service.OutcomeRecorded)

	if job.referrerAccountID == uuid.Nil {
		return
	}

	event := entity.NewScoreEvent(entity.ScoreImpression, job.referrerAccountID, impression.ID, impression.CreatedAt)
	event.RequestID = job.requestID
	if err := s.publisher.PublishScoreEvent(ctx, event); err != nil {
		logger.Error("Failed to publish impression score event",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)
	}
}
