package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	"offerengine/config"
	deliverycontext "offerengine/internal/delivery/context"
	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/geo"
	"offerengine/internal/domain/repository"
	"offerengine/internal/domain/service"
	"offerengine/internal/errors"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const eligibilityCacheKeyPrefix = "eligibility:"

// EligibilityParams holds the dependencies of the eligibility resolver
type EligibilityParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	LocationRepo    repository.LocationRepository
	OfferRepo       repository.OfferRepository
	PartnershipRepo repository.PartnershipRepository
	Geocoder        service.Geocoder
	Cache           service.Cache
	Metrics         service.MetricsRecorder
}

type eligibilityService struct {
	logger          *slog.Logger
	locationRepo    repository.LocationRepository
	offerRepo       repository.OfferRepository
	partnershipRepo repository.PartnershipRepository
	geocoder        service.Geocoder
	cache           service.Cache
	metrics         service.MetricsRecorder

	radiusMiles         float64
	excludeSameCategory bool
	cacheTTL            time.Duration
	maxWorkers          int

	now func() time.Time
}

// NewEligibilityService creates the eligibility resolver
func NewEligibilityService(params EligibilityParams) usecase.EligibilityUsecase {
	engine := params.Config.Engine

	return &eligibilityService{
		logger:              params.Logger,
		locationRepo:        params.LocationRepo,
		offerRepo:           params.OfferRepo,
		partnershipRepo:     params.PartnershipRepo,
		geocoder:            params.Geocoder,
		cache:               params.Cache,
		metrics:             params.Metrics,
		radiusMiles:         engine.OpenOfferRadiusMiles,
		excludeSameCategory: engine.SameCategoryExcluded(),
		cacheTTL:            engine.EligibilityCacheTTL,
		maxWorkers:          engine.MaxGeocodeWorkers,
		now:                 time.Now,
	}
}

// ResolveEligibleOffers returns the cached set when fresh, otherwise resolves and caches it
func (s *eligibilityService) ResolveEligibleOffers(ctx context.Context, displayLocationID uuid.UUID) (*usecase.EligibleOffers, error) {
	if cached, ok := s.readCache(ctx, displayLocationID); ok {
		s.metrics.EligibilityResolved(true, len(cached.Partner)+len(cached.Open), 0)

		return cached, nil
	}

	return s.resolveFresh(ctx, displayLocationID)
}

// CheckEligibility always resolves against current data
func (s *eligibilityService) CheckEligibility(ctx context.Context, offerID, displayLocationID uuid.UUID) (*entity.EligibleOffer, error) {
	resolved, err := s.resolveFresh(ctx, displayLocationID)
	if err != nil {
		return nil, err
	}

	if eligible := resolved.Find(offerID); eligible != nil {
		return eligible, nil
	}

	if _, err := s.offerRepo.FindOfferByID(ctx, offerID); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, err
	}

	return nil, domainerrors.ErrOfferNotEligible
}

func (s *eligibilityService) resolveFresh(ctx context.Context, displayLocationID uuid.UUID) (*usecase.EligibleOffers, error) {
	started := time.Now()

	resolved, err := s.resolve(ctx, displayLocationID)
	if err != nil {
		return nil, err
	}

	s.metrics.EligibilityResolved(false, len(resolved.Partner)+len(resolved.Open), time.Since(started))
	s.writeCache(ctx, resolved)

	return resolved, nil
}

func (s *eligibilityService) resolve(ctx context.Context, displayLocationID uuid.UUID) (*usecase.EligibleOffers, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	now := s.now()

	display, err := s.locationRepo.FindLocationByID(ctx, displayLocationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, err
	}

	result := &usecase.EligibleOffers{
		LocationID: display.ID,
		Owner:      []*entity.EligibleOffer{},
		Partner:    []*entity.EligibleOffer{},
		Open:       []*entity.EligibleOffer{},
		ResolvedAt: now,
	}

	ownerOffers, err := s.offerRepo.FindFlaggedActiveOffersByOwners(ctx, []uuid.UUID{display.OwnerAccountID})
	if err != nil {
		return nil, err
	}
	ownerOffers = filterOffers(ownerOffers, func(o *entity.Offer) bool { return o.IsActiveAt(now) })

	// Retailers without a live offer of their own receive nothing.
	if len(ownerOffers) == 0 {
		return result, nil
	}

	var partnerOffers []*entity.Offer
	if !display.OpenOfferOnly {
		partnerOffers, err = s.partnerOffers(ctx, display, now)
		if err != nil {
			return nil, err
		}
	}

	openCandidates, err := s.openOfferCandidates(ctx, display, partnerOffers, now)
	if err != nil {
		return nil, err
	}

	homes, err := s.homeLocations(ctx, ownerOffers, partnerOffers, openCandidates)
	if err != nil {
		return nil, err
	}

	result.Owner = attachHomes(ownerOffers, homes, entity.OfferClassOwner)
	result.Partner = attachHomes(partnerOffers, homes, entity.OfferClassPartner)
	sortByCreation(result.Owner)
	sortByCreation(result.Partner)

	open, err := s.openOffers(ctx, display, openCandidates, homes)
	if err != nil {
		return nil, err
	}
	result.Open = open

	logger.Debug("Resolved eligible offers",
		slog.String("location_id", display.ID.String()),
		slog.Int("owner", len(result.Owner)),
		slog.Int("partner", len(result.Partner)),
		slog.Int("open", len(result.Open)),
	)

	return result, nil
}

// partnerOffers collects active, partnership-enabled offers of approved partners, excluding the display location's own.
func (s *eligibilityService) partnerOffers(ctx context.Context, display *entity.Location, now time.Time) ([]*entity.Offer, error) {
	partnerships, err := s.partnershipRepo.FindApprovedPartnerships(ctx, display.OwnerAccountID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(partnerships))
	partners := make([]uuid.UUID, 0, len(partnerships))
	for _, partnership := range partnerships {
		partner := partnership.Counterparty(display.OwnerAccountID)
		if partner == uuid.Nil || partner == display.OwnerAccountID {
			continue
		}
		if _, dup := seen[partner]; dup {
			continue
		}
		seen[partner] = struct{}{}
		partners = append(partners, partner)
	}

	if len(partners) == 0 {
		return nil, nil
	}

	offers, err := s.offerRepo.FindFlaggedActiveOffersByOwners(ctx, partners)
	if err != nil {
		return nil, err
	}

	return filterOffers(offers, func(o *entity.Offer) bool {
		return o.IsActiveAt(now) && o.AvailableForPartnership && o.LocationID != display.ID
	}), nil
}

// openOfferCandidates applies every Open Offer rule that needs no coordinates.
func (s *eligibilityService) openOfferCandidates(
	ctx context.Context,
	display *entity.Location,
	partnerOffers []*entity.Offer,
	now time.Time,
) ([]*entity.Offer, error) {
	subscriptions, err := s.partnershipRepo.FindActiveOpenOfferSubscriptions(ctx, display.ID)
	if err != nil {
		return nil, err
	}
	if len(subscriptions) == 0 {
		return nil, nil
	}

	offerIDs := make([]uuid.UUID, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		offerIDs = append(offerIDs, subscription.OfferID)
	}

	offers, err := s.offerRepo.FindFlaggedActiveOffersByIDs(ctx, offerIDs)
	if err != nil {
		return nil, err
	}

	partnerIDs := make(map[uuid.UUID]struct{}, len(partnerOffers))
	for _, offer := range partnerOffers {
		partnerIDs[offer.ID] = struct{}{}
	}

	return filterOffers(offers, func(o *entity.Offer) bool {
		if _, isPartner := partnerIDs[o.ID]; isPartner {
			return false
		}

		return o.IsOpenOffer &&
			o.IsActiveAt(now) &&
			o.LocationID != display.ID &&
			o.OwnerAccountID != display.OwnerAccountID
	}), nil
}

func (s *eligibilityService) homeLocations(ctx context.Context, groups ...[]*entity.Offer) (map[uuid.UUID]*entity.Location, error) {
	ids := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for _, offers := range groups {
		for _, offer := range offers {
			if _, ok := seen[offer.LocationID]; ok {
				continue
			}
			seen[offer.LocationID] = struct{}{}
			ids = append(ids, offer.LocationID)
		}
	}

	return s.locationRepo.FindLocationsByIDs(ctx, ids)
}

// openOffers keeps candidates from another category whose home location lies within the radius.
func (s *eligibilityService) openOffers(
	ctx context.Context,
	display *entity.Location,
	candidates []*entity.Offer,
	homes map[uuid.UUID]*entity.Location,
) ([]*entity.EligibleOffer, error) {
	open := []*entity.EligibleOffer{}
	if len(candidates) == 0 {
		return open, nil
	}

	origin, ok := s.coordinates(ctx, display)
	if !ok {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "eligibility resolution canceled")
		}

		return open, nil
	}

	jobs := make([]*entity.EligibleOffer, 0, len(candidates))
	for _, offer := range candidates {
		home, found := homes[offer.LocationID]
		if !found {
			continue
		}
		if s.excludeSameCategory && home.SameCategory(display) {
			continue
		}
		jobs = append(jobs, &entity.EligibleOffer{Offer: offer, Class: entity.OfferClassOpen, HomeLocation: home})
	}

	distances, err := s.measureDistances(ctx, origin, jobs)
	if err != nil {
		return nil, err
	}

	for i, job := range jobs {
		if distances[i] == nil {
			continue
		}
		job.DistanceMiles = distances[i]
		open = append(open, job)
	}

	sortByDistance(open)

	return open, nil
}

// coordinates returns stored coordinates or geocodes the address. Lookup failures mean "no coordinates".
func (s *eligibilityService) coordinates(ctx context.Context, location *entity.Location) (orb.Point, bool) {
	if point, ok := location.Coordinates(); ok && geo.IsValid(point) {
		return point, true
	}

	point, err := s.geocoder.Geocode(ctx, location.Address)
	if err != nil {
		if !errors.Is(err, service.ErrAddressNotFound) && ctx.Err() == nil {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Geocoding failed",
				slog.String("location_id", location.ID.String()),
				slog.Any("error", err),
			)
		}

		return orb.Point{}, false
	}

	return point, geo.IsValid(point)
}

type distanceResult struct {
	index    int
	distance *float64
}

// measureDistances resolves home coordinates and distances on a bounded worker pool.
// A nil entry means the candidate has no usable coordinates or lies outside the radius.
func (s *eligibilityService) measureDistances(ctx context.Context, origin orb.Point, jobs []*entity.EligibleOffer) ([]*float64, error) {
	distances := make([]*float64, len(jobs))
	if len(jobs) == 0 {
		return distances, nil
	}

	jobCh := make(chan int, len(jobs))
	resultCh := make(chan distanceResult, len(jobs))

	workerGroup := s.spawnDistanceWorkers(ctx, s.workerCount(len(jobs)), origin, jobs, jobCh, resultCh)
	go dispatchDistanceWork(ctx, jobCh, len(jobs))
	collectDistanceResults(resultCh, distances, workerGroup)

	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "eligibility resolution canceled")
	}

	return distances, nil
}

func (s *eligibilityService) workerCount(jobCount int) int {
	workers := s.maxWorkers
	if workers <= 0 {
		workers = 1
	}
	if jobCount < workers {
		return jobCount
	}

	return workers
}

func (s *eligibilityService) spawnDistanceWorkers(
	ctx context.Context,
	workerCount int,
	origin orb.Point,
	jobs []*entity.EligibleOffer,
	jobCh <-chan int,
	resultCh chan<- distanceResult,
) *sync.WaitGroup {
	var workerGroup sync.WaitGroup

	for range workerCount {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range jobCh {
				if ctx.Err() != nil {
					return
				}

				result := distanceResult{index: idx}
				if point, ok := s.coordinates(ctx, jobs[idx].HomeLocation); ok {
					if distance, within := geo.WithinRadius(origin, point, s.radiusMiles); within {
						result.distance = &distance
					}
				}
				resultCh <- result
			}
		}()
	}

	return &workerGroup
}

func dispatchDistanceWork(ctx context.Context, jobCh chan<- int, jobCount int) {
	defer close(jobCh)

	for i := range jobCount {
		if ctx.Err() != nil {
			return
		}

		jobCh <- i
	}
}

func collectDistanceResults(resultCh chan distanceResult, distances []*float64, workerGroup *sync.WaitGroup) {
	go func() {
		workerGroup.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		distances[res.index] = res.distance
	}
}

func (s *eligibilityService) readCache(ctx context.Context, locationID uuid.UUID) (*usecase.EligibleOffers, bool) {
	if s.cacheTTL <= 0 {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, eligibilityCacheKeyPrefix+locationID.String())
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Eligibility cache read failed", slog.Any("error", err))
		}

		return nil, false
	}

	var cached usecase.EligibleOffers
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false
	}
	cached.Cached = true

	return &cached, true
}

func (s *eligibilityService) writeCache(ctx context.Context, resolved *usecase.EligibleOffers) {
	if s.cacheTTL <= 0 {
		return
	}

	raw, err := json.Marshal(resolved)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, eligibilityCacheKeyPrefix+resolved.LocationID.String(), raw, s.cacheTTL); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Eligibility cache write failed", slog.Any("error", err))
	}
}

func filterOffers(offers []*entity.Offer, keep func(*entity.Offer) bool) []*entity.Offer {
	kept := make([]*entity.Offer, 0, len(offers))
	for _, offer := range offers {
		if keep(offer) {
			kept = append(kept, offer)
		}
	}

	return kept
}

// attachHomes drops offers whose home location is missing or disabled.
func attachHomes(offers []*entity.Offer, homes map[uuid.UUID]*entity.Location, class entity.OfferClass) []*entity.EligibleOffer {
	eligible := make([]*entity.EligibleOffer, 0, len(offers))
	for _, offer := range offers {
		home, ok := homes[offer.LocationID]
		if !ok {
			continue
		}
		eligible = append(eligible, &entity.EligibleOffer{Offer: offer, Class: class, HomeLocation: home})
	}

	return eligible
}

func sortByCreation(offers []*entity.EligibleOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		ci, cj := offers[i].Offer.CreatedAt, offers[j].Offer.CreatedAt
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}

		return offers[i].Offer.ID.String() < offers[j].Offer.ID.String()
	})
}

func sortByDistance(offers []*entity.EligibleOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		di, dj := distanceOf(offers[i]), distanceOf(offers[j])
		if di != dj {
			return di < dj
		}

		return offers[i].Offer.ID.String() < offers[j].Offer.ID.String()
	})
}

func distanceOf(offer *entity.EligibleOffer) float64 {
	if offer.DistanceMiles == nil {
		return 0
	}

	return *offer.DistanceMiles
}
