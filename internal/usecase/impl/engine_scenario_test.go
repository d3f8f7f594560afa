package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/errors"
	"offerengine/internal/infra/cache"
	"offerengine/internal/infra/geocode"
	"offerengine/internal/infra/metrics"
	"offerengine/internal/infra/persistence/model"
	"offerengine/internal/infra/persistence/postgres"
	"offerengine/internal/infra/pubsub"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages map[uuid.UUID][]*entity.RealtimeMessage
}

func (n *recordingNotifier) NotifyAccount(_ context.Context, accountID uuid.UUID, message *entity.RealtimeMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.messages == nil {
		n.messages = make(map[uuid.UUID][]*entity.RealtimeMessage)
	}
	n.messages[accountID] = append(n.messages[accountID], message)
}

type engine struct {
	catalog     usecase.CatalogUsecase
	eligibility usecase.EligibilityUsecase
	issuer      usecase.RedemptionCodeUsecase
	redemption  usecase.RedemptionUsecase
	leaderboard usecase.LeaderboardUsecase
	notifier    *recordingNotifier
	db          *gorm.DB
}

func newScenarioDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

// newEngine wires the use cases over real repositories with in-process scoring.
func newEngine(t *testing.T) *engine {
	db := newScenarioDB(t)
	cfg := testEngineConfig()
	log := discardLogger()
	recorder := metrics.NewRecorder(nil)
	memory := cache.NewMemoryCache(time.Hour)
	notifier := &recordingNotifier{}

	locationRepo := postgres.NewLocationRepository(db)
	offerRepo := postgres.NewOfferRepository(db)
	partnershipRepo := postgres.NewPartnershipRepository(db)
	codeRepo := postgres.NewRedemptionCodeRepository(db)
	redemptionRepo := postgres.NewRedemptionRepository(db)
	leaderboardRepo := postgres.NewLeaderboardRepository(db)
	txManager := postgres.NewTransactionManager(db)

	leaderboard := NewLeaderboardService(LeaderboardParams{
		Logger:          log,
		TxManager:       txManager,
		LeaderboardRepo: leaderboardRepo,
		Notifier:        notifier,
		Metrics:         recorder,
	})
	publisher := pubsub.NewInlinePublisher(leaderboard, log)

	eligibility := NewEligibilityService(EligibilityParams{
		Config:          cfg,
		Logger:          log,
		LocationRepo:    locationRepo,
		OfferRepo:       offerRepo,
		PartnershipRepo: partnershipRepo,
		Geocoder:        geocode.NewNoopGeocoder(),
		Cache:           memory,
		Metrics:         recorder,
	})

	return &engine{
		catalog:     NewCatalogService(locationRepo, offerRepo, partnershipRepo, memory, log),
		eligibility: eligibility,
		issuer: NewCodeIssuerService(CodeIssuerParams{
			Config:      cfg,
			Logger:      log,
			Eligibility: eligibility,
			CodeRepo:    codeRepo,
			QRCode:      nil,
			Metrics:     recorder,
		}),
		redemption: NewRedemptionService(RedemptionParams{
			Config:         cfg,
			Logger:         log,
			TxManager:      txManager,
			CodeRepo:       codeRepo,
			RedemptionRepo: redemptionRepo,
			LocationRepo:   locationRepo,
			OfferRepo:      offerRepo,
			Publisher:      publisher,
			Notifier:       notifier,
			Metrics:        recorder,
		}),
		leaderboard: leaderboard,
		notifier:    notifier,
		db:          db,
	}
}

type scenario struct {
	joe, sally, mike     uuid.UUID
	joeCafe, sallySalon  *entity.Location
	mikeDeli             *entity.Location
	joeOffer, sallyOffer *entity.Offer
	mikeOffer            *entity.Offer
}

func seedScenario(t *testing.T, e *engine) scenario {
	ctx := context.Background()
	s := scenario{joe: uuid.New(), sally: uuid.New(), mike: uuid.New()}

	at := func(lat, lng float64) (*float64, *float64) { return &lat, &lng }

	joeLat, joeLng := at(40.0, -73.0)
	mikeLat, mikeLng := at(40.0+1.2/milesPerLatDegree, -73.0)
	sallyLat, sallyLng := at(40.01, -73.01)

	var err error
	s.joeCafe, err = e.catalog.CreateLocation(ctx, s.joe, &usecase.CreateLocationInput{
		Name: "Joe's Coffee", Address: "1 Main St", Latitude: joeLat, Longitude: joeLng, Category: "cafe",
	})
	require.NoError(t, err)
	s.sallySalon, err = e.catalog.CreateLocation(ctx, s.sally, &usecase.CreateLocationInput{
		Name: "Sally's Salon", Address: "2 Main St", Latitude: sallyLat, Longitude: sallyLng, Category: "salon",
	})
	require.NoError(t, err)
	s.mikeDeli, err = e.catalog.CreateLocation(ctx, s.mike, &usecase.CreateLocationInput{
		Name: "Mike's Deli", Address: "3 Main St", Latitude: mikeLat, Longitude: mikeLng, Category: "deli",
	})
	require.NoError(t, err)

	s.joeOffer, err = e.catalog.CreateOffer(ctx, s.joe, &usecase.CreateOfferInput{
		LocationID: s.joeCafe.ID, Title: "Free refill", CallToAction: "Ask the barista",
	})
	require.NoError(t, err)
	s.sallyOffer, err = e.catalog.CreateOffer(ctx, s.sally, &usecase.CreateOfferInput{
		LocationID: s.sallySalon.ID, Title: "10% off a cut", CallToAction: "Book now", AvailableForPartnership: true,
	})
	require.NoError(t, err)
	s.mikeOffer, err = e.catalog.CreateOffer(ctx, s.mike, &usecase.CreateOfferInput{
		LocationID: s.mikeDeli.ID, Title: "Free pickle", CallToAction: "Show at the counter", IsOpenOffer: true,
	})
	require.NoError(t, err)

	partnership, err := e.catalog.CreatePartnership(ctx, s.joe, s.sally)
	require.NoError(t, err)
	_, err = e.catalog.ApprovePartnership(ctx, s.sally, partnership.ID)
	require.NoError(t, err)
	_, err = e.catalog.SubscribeOpenOffer(ctx, s.joe, s.joeCafe.ID, s.mikeOffer.ID)
	require.NoError(t, err)

	return s
}

func TestEngineScenario_JoesCoffee(t *testing.T) {
	e := newEngine(t)
	s := seedScenario(t, e)
	ctx := context.Background()

	offers, err := e.eligibility.ResolveEligibleOffers(ctx, s.joeCafe.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{s.joeOffer.ID}, offerIDs(offers.Owner))
	assert.Equal(t, []uuid.UUID{s.sallyOffer.ID}, offerIDs(offers.Partner))
	require.Equal(t, []uuid.UUID{s.mikeOffer.ID}, offerIDs(offers.Open))
	assert.InDelta(t, 1.2, *offers.Open[0].DistanceMiles, 0.01)

	code, err := e.issuer.IssueRedemptionCode(ctx, s.mikeOffer.ID, s.joeCafe.ID)
	require.NoError(t, err)
	again, err := e.issuer.IssueRedemptionCode(ctx, s.mikeOffer.ID, s.joeCafe.ID)
	require.NoError(t, err)
	assert.Equal(t, code.Code, again.Code)

	redemption, err := e.redemption.Redeem(ctx, code.Code, s.mikeDeli.ID)
	require.NoError(t, err)
	assert.True(t, redemption.Outbound)
	assert.Equal(t, s.joe, redemption.ReferrerAccountID)

	_, err = e.redemption.Redeem(ctx, code.Code, s.mikeDeli.ID)
	require.ErrorIs(t, err, domainerrors.ErrAlreadyRedeemed)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), redemption.ID.String())

	joeScore, err := e.leaderboard.GetScore(ctx, s.joe)
	require.NoError(t, err)
	assert.Equal(t, int64(5), joeScore.Points)

	mikeScore, err := e.leaderboard.GetScore(ctx, s.mike)
	require.NoError(t, err)
	assert.Equal(t, int64(1), mikeScore.Points)

	top, err := e.leaderboard.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, s.joe, top[0].AccountID)
	assert.Equal(t, 1, top[0].Rank)

	outbound, err := e.redemption.ListRedemptions(ctx, s.joe, entity.DirectionOutbound, 10)
	require.NoError(t, err)
	require.Len(t, outbound, 1)
	assert.Equal(t, redemption.ID, outbound[0].ID)
}

func TestEngineScenario_PendingPartnershipSharesNothing(t *testing.T) {
	e := newEngine(t)
	s := seedScenario(t, e)
	ctx := context.Background()

	zoe := uuid.New()
	lat, lng := 40.7135, -74.0065
	zoeBakery, err := e.catalog.CreateLocation(ctx, zoe, &usecase.CreateLocationInput{
		Name: "Zoe's Bakery", Address: "4 Main St", Latitude: &lat, Longitude: &lng, Category: "bakery",
	})
	require.NoError(t, err)
	zoeOffer, err := e.catalog.CreateOffer(ctx, zoe, &usecase.CreateOfferInput{
		LocationID: zoeBakery.ID, Title: "Free croissant", CallToAction: "Show at the register", AvailableForPartnership: true,
	})
	require.NoError(t, err)

	partnership, err := e.catalog.CreatePartnership(ctx, s.joe, zoe)
	require.NoError(t, err)
	assert.Equal(t, entity.PartnershipPending, partnership.Status)

	offers, err := e.eligibility.ResolveEligibleOffers(ctx, s.joeCafe.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{s.sallyOffer.ID}, offerIDs(offers.Partner))

	_, err = e.issuer.IssueRedemptionCode(ctx, zoeOffer.ID, s.joeCafe.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotEligible)

	_, err = e.catalog.ApprovePartnership(ctx, s.joe, partnership.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = e.catalog.ApprovePartnership(ctx, zoe, partnership.ID)
	require.NoError(t, err)

	offers, err = e.eligibility.ResolveEligibleOffers(ctx, s.joeCafe.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{s.sallyOffer.ID, zoeOffer.ID}, offerIDs(offers.Partner))

	_, err = e.catalog.ApprovePartnership(ctx, zoe, partnership.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPartnershipNotPending)
}

func TestEngineScenario_ConcurrentIssuanceConverges(t *testing.T) {
	e := newEngine(t)
	s := seedScenario(t, e)
	ctx := context.Background()

	const callers = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = make(map[string]struct{})
		errs  []error
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := e.issuer.IssueRedemptionCode(ctx, s.sallyOffer.ID, s.joeCafe.ID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)

				return
			}
			codes[code.Code] = struct{}{}
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	assert.Len(t, codes, 1)

	var active int64
	require.NoError(t, e.db.Model(&model.RedemptionCodeModel{}).
		Where("offer_id = ? AND display_location_id = ? AND status = ?",
			s.sallyOffer.ID, s.joeCafe.ID, string(entity.CodeStatusActive)).
		Count(&active).Error)
	assert.Equal(t, int64(1), active)
}

func TestEngineScenario_ConcurrentRedeemSucceedsOnce(t *testing.T) {
	e := newEngine(t)
	s := seedScenario(t, e)
	ctx := context.Background()

	code, err := e.issuer.IssueRedemptionCode(ctx, s.sallyOffer.ID, s.joeCafe.ID)
	require.NoError(t, err)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		rejected  int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.redemption.Redeem(ctx, code.Code, s.sallySalon.ID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainerrors.ErrAlreadyRedeemed):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, rejected)

	joeScore, err := e.leaderboard.GetScore(ctx, s.joe)
	require.NoError(t, err)
	assert.Equal(t, int64(5), joeScore.Points)
}

func TestEngineScenario_Rejections(t *testing.T) {
	e := newEngine(t)
	s := seedScenario(t, e)
	ctx := context.Background()

	code, err := e.issuer.IssueRedemptionCode(ctx, s.mikeOffer.ID, s.joeCafe.ID)
	require.NoError(t, err)

	_, err = e.redemption.Redeem(ctx, code.Code, s.sallySalon.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCode)

	_, err = e.issuer.IssueRedemptionCode(ctx, s.joeOffer.ID, s.sallySalon.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotEligible, "Joe's offer is not partnership-enabled")

	_, err = e.issuer.IssueRedemptionCode(ctx, uuid.New(), s.joeCafe.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}
