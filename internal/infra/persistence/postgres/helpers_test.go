package postgres

import (
	"context"
	"testing"
	"time"

	"offerengine/internal/domain/entity"
	"offerengine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
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

func ptr[T any](v T) *T {
	return &v
}

func seedLocation(t *testing.T, db *gorm.DB, owner uuid.UUID, category string) *entity.Location {
	t.Helper()

	location := &entity.Location{
		OwnerAccountID: owner,
		Name:           "Store " + category,
		Address:        "1 Main St",
		Latitude:       ptr(37.7749),
		Longitude:      ptr(-122.4194),
		Category:       category,
		IsActive:       true,
	}
	require.NoError(t, NewLocationRepository(db).CreateLocation(context.Background(), location))

	return location
}

func seedOffer(t *testing.T, db *gorm.DB, location *entity.Location, mutate func(*entity.Offer)) *entity.Offer {
	t.Helper()

	offer := &entity.Offer{
		OwnerAccountID: location.OwnerAccountID,
		LocationID:     location.ID,
		Title:          "10% off",
		CallToAction:   "Show this at the counter",
		Active:         true,
	}
	if mutate != nil {
		mutate(offer)
	}
	require.NoError(t, NewOfferRepository(db).CreateOffer(context.Background(), offer))

	return offer
}

func newActiveCode(code string, offerID, displayLocationID uuid.UUID) *entity.RedemptionCode {
	return &entity.RedemptionCode{
		Code:              code,
		OfferID:           offerID,
		DisplayLocationID: displayLocationID,
		Status:            entity.CodeStatusActive,
		IssuedAt:          time.Now().UTC(),
	}
}
