package main

import (
	"context"
	"log/slog"

	"offerengine/internal/domain/entity"
	"offerengine/internal/errors"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
)

const commandSeed = "seed"

// Demo account ids are fixed.
var (
	joeAccountID   = uuid.MustParse("6f1c1a52-4a8e-4c55-9d1e-1b0a4c2f7a01")
	sallyAccountID = uuid.MustParse("6f1c1a52-4a8e-4c55-9d1e-1b0a4c2f7a02")
	mikeAccountID  = uuid.MustParse("6f1c1a52-4a8e-4c55-9d1e-1b0a4c2f7a03")
)

type seedLocation struct {
	owner    uuid.UUID
	input    usecase.CreateLocationInput
	offer    usecase.CreateOfferInput
	location *entity.Location
	created  *entity.Offer
}

func ptr(v float64) *float64 { return &v }

// seed builds Joe's cafe partnered with Sally's salon and subscribed to the Open Offer of Mike's deli
func seed(ctx context.Context, catalog usecase.CatalogUsecase, logger *slog.Logger) error {
	stores := []*seedLocation{
		{
			owner: joeAccountID,
			input: usecase.CreateLocationInput{
				Name: "Joe's Coffee", Address: "100 Main St", Category: "cafe",
				Latitude: ptr(40.7128), Longitude: ptr(-74.0060),
			},
			offer: usecase.CreateOfferInput{Title: "Free refill", CallToAction: "Ask the barista"},
		},
		{
			owner: sallyAccountID,
			input: usecase.CreateLocationInput{
				Name: "Sally's Salon", Address: "120 Main St", Category: "salon",
				Latitude: ptr(40.7150), Longitude: ptr(-74.0080),
			},
			offer: usecase.CreateOfferInput{
				Title: "10% off a cut", CallToAction: "Book at the front desk", AvailableForPartnership: true,
			},
		},
		{
			owner: mikeAccountID,
			input: usecase.CreateLocationInput{
				Name: "Mike's Deli", Address: "300 Broadway", Category: "deli",
				Latitude: ptr(40.7302), Longitude: ptr(-74.0060),
			},
			offer: usecase.CreateOfferInput{
				Title: "Free pickle", CallToAction: "Show this code at the counter", IsOpenOffer: true,
			},
		},
	}

	for _, store := range stores {
		location, err := catalog.CreateLocation(ctx, store.owner, &store.input)
		if err != nil {
			return errors.Wrapf(err, "create location %q", store.input.Name)
		}
		store.location = location

		store.offer.LocationID = location.ID
		offer, err := catalog.CreateOffer(ctx, store.owner, &store.offer)
		if err != nil {
			return errors.Wrapf(err, "create offer %q", store.offer.Title)
		}
		store.created = offer

		logger.Info("Seeded location",
			slog.String("name", location.Name),
			slog.String("location_id", location.ID.String()),
			slog.String("offer_id", offer.ID.String()),
			slog.String("owner_account_id", store.owner.String()),
		)
	}

	joe, mike := stores[0], stores[2]

	partnership, err := catalog.CreatePartnership(ctx, joeAccountID, sallyAccountID)
	if err != nil {
		return errors.Wrap(err, "create partnership")
	}
	if _, err := catalog.ApprovePartnership(ctx, sallyAccountID, partnership.ID); err != nil {
		return errors.Wrap(err, "approve partnership")
	}

	if _, err := catalog.SubscribeOpenOffer(ctx, joeAccountID, joe.location.ID, mike.created.ID); err != nil {
		return errors.Wrap(err, "subscribe open offer")
	}

	logger.Info("Seed complete")

	return nil
}
