package model

// All lists every row struct, in dependency order, for AutoMigrate in tests and local tooling.
func All() []any {
	return []any{
		&LocationModel{},
		&OfferModel{},
		&PartnershipModel{},
		&OpenOfferSubscriptionModel{},
		&ImpressionModel{},
		&RedemptionCodeModel{},
		&RedemptionModel{},
		&ScoreEventModel{},
		&LeaderboardScoreModel{},
		&AccountDeviceModel{},
	}
}
