package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedemptionCode_Redeem(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	code := &RedemptionCode{ID: uuid.New(), Code: "A1B2C3D4", Status: CodeStatusActive, IssuedAt: now.Add(-time.Hour)}

	require.NoError(t, code.Redeem(now))
	assert.Equal(t, CodeStatusRedeemed, code.Status)
	require.NotNil(t, code.RedeemedAt)
	assert.Equal(t, now, *code.RedeemedAt)

	later := now.Add(time.Minute)
	assert.ErrorIs(t, code.Redeem(later), ErrCodeNotActive)
	assert.Equal(t, now, *code.RedeemedAt, "a terminal code keeps its first redemption time")
}

func TestAttribute(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name                     string
		offerOwner, displayOwner uuid.UUID
		redeemingOwner           uuid.UUID
		expectInbound, expectOut bool
		expectOK                 bool
	}{
		{name: "redeemed at offer owner after referral", offerOwner: a, displayOwner: b, redeemingOwner: a, expectInbound: true, expectOut: true, expectOK: true},
		{name: "redeemed at referrer", offerOwner: a, displayOwner: b, redeemingOwner: b, expectOut: true, expectOK: true},
		{name: "own display at own store", offerOwner: a, displayOwner: a, redeemingOwner: a, expectInbound: true, expectOK: true},
		{name: "unrelated store", offerOwner: a, displayOwner: b, redeemingOwner: c},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr, ok := Attribute(tt.offerOwner, tt.displayOwner, tt.redeemingOwner)
			assert.Equal(t, tt.expectOK, ok)
			assert.Equal(t, tt.expectInbound, attr.Inbound)
			assert.Equal(t, tt.expectOut, attr.Outbound)
		})
	}
}
