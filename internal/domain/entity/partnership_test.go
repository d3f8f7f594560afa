package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartnership_Approve(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	inviter, invited := uuid.New(), uuid.New()
	p := &Partnership{ID: uuid.New(), AccountAID: inviter, AccountBID: invited, Status: PartnershipPending}

	assert.ErrorIs(t, p.Approve(inviter, now), ErrNotInvitedAccount)
	assert.ErrorIs(t, p.Approve(uuid.New(), now), ErrNotInvitedAccount)
	assert.Equal(t, PartnershipPending, p.Status)

	require.NoError(t, p.Approve(invited, now))
	assert.Equal(t, PartnershipApproved, p.Status)
	assert.Equal(t, now, p.UpdatedAt)

	assert.ErrorIs(t, p.Approve(invited, now), ErrPartnershipNotPending)
}

func TestPartnership_Counterparty(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	p := &Partnership{AccountAID: a, AccountBID: b}

	assert.Equal(t, b, p.Counterparty(a))
	assert.Equal(t, a, p.Counterparty(b))
	assert.Equal(t, uuid.Nil, p.Counterparty(uuid.New()))
}
