package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func storeFailure() error {
	return WithStack(errSentinel)
}

func lookupFailure(code string) error {
	return Errorf("code %s not found", code)
}

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrapf(Wrap(storeFailure(), "insert redemption"), "location %d", 7)

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "location 7: insert redemption: sentinel", err.Error())
	assert.NoError(t, Wrap(nil, "ignored"))
}

func TestAsType(t *testing.T) {
	err := fmt.Errorf("outer: %w", Wrap(&codedError{code: "ALREADY_REDEEMED"}, "redeem"))

	coded, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, "ALREADY_REDEEMED", coded.code)

	_, ok = AsType[*codedError](errSentinel)
	assert.False(t, ok)
}

func TestOrigin(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		function string
	}{
		{name: "with stack", err: Wrap(storeFailure(), "insert redemption"), function: "storeFailure "},
		{name: "errorf", err: Wrapf(lookupFailure("K7Q2M9XA"), "redeem at %s", "joe"), function: "lookupFailure "},
		{name: "wrapped at call site", err: Wrap(errSentinel, "issue code"), function: "TestOrigin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin := Origin(tt.err)

			assert.True(t, strings.HasPrefix(origin, tt.function), "origin %q", origin)
			assert.Contains(t, origin, "errors_test.go:")
			assert.NotContains(t, origin, "errors.go:")
		})
	}

	assert.Empty(t, Origin(errSentinel))
	assert.Empty(t, Origin(nil))
}

func TestShortFuncName(t *testing.T) {
	assert.Equal(t, "storeFailure", shortFuncName("offerengine/internal/errors.storeFailure"))
	assert.Equal(t, "(*redemptionService).Redeem", shortFuncName("offerengine/internal/usecase/impl.(*redemptionService).Redeem"))
	assert.Equal(t, "main", shortFuncName("main.main"))
}
