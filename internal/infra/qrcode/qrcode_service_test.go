package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "medium"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateCouponQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://offers.example.com/coupon")

	qrBytes, err := service.GenerateCouponQR("K7Q2M9XA")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateCouponQR_EmptyCode(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateCouponQR("  ")
	assert.Error(t, err)
}

func TestQRCodeService_PayloadRoundTrip(t *testing.T) {
	withBase := NewQRCodeService(256, "M", "https://offers.example.com/coupon?src=qr").(*qrcodeService)

	payload, err := withBase.payload("K7Q2M9XA")
	require.NoError(t, err)
	assert.Contains(t, payload, "code=K7Q2M9XA")
	assert.Contains(t, payload, "src=qr")

	code, err := withBase.ParseCouponQR(payload)
	require.NoError(t, err)
	assert.Equal(t, "K7Q2M9XA", code)

	bare := NewQRCodeService(256, "M", "").(*qrcodeService)
	payload, err = bare.payload("K7Q2M9XA")
	require.NoError(t, err)
	assert.Equal(t, "K7Q2M9XA", payload)
}

func TestQRCodeService_ParseCouponQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"url without code", "https://offers.example.com/coupon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseCouponQR(tt.data)
			assert.Error(t, err)
		})
	}
}
