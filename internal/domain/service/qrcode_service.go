package service

// QRCodeService defines the interface for coupon QR code generation and parsing
type QRCodeService interface {
	// GenerateCouponQR renders a PNG QR code pointing at the coupon landing page of a redemption code
	GenerateCouponQR(code string) ([]byte, error)

	// ParseCouponQR extracts the redemption code from scanned QR content
	ParseCouponQR(qrData string) (string, error)
}
