package qrcode

import (
	"net/url"
	"strings"

	"offerengine/internal/domain/service"
	"offerengine/internal/errors"

	"github.com/skip2/go-qrcode"
)

const codeQueryParam = "code"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. When baseURL is empty the QR payload
// is the bare redemption code.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L", "LOW":
		level = qrcode.Low
	case "M", "MEDIUM":
		level = qrcode.Medium
	case "Q", "HIGH":
		level = qrcode.High
	case "H", "HIGHEST":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimSpace(baseURL),
	}
}

// GenerateCouponQR renders the coupon landing URL for code as a PNG.
func (s *qrcodeService) GenerateCouponQR(code string) ([]byte, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errors.New("redemption code is empty")
	}

	payload, err := s.payload(code)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCouponQR accepts either a landing URL carrying the code parameter or a bare code.
func (s *qrcodeService) ParseCouponQR(qrData string) (string, error) {
	qrData = strings.TrimSpace(qrData)
	if qrData == "" {
		return "", errors.New("empty QR payload")
	}

	if !strings.Contains(qrData, "://") {
		return qrData, nil
	}

	parsed, err := url.Parse(qrData)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR url")
	}

	code := parsed.Query().Get(codeQueryParam)
	if code == "" {
		return "", errors.Errorf("QR url has no %s parameter", codeQueryParam)
	}

	return code, nil
}

func (s *qrcodeService) payload(code string) (string, error) {
	if s.baseURL == "" {
		return code, nil
	}

	landing, err := url.Parse(s.baseURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid QR base url")
	}

	query := landing.Query()
	query.Set(codeQueryParam, code)
	landing.RawQuery = query.Encode()

	return landing.String(), nil
}
