package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"strings"
	"time"

	"offerengine/config"
	deliverycontext "offerengine/internal/delivery/context"
	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/repository"
	"offerengine/internal/domain/service"
	"offerengine/internal/errors"
	"offerengine/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// minCodeLength is the shortest code accepted at redemption regardless of the current issue length
	minCodeLength = 8

	// maxMintAttempts bounds re-minting after code string collisions
	maxMintAttempts = 5

	// largest byte value that maps uniformly onto the alphabet
	codeByteLimit = 256 - 256%len(codeAlphabet)
)

// ErrCodeSpaceExhausted is returned when every minted candidate collided with an existing code
var ErrCodeSpaceExhausted = errors.New("could not mint a unique redemption code")

// CodeIssuerParams holds the dependencies of the redemption code issuer
type CodeIssuerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	Eligibility usecase.EligibilityUsecase
	CodeRepo    repository.RedemptionCodeRepository
	QRCode      service.QRCodeService
	Metrics     service.MetricsRecorder
}

type codeIssuerService struct {
	logger      *slog.Logger
	eligibility usecase.EligibilityUsecase
	codeRepo    repository.RedemptionCodeRepository
	qrCode      service.QRCodeService
	metrics     service.MetricsRecorder

	codeLength int
	timeout    time.Duration

	mint func(length int) (string, error)
	now  func() time.Time
}

// NewCodeIssuerService creates the redemption code issuer
func NewCodeIssuerService(params CodeIssuerParams) usecase.RedemptionCodeUsecase {
	length := params.Config.Engine.CodeLength
	if length < minCodeLength {
		length = minCodeLength
	}

	return &codeIssuerService{
		logger:      params.Logger,
		eligibility: params.Eligibility,
		codeRepo:    params.CodeRepo,
		qrCode:      params.QRCode,
		metrics:     params.Metrics,
		codeLength:  length,
		timeout:     params.Config.Engine.OperationTimeout,
		mint:        mintCode,
		now:         time.Now,
	}
}

// IssueRedemptionCode returns the pair's active code, minting one when absent.
// Concurrent first requests converge on a single code through the partial unique index.
func (s *codeIssuerService) IssueRedemptionCode(ctx context.Context, offerID, displayLocationID uuid.UUID) (*entity.RedemptionCode, error) {
	ctx, cancel := withOperationTimeout(ctx, s.timeout)
	defer cancel()

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if _, err := s.eligibility.CheckEligibility(ctx, offerID, displayLocationID); err != nil {
		return nil, err
	}

	existing, err := s.codeRepo.FindActiveCode(ctx, offerID, displayLocationID)
	if err == nil {
		s.metrics.CodeIssued(true)

		return existing, nil
	}
	if !errors.Is(err, repository.ErrRedemptionCodeNotFound) {
		return nil, err
	}

	for attempt := 1; attempt <= maxMintAttempts; attempt++ {
		value, err := s.mint(s.codeLength)
		if err != nil {
			return nil, errors.Wrap(err, "failed to mint redemption code")
		}

		candidate := &entity.RedemptionCode{
			ID:                uuid.New(),
			Code:              value,
			OfferID:           offerID,
			DisplayLocationID: displayLocationID,
			Status:            entity.CodeStatusActive,
			IssuedAt:          s.now().UTC(),
		}

		inserted, err := s.codeRepo.InsertCodeIfAbsent(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if inserted {
			s.metrics.CodeIssued(false)
			logger.Info("Issued redemption code",
				slog.String("offer_id", offerID.String()),
				slog.String("display_location_id", displayLocationID.String()),
			)

			return candidate, nil
		}

		// Either a concurrent issuer won the pair or the code string collided.
		winner, err := s.codeRepo.FindActiveCode(ctx, offerID, displayLocationID)
		if err == nil {
			s.metrics.CodeIssued(true)

			return winner, nil
		}
		if !errors.Is(err, repository.ErrRedemptionCodeNotFound) {
			return nil, err
		}

		logger.Warn("Redemption code collided, minting again", slog.Int("attempt", attempt))
	}

	return nil, ErrCodeSpaceExhausted
}

// RenderCouponQR renders an active code as a PNG QR image
func (s *codeIssuerService) RenderCouponQR(ctx context.Context, code string) ([]byte, error) {
	normalized := normalizeCode(code)
	if !wellFormedCode(normalized) {
		return nil, domainerrors.ErrInvalidCode
	}

	redemptionCode, err := s.codeRepo.FindCodeByValue(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrRedemptionCodeNotFound) {
			return nil, domainerrors.ErrInvalidCode
		}

		return nil, err
	}
	if redemptionCode.Status != entity.CodeStatusActive {
		return nil, domainerrors.ErrAlreadyRedeemed
	}

	png, err := s.qrCode.GenerateCouponQR(redemptionCode.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render coupon QR")
	}

	return png, nil
}

// mintCode draws length characters uniformly from the base36 alphabet.
func mintCode(length int) (string, error) {
	var sb strings.Builder
	sb.Grow(length)

	buf := make([]byte, length*2)
	for sb.Len() < length {
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Wrap(err, "crypto/rand")
		}
		for _, b := range buf {
			if int(b) >= codeByteLimit {
				continue
			}
			sb.WriteByte(codeAlphabet[int(b)%len(codeAlphabet)])
			if sb.Len() == length {
				break
			}
		}
	}

	return sb.String(), nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// wellFormedCode accepts base36 codes of at least the minimum length.
func wellFormedCode(code string) bool {
	if len(code) < minCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(codeAlphabet, code[i]) < 0 {
			return false
		}
	}

	return true
}

func withOperationTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}
