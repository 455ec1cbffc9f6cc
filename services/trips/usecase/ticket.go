package usecase

import (
	"context"
	"fmt"

	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
)

const (
	ticketCodeLength   = 8
	ticketCodeAttempts = 10
	fallbackSuffixLen  = 4
	secureTokenLength  = 32
)

// allocateTicketCode draws random codes until one is unused. After
// ticketCodeAttempts collisions it falls back to TC<unix millis><random>,
// which the unique constraint still guards.
func (uc *TripUC) allocateTicketCode(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= ticketCodeAttempts; attempt++ {
		code, err := uc.randomCode(ticketCodeLength)
		if err != nil {
			return "", err
		}

		exists, err := uc.tripRepo.TicketCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	suffix, err := uc.randomCode(fallbackSuffixLen)
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("TC%d%s", uc.now().UnixMilli(), suffix)
	logger.WarnCtx(ctx, "Ticket code attempts exhausted, using fallback code",
		logger.Int("attempts", ticketCodeAttempts),
		logger.String("ticket_code", code))
	return code, nil
}

func (uc *TripUC) newSecureToken() (string, error) {
	return uc.randomCode(secureTokenLength)
}
