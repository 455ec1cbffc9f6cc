package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateTicketCode_RetriesCollisions(t *testing.T) {
	uc, deps := newTestTripUC(t)
	uc.randomCode = sequenceCodes("TAKEN001", "TAKEN002", "FreeCode")

	existing := map[string]bool{"TAKEN001": true, "TAKEN002": true}
	deps.repo.EXPECT().
		TicketCodeExists(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, code string) (bool, error) {
			return existing[code], nil
		}).
		Times(3)

	code, err := uc.allocateTicketCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FreeCode", code)
}

func TestAllocateTicketCode_FallsBackAfterExhaustion(t *testing.T) {
	uc, deps := newTestTripUC(t)
	uc.randomCode = func(n int) (string, error) {
		if n == fallbackSuffixLen {
			return "x9Z1", nil
		}
		return "Collides", nil
	}

	deps.repo.EXPECT().TicketCodeExists(gomock.Any(), "Collides").Return(true, nil).Times(ticketCodeAttempts)

	code, err := uc.allocateTicketCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TC1735689600000x9Z1", code)
	assert.Regexp(t, regexp.MustCompile(`^TC\d+[A-Za-z0-9]{4}$`), code)
}

func TestAllocateTicketCode_RealGenerator(t *testing.T) {
	uc, deps := newTestTripUC(t)
	deps.repo.EXPECT().TicketCodeExists(gomock.Any(), gomock.Any()).Return(false, nil)

	code, err := uc.allocateTicketCode(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9]{8}$`), code)
}

func TestAllocateTicketCode_RepositoryError(t *testing.T) {
	uc, deps := newTestTripUC(t)
	deps.repo.EXPECT().TicketCodeExists(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

	_, err := uc.allocateTicketCode(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestNewSecureToken(t *testing.T) {
	uc, _ := newTestTripUC(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token, err := uc.newSecureToken()
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9]{32}$`), token)
		assert.False(t, seen[token])
		seen[token] = true
	}
}
