package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	passengermocks "github.com/mrshoofer/mrshoofer/services/passengers/mocks"
	"github.com/mrshoofer/mrshoofer/services/trips/mocks"
)

type tripUCDeps struct {
	repo        *mocks.MockTripRepo
	gw          *mocks.MockTripGW
	passengerUC *passengermocks.MockPassengerUC
}

func testConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingConfig{
			RatePerKm:         5000,
			MinutesPerKm:      3,
			Currency:          "IRR",
			ComfortMultiplier: 1.3,
			PremiumMultiplier: 1.8,
		},
	}
}

func newTestTripUC(t *testing.T) (*TripUC, tripUCDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := tripUCDeps{
		repo:        mocks.NewMockTripRepo(ctrl),
		gw:          mocks.NewMockTripGW(ctrl),
		passengerUC: passengermocks.NewMockPassengerUC(ctrl),
	}
	uc := NewTripUC(deps.repo, deps.gw, deps.passengerUC, testConfig())
	uc.now = func() time.Time { return time.UnixMilli(1735689600000) }
	return uc, deps
}

// sequenceCodes returns the given codes in order, then repeats the last one
func sequenceCodes(codes ...string) func(int) (string, error) {
	i := 0
	return func(n int) (string, error) {
		code := codes[i]
		if i < len(codes)-1 {
			i++
		}
		return code, nil
	}
}
