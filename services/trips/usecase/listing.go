package usecase

import (
	"context"
	"math"

	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	// the page offset must fit a Postgres integer
	maxPage = math.MaxInt32 / maxPageSize
)

// ListUpcomings returns the trips starting on a Tehran calendar day
// (YYYY-MM-DD), earliest first
func (uc *TripUC) ListUpcomings(ctx context.Context, day string) ([]*models.TripDetail, error) {
	if day == "" {
		return []*models.TripDetail{}, nil
	}

	from, to, err := utils.TehranDayRange(day)
	if err != nil {
		return nil, apperrors.InvalidPayload("day must be YYYY-MM-DD", err)
	}
	return uc.tripRepo.ListByStartRange(ctx, from, to)
}

// ListTrips returns one page of the superadmin trip listing
func (uc *TripUC) ListTrips(ctx context.Context, filter models.TripFilter) (*models.TripPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Page > maxPage {
		filter.Page = maxPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperrors.InvalidPayload("Unknown trip status "+string(filter.Status), nil)
	}

	data, total, err := uc.tripRepo.ListTrips(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.TripPage{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: (total + filter.PageSize - 1) / filter.PageSize,
	}, nil
}
