package service

import (
	"context"
	"fmt"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
)

// DefaultRecentTripsLimit bounds the recent-trips listing.
const DefaultRecentTripsLimit uint = 10

type TripService struct {
	uow      uow.UOW
	tripRepo TripRepository
}

func NewTripService(u uow.UOW) (*TripService, error) {
	tripRepo, err := uow.GetRepositoryAs[TripRepository](u, uow.RepositoryName(repoargs.TripRepoName))
	if err != nil {
		return nil, err
	}
	return &TripService{
		uow:      u,
		tripRepo: tripRepo,
	}, nil
}

func (s *TripService) Create(ctx context.Context, args repoargs.CreateTrip) (*domain.Trip, error) {
	trip, err := s.tripRepo.CreateTrip(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating trip: %w", err)
	}
	return trip, nil
}

// Recent returns the latest trips ordered by arrival date descending.
func (s *TripService) Recent(ctx context.Context, limit uint) ([]domain.Trip, error) {
	if limit == 0 {
		limit = DefaultRecentTripsLimit
	}
	trips, err := s.tripRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return trips, nil
}

// Filtered returns trips matching the conjunctive filter ordered by arrival
// date ascending.
func (s *TripService) Filtered(ctx context.Context, filter repoargs.TripFilter) ([]domain.Trip, error) {
	trips, err := s.tripRepo.GetFiltered(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return trips, nil
}

func (s *TripService) Detail(ctx context.Context, tripID int64) (*repoargs.TripDetail, error) {
	detail, err := s.tripRepo.FindDetail(ctx, tripID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return detail, nil
}

func (s *TripService) OwnerID(ctx context.Context, tripID int64) (int64, error) {
	ownerID, err := s.tripRepo.GetOwnerID(ctx, tripID)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	return ownerID, nil
}

// RateDriver resolves the trip's driver and folds rating into the running
// average on the driver's profile. The read-modify-write runs inside one
// transaction with the profile row locked, so concurrent ratings serialize
// instead of losing updates.
func (s *TripService) RateDriver(ctx context.Context, tripID int64, rating float64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		tripRepo, tripRepoErr := uow.GetAs[TripRepository](tx, uow.RepositoryName(repoargs.TripRepoName))
		if tripRepoErr != nil {
			return tripRepoErr //nolint:wrapcheck
		}
		profileRepo, profileRepoErr := uow.GetAs[ProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
		if profileRepoErr != nil {
			return profileRepoErr //nolint:wrapcheck
		}

		driverID, driverErr := tripRepo.GetOwnerID(c, tripID)
		if driverErr != nil {
			return driverErr //nolint:wrapcheck
		}

		profile, profileErr := profileRepo.FindByUserIDForUpdate(c, driverID)
		if profileErr != nil {
			return profileErr //nolint:wrapcheck
		}

		newCount := profile.RatingCount + 1
		newRating := (profile.Rating*float64(profile.RatingCount) + rating) / float64(newCount)

		return profileRepo.UpdateRating(c, repoargs.RatingUpdate{ //nolint:wrapcheck
			UserID:      driverID,
			Rating:      newRating,
			RatingCount: newCount,
		})
	})

	if txErr != nil {
		return fmt.Errorf("rating driver of trip %d: %w", tripID, txErr)
	}
	return nil
}
