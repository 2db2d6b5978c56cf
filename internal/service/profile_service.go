package service

import (
	"context"
	"fmt"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
)

type ProfileService struct {
	uow         uow.UOW
	profileRepo ProfileRepository
	tripRepo    TripRepository
	orderRepo   OrderRepository
	cardRepo    CardRepository
}

func NewProfileService(u uow.UOW) (*ProfileService, error) {
	profileRepo, profileRepoErr := uow.GetRepositoryAs[ProfileRepository](u, uow.RepositoryName(repoargs.ProfileRepoName))
	if profileRepoErr != nil {
		return nil, profileRepoErr
	}
	tripRepo, tripRepoErr := uow.GetRepositoryAs[TripRepository](u, uow.RepositoryName(repoargs.TripRepoName))
	if tripRepoErr != nil {
		return nil, tripRepoErr
	}
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	cardRepo, cardRepoErr := uow.GetRepositoryAs[CardRepository](u, uow.RepositoryName(repoargs.CardRepoName))
	if cardRepoErr != nil {
		return nil, cardRepoErr
	}
	return &ProfileService{
		uow:         u,
		profileRepo: profileRepo,
		tripRepo:    tripRepo,
		orderRepo:   orderRepo,
		cardRepo:    cardRepo,
	}, nil
}

// ProfileView is the profile page aggregate: live trip/order counts computed
// from the trips and orders tables, and active cards only.
type ProfileView struct {
	Profile    domain.Profile
	TripCount  int
	OrderCount int
	Cards      []domain.Card
}

func (s *ProfileService) Show(ctx context.Context, userID int64) (*ProfileView, error) {
	profile, profileErr := s.profileRepo.FindByUserID(ctx, userID)
	if profileErr != nil {
		return nil, fmt.Errorf("showing profile: %w", profileErr)
	}

	tripCount, tripCountErr := s.tripRepo.CountByUserID(ctx, userID)
	if tripCountErr != nil {
		return nil, fmt.Errorf("showing profile: %w", tripCountErr)
	}
	orderCount, orderCountErr := s.orderRepo.CountByUserID(ctx, userID)
	if orderCountErr != nil {
		return nil, fmt.Errorf("showing profile: %w", orderCountErr)
	}
	cards, cardsErr := s.cardRepo.GetActiveByUserID(ctx, userID)
	if cardsErr != nil {
		return nil, fmt.Errorf("showing profile: %w", cardsErr)
	}

	return &ProfileView{
		Profile:    *profile,
		TripCount:  tripCount,
		OrderCount: orderCount,
		Cards:      cards,
	}, nil
}

func (s *ProfileService) UpdateImage(ctx context.Context, userID int64, imageURL string) error {
	if err := s.profileRepo.UpdateImageURL(ctx, userID, imageURL); err != nil {
		return fmt.Errorf("updating profile image: %w", err)
	}
	return nil
}
