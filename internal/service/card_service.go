package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
)

type CardService struct {
	uow      uow.UOW
	cardRepo CardRepository
}

func NewCardService(u uow.UOW) (*CardService, error) {
	cardRepo, err := uow.GetRepositoryAs[CardRepository](u, uow.RepositoryName(repoargs.CardRepoName))
	if err != nil {
		return nil, err
	}
	return &CardService{
		uow:      u,
		cardRepo: cardRepo,
	}, nil
}

type AddCardArgs struct {
	HolderName string
	Number     string
	ExpiryDate string
}

// Add stores a masked reference to the card. The full number is used only to
// derive the mask and the network and is never persisted.
func (s *CardService) Add(ctx context.Context, userID int64, args AddCardArgs) (*domain.Card, error) {
	card, err := s.cardRepo.CreateCard(ctx, repoargs.CreateCard{
		UserID:       userID,
		HolderName:   args.HolderName,
		MaskedNumber: MaskCardNumber(args.Number),
		ExpiryDate:   args.ExpiryDate,
		Network:      CardNetworkFor(args.Number),
	})
	if err != nil {
		return nil, fmt.Errorf("adding card: %w", err)
	}
	return card, nil
}

// List returns every card of the user regardless of status. The profile view
// filters to active cards; this listing intentionally does not.
func (s *CardService) List(ctx context.Context, userID int64) ([]domain.Card, error) {
	cards, err := s.cardRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return cards, nil
}

// Deactivate flips an active card of the user to inactive. Returns
// domain.ErrRecordNotFound when no active card with the id belongs to the
// user and domain.ErrCardInUse while a processing order references the card.
func (s *CardService) Deactivate(ctx context.Context, userID, cardID int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		cardRepo, cardRepoErr := uow.GetAs[CardRepository](tx, uow.RepositoryName(repoargs.CardRepoName))
		if cardRepoErr != nil {
			return cardRepoErr //nolint:wrapcheck
		}
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}

		card, cardErr := cardRepo.FindActiveByIDAndUserID(c, cardID, userID)
		if cardErr != nil {
			return cardErr //nolint:wrapcheck
		}

		pending, pendingErr := orderRepo.CountProcessingByCardID(c, card.ID)
		if pendingErr != nil {
			return pendingErr //nolint:wrapcheck
		}
		if pending > 0 {
			return domain.ErrCardInUse
		}

		return cardRepo.Deactivate(c, card.ID) //nolint:wrapcheck
	})

	if txErr != nil {
		return fmt.Errorf("deactivating card %d: %w", cardID, txErr)
	}
	return nil
}

// MaskCardNumber keeps only the last four digits of the card number.
func MaskCardNumber(number string) string {
	last4 := number
	if len(number) > 4 {
		last4 = number[len(number)-4:]
	}
	return "**** **** **** " + last4
}

// CardNetworkFor derives the card network from the leading digit.
func CardNetworkFor(number string) domain.CardNetwork {
	switch {
	case strings.HasPrefix(number, "4"):
		return domain.CardNetworkVisa
	case strings.HasPrefix(number, "5"):
		return domain.CardNetworkMasterCard
	default:
		return domain.CardNetworkUnknown
	}
}
