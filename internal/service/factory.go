package service

import (
	"fmt"

	"github.com/IEVN1001-20001021/api-paso/internal/service/psswd"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
)

type AppServices struct {
	UserService    *UserService
	ProfileService *ProfileService
	TripService    *TripService
	CardService    *CardService
	OrderService   *OrderService
	CatalogService *CatalogService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.PasswordHash(""))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	profileService, profileServiceErr := NewProfileService(unitOfWork)
	if profileServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", profileServiceErr.Error())
	}

	tripService, tripServiceErr := NewTripService(unitOfWork)
	if tripServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", tripServiceErr.Error())
	}

	cardService, cardServiceErr := NewCardService(unitOfWork)
	if cardServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", cardServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	catalogService, catalogServiceErr := NewCatalogService(unitOfWork)
	if catalogServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", catalogServiceErr.Error())
	}

	return &AppServices{
		UserService:    userService,
		ProfileService: profileService,
		TripService:    tripService,
		CardService:    cardService,
		OrderService:   orderService,
		CatalogService: catalogService,
	}, nil
}
