package service

import (
	"context"
	"fmt"
	"time"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/internal/service/tokens"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
)

// JWTTokenExpire is the absolute session lifetime from issuance.
const JWTTokenExpire = 24 * time.Hour

const (
	minimumAge             = 18
	defaultProfileImageURL = "https://via.placeholder.com/100"
)

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	jwtTokenSecret []byte
	psswd          PasswordHasher
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, psswd PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		jwtTokenSecret: jwtTokenSecret,
		psswd:          psswd,
	}, nil
}

type RegisterUserArgs struct {
	Username  string
	Email     string
	Password  string
	Surname1  string
	Surname2  string
	BirthDate time.Time
	Sex       string
}

// Register creates the user and its profile in one transaction. Returns
// domain.ErrUnderage when the computed age is below 18 and
// domain.ErrDuplicateKey when the email is taken.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, error) {
	age := AgeAt(args.BirthDate, time.Now())
	if age < minimumAge {
		return nil, domain.ErrUnderage
	}

	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("registering user: %s", hashErr.Error())
	}

	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		profileRepo, profileRepoErr := uow.GetAs[ProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
		if profileRepoErr != nil {
			return profileRepoErr //nolint:wrapcheck
		}

		var userErr error
		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Username:  args.Username,
			Email:     args.Email,
			Password:  password,
			Surname1:  args.Surname1,
			Surname2:  args.Surname2,
			BirthDate: args.BirthDate,
			Age:       age,
			Sex:       args.Sex,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		_, profileErr := profileRepo.CreateProfile(c, repoargs.CreateProfile{
			UserID:   user.ID,
			Username: args.Username,
			Bio:      "",
			ImageURL: defaultProfileImageURL,
		})
		return profileErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("registering user: %w", txErr)
	}
	return user, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login authenticates by email/password and issues a session token. Returns
// domain.ErrRecordNotFound for unknown emails and domain.ErrPasswordMissMatch
// for a failed comparison; callers should present both identically.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindUserByEmail(ctx, args.Email)
	if findErr != nil {
		return nil, "", fmt.Errorf("logging in user: %w", findErr)
	}

	if !s.psswd.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", fmt.Errorf("logging in user: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in user: %s", tokenErr.Error())
	}
	return user, token, nil
}

func (s *UserService) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

// AgeAt computes full years between birthDate and now; the birthday itself
// counts as completed.
func AgeAt(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}
