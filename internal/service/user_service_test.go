package service

import (
	"context"
	"testing"
	"time"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/internal/service/mocks"
	"github.com/IEVN1001-20001021/api-paso/internal/service/tokens"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
	uowmocks "github.com/IEVN1001-20001021/api-paso/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockUserRepo    *mocks.MockUserRepository
	mockProfileRepo *mocks.MockProfileRepository
	mockPsswd       *mocks.MockPasswordHasher
	jwtSecret       []byte
	userService     *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockProfileRepo = mocks.NewMockProfileRepository(mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(mockCtrl)

	s.jwtSecret = []byte("secret")

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	userService, servErr := NewUserService(s.mockUOW, s.jwtSecret, s.mockPsswd)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TestRegister() {
	birthDate := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)
	age := AgeAt(birthDate, time.Now())

	argsOk := RegisterUserArgs{
		Username:  "validUser",
		Email:     "valid@example.com",
		Password:  "<PASSWORD>",
		Surname1:  "Pérez",
		Surname2:  "Gómez",
		BirthDate: birthDate,
		Sex:       "M",
	}
	argsDuplicateEmail := RegisterUserArgs{
		Username:  "duplicateUser",
		Email:     "taken@example.com",
		Password:  "<PASSWORD>",
		Surname1:  "Pérez",
		Surname2:  "Gómez",
		BirthDate: birthDate,
		Sex:       "F",
	}
	argsUnderage := RegisterUserArgs{
		Username:  "youngUser",
		Email:     "young@example.com",
		Password:  "<PASSWORD>",
		Surname1:  "Pérez",
		Surname2:  "Gómez",
		BirthDate: time.Now().AddDate(-17, 0, 0),
		Sex:       "M",
	}

	validHashedPassword := "hashedPassword"

	createdUser := domain.User{
		ID:        1,
		Username:  argsOk.Username,
		Email:     argsOk.Email,
		CreatedAt: time.Now(),
	}

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ProfileRepoName)).
		Return(s.mockProfileRepo, nil).AnyTimes()

	s.mockPsswd.EXPECT().HashPassword(argsOk.Password).Return(validHashedPassword, nil).Times(2)

	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Eq(repoargs.CreateUser{
			Username:  argsOk.Username,
			Email:     argsOk.Email,
			Password:  validHashedPassword,
			Surname1:  argsOk.Surname1,
			Surname2:  argsOk.Surname2,
			BirthDate: argsOk.BirthDate,
			Age:       age,
			Sex:       argsOk.Sex,
		})).
		Return(&createdUser, nil)

	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Eq(repoargs.CreateUser{
			Username:  argsDuplicateEmail.Username,
			Email:     argsDuplicateEmail.Email,
			Password:  validHashedPassword,
			Surname1:  argsDuplicateEmail.Surname1,
			Surname2:  argsDuplicateEmail.Surname2,
			BirthDate: argsDuplicateEmail.BirthDate,
			Age:       age,
			Sex:       argsDuplicateEmail.Sex,
		})).
		Return(nil, domain.ErrDuplicateKey)

	s.mockProfileRepo.EXPECT().
		CreateProfile(gomock.Any(), gomock.Eq(repoargs.CreateProfile{
			UserID:   createdUser.ID,
			Username: argsOk.Username,
			Bio:      "",
			ImageURL: defaultProfileImageURL,
		})).
		Return(&domain.Profile{ID: 1, UserID: createdUser.ID}, nil)

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	cases := []struct {
		name     string
		args     RegisterUserArgs
		wantErr  error
		wantUser *domain.User
	}{
		{name: "ok", args: argsOk, wantUser: &createdUser},
		{name: "duplicate email", args: argsDuplicateEmail, wantErr: domain.ErrDuplicateKey},
		{name: "underage", args: argsUnderage, wantErr: domain.ErrUnderage},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, err := s.userService.Register(s.T().Context(), t.args)

			s.Require().ErrorIs(err, t.wantErr)
			s.Equal(t.wantUser, user)
		})
	}
}

func (s *UserServiceTestSuite) TestLogin() {
	savedEmail := "saved@example.com"

	argsOk := LoginUserArgs{Email: savedEmail, Password: "<PASSWORD>"}
	argsWrongEmail := LoginUserArgs{Email: "wrong@example.com", Password: "<PASSWORD>"}
	argsWrongPass := LoginUserArgs{Email: savedEmail, Password: "wrong pass"}

	validHashPassword := "hash ok"

	savedUser := domain.User{
		ID:                1,
		CreatedAt:         time.Now(),
		Username:          "saved",
		Email:             savedEmail,
		EncryptedPassword: validHashPassword,
	}

	s.mockPsswd.EXPECT().ComparePassword(argsOk.Password, validHashPassword).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongPass.Password, validHashPassword).Return(false)

	s.mockUserRepo.EXPECT().
		FindUserByEmail(gomock.Any(), savedEmail).
		Return(&savedUser, nil).Times(2)

	s.mockUserRepo.EXPECT().
		FindUserByEmail(gomock.Any(), argsWrongEmail.Email).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{name: "ok", args: argsOk},
		{name: "wrong email", args: argsWrongEmail, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Login(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.NotEmpty(tokenStr)

				token, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(token.Claims.(*tokens.UserClaims).ID, savedUser.ID) //nolint:errcheck
				s.NotNil(user)
			}
		})
	}
}

func (s *UserServiceTestSuite) TestAgeAt() {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		birthDate time.Time
		want      int
	}{
		{name: "birthday passed", birthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), want: 25},
		{name: "birthday today", birthDate: time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC), want: 25},
		{name: "birthday ahead", birthDate: time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC), want: 24},
		{name: "day before birthday", birthDate: time.Date(2007, 6, 16, 0, 0, 0, 0, time.UTC), want: 17},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.Equal(t.want, AgeAt(t.birthDate, now))
		})
	}
}
