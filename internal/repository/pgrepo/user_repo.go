package pgrepo

import (
	"context"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
)

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, created_at, username, email, encrypted_password,
	surname1, surname2, birth_date, age, sex`

// CreateUser inserts a user. A taken email surfaces as domain.ErrDuplicateKey,
// any other failure as domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		INSERT INTO users (username, email, encrypted_password, surname1, surname2, birth_date, age, sex)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+userColumns,
		args.Username, args.Email, args.Password,
		args.Surname1, args.Surname2, args.BirthDate, args.Age, args.Sex,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user with email %s", args.Email)
	}
	return user, nil
}

// FindUserByEmail returns domain.ErrRecordNotFound when no user has the email.
func (u *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return user, nil
}

func (u *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.CreatedAt, &user.Username, &user.Email, &user.EncryptedPassword,
		&user.Surname1, &user.Surname2, &user.BirthDate, &user.Age, &user.Sex,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
