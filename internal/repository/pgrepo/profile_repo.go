package pgrepo

import (
	"context"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
)

type ProfileRepository struct {
	db uow.DBTX
}

func NewProfileRepository(db uow.DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, user_id, username, bio, trips, orders, rating, rating_count, image_url`

func (p *ProfileRepository) CreateProfile(ctx context.Context, args repoargs.CreateProfile) (*domain.Profile, error) {
	row := p.db.QueryRow(ctx, `
		INSERT INTO profiles (user_id, username, bio, trips, orders, rating, rating_count, image_url)
		VALUES ($1, $2, $3, 0, 0, 0, 0, $4)
		RETURNING `+profileColumns,
		args.UserID, args.Username, args.Bio, args.ImageURL,
	)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "creating profile for user %d", args.UserID)
	}
	return profile, nil
}

func (p *ProfileRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	row := p.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "finding profile by user id %d", userID)
	}
	return profile, nil
}

// FindByUserIDForUpdate locks the profile row for the duration of the
// surrounding transaction. Used by the rating read-modify-write.
func (p *ProfileRepository) FindByUserIDForUpdate(ctx context.Context, userID int64) (*domain.Profile, error) {
	row := p.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1 FOR UPDATE`, userID)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "locking profile by user id %d", userID)
	}
	return profile, nil
}

func (p *ProfileRepository) UpdateImageURL(ctx context.Context, userID int64, imageURL string) error {
	tag, err := p.db.Exec(ctx, `UPDATE profiles SET image_url = $1 WHERE user_id = $2`, imageURL, userID)
	if err != nil {
		return convertErr(err, "updating profile image for user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating profile image for user %d", userID)
	}
	return nil
}

func (p *ProfileRepository) IncrementTrips(ctx context.Context, userID int64) error {
	tag, err := p.db.Exec(ctx, `UPDATE profiles SET trips = trips + 1 WHERE user_id = $1`, userID)
	if err != nil {
		return convertErr(err, "incrementing trips for user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "incrementing trips for user %d", userID)
	}
	return nil
}

func (p *ProfileRepository) UpdateRating(ctx context.Context, args repoargs.RatingUpdate) error {
	tag, err := p.db.Exec(ctx, `
		UPDATE profiles SET rating = $1, rating_count = $2 WHERE user_id = $3`,
		args.Rating, args.RatingCount, args.UserID,
	)
	if err != nil {
		return convertErr(err, "updating rating for user %d", args.UserID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating rating for user %d", args.UserID)
	}
	return nil
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var profile domain.Profile
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.Username, &profile.Bio,
		&profile.Trips, &profile.Orders, &profile.Rating, &profile.RatingCount, &profile.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
