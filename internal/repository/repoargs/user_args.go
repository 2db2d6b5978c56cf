package repoargs

import "time"

type CreateUser struct {
	Username  string
	Email     string
	Password  string
	Surname1  string
	Surname2  string
	BirthDate time.Time
	Age       int
	Sex       string
}

type CreateProfile struct {
	UserID   int64
	Username string
	Bio      string
	ImageURL string
}

// RatingUpdate carries the recomputed running average for a driver profile.
type RatingUpdate struct {
	UserID      int64
	Rating      float64
	RatingCount int
}
