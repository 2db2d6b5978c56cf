package repoargs

import "time"

type CreateTrip struct {
	UserID         int64
	DepartureCity  string
	Destination    string
	ArrivalDate    time.Time
	ReturnDate     time.Time
	ColdContainers int
	HotContainers  int
	Comments       string
}

// TripFilter is a conjunctive filter: zero-valued fields impose no constraint.
type TripFilter struct {
	Destination string
	ArrivalDate *time.Time
}

// TripDetail is a trip row joined with its driver profile.
type TripDetail struct {
	ID             int64
	DepartureCity  string
	Destination    string
	ArrivalDate    time.Time
	ReturnDate     time.Time
	ColdContainers int
	HotContainers  int
	Comments       string
	DriverName     string
	DriverTrips    int
	DriverRating   float64
	DriverRatings  int
	DriverImageURL string
}
