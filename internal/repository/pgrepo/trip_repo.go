package pgrepo

import (
	"context"
	"fmt"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type TripRepository struct {
	db uow.DBTX
}

func NewTripRepository(db uow.DBTX) *TripRepository {
	return &TripRepository{db: db}
}

const tripColumns = `id, created_at, user_id, departure_city, destination,
	arrival_date, return_date, cold_containers, hot_containers, comments`

func (t *TripRepository) CreateTrip(ctx context.Context, args repoargs.CreateTrip) (*domain.Trip, error) {
	row := t.db.QueryRow(ctx, `
		INSERT INTO trips (user_id, departure_city, destination, arrival_date, return_date,
			cold_containers, hot_containers, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+tripColumns,
		args.UserID, args.DepartureCity, args.Destination, args.ArrivalDate, args.ReturnDate,
		args.ColdContainers, args.HotContainers, args.Comments,
	)
	trip, err := scanTrip(row)
	if err != nil {
		return nil, convertErr(err, "creating trip for user %d", args.UserID)
	}
	return trip, nil
}

// GetRecent returns the latest trips ordered by arrival date descending.
func (t *TripRepository) GetRecent(ctx context.Context, limit uint) ([]domain.Trip, error) {
	rows, err := t.db.Query(ctx, `
		SELECT `+tripColumns+` FROM trips ORDER BY arrival_date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, convertErr(err, "getting recent trips")
	}
	trips, scanErr := collectTrips(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting recent trips")
	}
	return trips, nil
}

// GetFiltered applies the conjunctive filter and orders by arrival date
// ascending. An empty filter returns every trip.
func (t *TripRepository) GetFiltered(ctx context.Context, filter repoargs.TripFilter) ([]domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips`
	var conditions []string
	var params []any

	if filter.Destination != "" {
		params = append(params, filter.Destination)
		conditions = append(conditions, fmt.Sprintf("destination = $%d", len(params)))
	}
	if filter.ArrivalDate != nil {
		params = append(params, *filter.ArrivalDate)
		conditions = append(conditions, fmt.Sprintf("arrival_date = $%d", len(params)))
	}
	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	query += " ORDER BY arrival_date"

	rows, err := t.db.Query(ctx, query, params...)
	if err != nil {
		return nil, convertErr(err, "getting filtered trips")
	}
	trips, scanErr := collectTrips(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting filtered trips")
	}
	return trips, nil
}

// FindDetail joins the trip with its driver profile. Returns
// domain.ErrRecordNotFound when the trip does not exist.
func (t *TripRepository) FindDetail(ctx context.Context, tripID int64) (*repoargs.TripDetail, error) {
	row := t.db.QueryRow(ctx, `
		SELECT t.id, t.departure_city, t.destination, t.arrival_date, t.return_date,
			t.cold_containers, t.hot_containers, t.comments,
			p.username, p.trips, p.rating, p.rating_count, p.image_url
		FROM trips t
		JOIN profiles p ON t.user_id = p.user_id
		WHERE t.id = $1`, tripID)

	var detail repoargs.TripDetail
	err := row.Scan(
		&detail.ID, &detail.DepartureCity, &detail.Destination, &detail.ArrivalDate, &detail.ReturnDate,
		&detail.ColdContainers, &detail.HotContainers, &detail.Comments,
		&detail.DriverName, &detail.DriverTrips, &detail.DriverRating, &detail.DriverRatings, &detail.DriverImageURL,
	)
	if err != nil {
		return nil, convertErr(err, "finding trip detail %d", tripID)
	}
	return &detail, nil
}

// GetOwnerID resolves the driver who posted the trip.
func (t *TripRepository) GetOwnerID(ctx context.Context, tripID int64) (int64, error) {
	var ownerID int64
	err := t.db.QueryRow(ctx, `SELECT user_id FROM trips WHERE id = $1`, tripID).Scan(&ownerID)
	if err != nil {
		return 0, convertErr(err, "finding trip owner %d", tripID)
	}
	return ownerID, nil
}

func (t *TripRepository) CountByUserID(ctx context.Context, userID int64) (int, error) {
	var count int
	err := t.db.QueryRow(ctx, `SELECT COUNT(*) FROM trips WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting trips by user %d", userID)
	}
	return count, nil
}

func scanTrip(row rowScanner) (*domain.Trip, error) {
	var trip domain.Trip
	err := row.Scan(
		&trip.ID, &trip.CreatedAt, &trip.UserID, &trip.DepartureCity, &trip.Destination,
		&trip.ArrivalDate, &trip.ReturnDate, &trip.ColdContainers, &trip.HotContainers, &trip.Comments,
	)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func collectTrips(rows pgx.Rows) ([]domain.Trip, error) {
	defer rows.Close()
	trips := make([]domain.Trip, 0)
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *trip)
	}
	return trips, rows.Err()
}
