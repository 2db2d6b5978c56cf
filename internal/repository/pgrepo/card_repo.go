package pgrepo

import (
	"context"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type CardRepository struct {
	db uow.DBTX
}

func NewCardRepository(db uow.DBTX) *CardRepository {
	return &CardRepository{db: db}
}

const cardColumns = `id, user_id, holder_name, masked_number, expiry_date, network, status`

func (c *CardRepository) CreateCard(ctx context.Context, args repoargs.CreateCard) (*domain.Card, error) {
	row := c.db.QueryRow(ctx, `
		INSERT INTO cards (user_id, holder_name, masked_number, expiry_date, network, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+cardColumns,
		args.UserID, args.HolderName, args.MaskedNumber, args.ExpiryDate, args.Network, domain.CardStatusActive,
	)
	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "creating card for user %d", args.UserID)
	}
	return card, nil
}

// GetByUserID returns every card of the user, active or not.
func (c *CardRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Card, error) {
	rows, err := c.db.Query(ctx, `SELECT `+cardColumns+` FROM cards WHERE user_id = $1`, userID)
	if err != nil {
		return nil, convertErr(err, "getting cards by user %d", userID)
	}
	cards, scanErr := collectCards(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting cards by user %d", userID)
	}
	return cards, nil
}

// GetActiveByUserID returns active cards only; the profile view uses it.
func (c *CardRepository) GetActiveByUserID(ctx context.Context, userID int64) ([]domain.Card, error) {
	rows, err := c.db.Query(ctx, `
		SELECT `+cardColumns+` FROM cards WHERE user_id = $1 AND status = $2`,
		userID, domain.CardStatusActive)
	if err != nil {
		return nil, convertErr(err, "getting active cards by user %d", userID)
	}
	cards, scanErr := collectCards(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting active cards by user %d", userID)
	}
	return cards, nil
}

// FindActiveByIDAndUserID returns domain.ErrRecordNotFound unless an active
// card with the id belongs to the user.
func (c *CardRepository) FindActiveByIDAndUserID(ctx context.Context, cardID, userID int64) (*domain.Card, error) {
	row := c.db.QueryRow(ctx, `
		SELECT `+cardColumns+` FROM cards WHERE id = $1 AND user_id = $2 AND status = $3`,
		cardID, userID, domain.CardStatusActive)
	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "finding active card %d for user %d", cardID, userID)
	}
	return card, nil
}

func (c *CardRepository) Deactivate(ctx context.Context, cardID int64) error {
	tag, err := c.db.Exec(ctx, `UPDATE cards SET status = $1 WHERE id = $2`, domain.CardStatusInactive, cardID)
	if err != nil {
		return convertErr(err, "deactivating card %d", cardID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deactivating card %d", cardID)
	}
	return nil
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var card domain.Card
	err := row.Scan(
		&card.ID, &card.UserID, &card.HolderName, &card.MaskedNumber,
		&card.ExpiryDate, &card.Network, &card.Status,
	)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func collectCards(rows pgx.Rows) ([]domain.Card, error) {
	defer rows.Close()
	cards := make([]domain.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}
