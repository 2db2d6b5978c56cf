package pgrepo

import (
	"errors"
	"fmt"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode = "23505"
)

// errNoRowsAffected marks guarded updates that matched nothing; callers see it
// as domain.ErrRecordNotFound.
var errNoRowsAffected = errors.New("no rows affected")

// convertErr normalizes repository errors:
//   - pgx.ErrNoRows becomes domain.ErrRecordNotFound
//   - postgres unique violations become domain.ErrDuplicateKey
//   - everything else becomes domain.ErrUnknown with the original message
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, errNoRowsAffected) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		if isUniqueViolationErr(pgErr) {
			errType = domain.ErrDuplicateKey
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func isUniqueViolationErr(err *pgconn.PgError) bool {
	return err.Code == uniqueViolationCode
}
