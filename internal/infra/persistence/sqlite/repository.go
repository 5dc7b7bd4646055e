package sqlite

import (
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/errors"
)

// notFoundAs replaces a generic miss with the entity's own sentinel.
func notFoundAs(err error, sentinel error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return sentinel
	}

	return err
}

// requireAffected turns a write that touched no row into sentinel.
func requireAffected(res Result, sentinel error) error {
	if res.RowsAffected == 0 {
		return sentinel
	}

	return nil
}

// likePattern wraps term for a substring LIKE match.
func likePattern(term string) string {
	return "%" + term + "%"
}
