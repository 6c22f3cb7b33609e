package infra

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"wanderbook/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
)

// RepositoryError classifies persistence failures so the usecase layer can
// map them to domain errors without inspecting driver internals.
type RepositoryError struct {
	Kind RepositoryErrorKind
	Err  error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository error (%s): %v", e.Kind, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// WrapRepoErr wraps err as a RepositoryError, classifying well-known pgx
// error codes. Explicit kinds override the automatic classification.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	if err == nil {
		return nil
	}

	kind := classify(err)
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	return errs.Wrap(&RepositoryError{Kind: kind, Err: err}, msg)
}

func classify(err error) RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return KindDuplicateKey
		case pgErr.Code == "23503":
			return KindForeignKeyViolated
		case strings.HasPrefix(pgErr.Code, "40"):
			return KindConflict
		}
	}
	return KindDBFailure
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return repoErr.Kind == kind
	}
	return false
}
