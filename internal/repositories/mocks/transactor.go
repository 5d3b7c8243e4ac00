package mocks

import (
	"context"
	"fmt"

	repository "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories"
)

// Transactor runs fn against a fixed set of repositories, standing in for a
// database transaction. A non-nil CommitErr is returned only when fn succeeds,
// wrapped the same way a failed commit is.
type Transactor struct {
	Repos     *repository.Repositories
	CommitErr error

	Commits   int
	Rollbacks int
}

func NewTransactor(repos *repository.Repositories) *Transactor {
	return &Transactor{Repos: repos}
}

func (t *Transactor) WithTx(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	if err := fn(t.Repos); err != nil {
		t.Rollbacks++
		return err
	}

	if t.CommitErr != nil {
		t.Rollbacks++
		return fmt.Errorf("%w: %w", repository.ErrCommitFailed, t.CommitErr)
	}

	t.Commits++

	return nil
}
