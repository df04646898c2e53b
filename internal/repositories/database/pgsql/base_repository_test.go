package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
)

// rollbackTx stubs out pgx.Tx with a scripted Rollback result. Only Rollback
// is implemented; the embedded interface covers the rest.
type rollbackTx struct {
	pgx.Tx
	rollbackErr error
}

func (t *rollbackTx) Rollback(ctx context.Context) error {
	return t.rollbackErr
}

func TestRollback_ClosedTxIsNotAnError(t *testing.T) {
	r := &BaseRepository{}

	// The deferred rollback after a successful commit lands here.
	err := r.Rollback(context.Background(), &rollbackTx{rollbackErr: pgx.ErrTxClosed})

	assert.NoError(t, err)
}

func TestRollback_RealFailureIsReported(t *testing.T) {
	r := &BaseRepository{}
	cause := errors.New("connection reset")

	err := r.Rollback(context.Background(), &rollbackTx{rollbackErr: cause})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.ErrorIs(t, err, cause)
}

func TestRollback_NoopOnCleanRollback(t *testing.T) {
	r := &BaseRepository{}

	err := r.Rollback(context.Background(), &rollbackTx{})

	assert.NoError(t, err)
}
