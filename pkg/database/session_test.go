package database_test

import (
	"context"
	"errors"
	"testing"

	"recipe-catalog/domain"
	"recipe-catalog/internal/testutil"
	"recipe-catalog/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_CommitSkipsRollback(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	gw := database.NewGateway(db)
	sess, err := gw.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, sess.Commit())
	sess.Close()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_CloseRollsBackUncommitted(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	gw := database.NewGateway(db)
	sess, err := gw.Begin(context.Background())
	require.NoError(t, err)
	sess.Close()
	sess.Close()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_DoubleCommit(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	sess, err := database.NewGateway(db).Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, sess.Commit())

	assert.ErrorIs(t, sess.Commit(), database.ErrSessionClosed)
	assert.ErrorIs(t, sess.Rollback(), database.ErrSessionClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_CommitFailureIsStorageError(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	sess, err := database.NewGateway(db).Begin(context.Background())
	require.NoError(t, err)

	err = sess.Commit()
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	sess.Close()
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_BeginFailure(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectBegin().WillReturnError(errors.New("dial tcp: connection refused"))

	sess, err := database.NewGateway(db).Begin(context.Background())
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_Ping(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		wantErr bool
	}{
		{name: "reachable"},
		{name: "unreachable", pingErr: errors.New("connection refused"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := testutil.NewMockDB(t)
			mock.ExpectPing().WillReturnError(tt.pingErr)

			err := database.NewGateway(db).Ping(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
