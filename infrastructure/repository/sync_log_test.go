package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/database/postgres"
	"github.com/vfg2006/linkedin-ads-center/internal/config"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func newSyncLogRepository(t *testing.T) (SyncLogRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{Sync: config.Sync{FreshnessTTLMinutes: 240}}

	return NewSyncLogRepository(postgres.NewConnectionFromDB(db), cfg), mock
}

func syncLogColumns() []string {
	return []string{
		"id", "account_id", "started_at", "finished_at", "status", "trigger",
		"campaigns_fetched", "creatives_fetched", "api_calls_made", "COALESCE(errors, '')",
	}
}

func TestShouldSync(t *testing.T) {
	t.Run("Deve liberar com force sem consultar o banco", func(t *testing.T) {
		repo, mock := newSyncLogRepository(t)

		should, reason, err := repo.ShouldSync(context.Background(), "all", true)

		require.NoError(t, err)
		assert.True(t, should)
		assert.Equal(t, "force=True", reason)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Deve liberar quando nunca houve sincronização com sucesso", func(t *testing.T) {
		repo, mock := newSyncLogRepository(t)

		mock.ExpectQuery("SELECT (.+) FROM sync_log").
			WithArgs("all", string(domain.SyncStatusSuccess)).
			WillReturnRows(sqlmock.NewRows(syncLogColumns()))

		should, reason, err := repo.ShouldSync(context.Background(), "all", false)

		require.NoError(t, err)
		assert.True(t, should)
		assert.Equal(t, "no previous successful sync", reason)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Deve barrar quando a última sincronização está dentro do TTL", func(t *testing.T) {
		repo, mock := newSyncLogRepository(t)

		finished := time.Now().Add(-30 * time.Minute)
		mock.ExpectQuery("SELECT (.+) FROM sync_log").
			WithArgs("all", string(domain.SyncStatusSuccess)).
			WillReturnRows(sqlmock.NewRows(syncLogColumns()).
				AddRow(int64(1), "all", finished.Add(-time.Minute), finished, "success", "manual", 10, 20, 30, ""))

		should, reason, err := repo.ShouldSync(context.Background(), "all", false)

		require.NoError(t, err)
		assert.False(t, should)
		assert.Contains(t, reason, "fresh (")
		assert.Contains(t, reason, "ttl=240m")
	})

	t.Run("Deve liberar quando a última sincronização passou do TTL", func(t *testing.T) {
		repo, mock := newSyncLogRepository(t)

		finished := time.Now().Add(-300 * time.Minute)
		mock.ExpectQuery("SELECT (.+) FROM sync_log").
			WithArgs("all", string(domain.SyncStatusSuccess)).
			WillReturnRows(sqlmock.NewRows(syncLogColumns()).
				AddRow(int64(1), "all", finished.Add(-time.Minute), finished, "success", "scheduler", 10, 20, 30, ""))

		should, reason, err := repo.ShouldSync(context.Background(), "all", false)

		require.NoError(t, err)
		assert.True(t, should)
		assert.Contains(t, reason, "last sync 300m ago")
	})
}

func TestStartSync(t *testing.T) {
	repo, mock := newSyncLogRepository(t)

	mock.ExpectQuery("INSERT INTO sync_log").
		WithArgs("all", string(domain.SyncStatusRunning), "scheduler").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	runID, err := repo.StartSync(context.Background(), "all", "scheduler")

	require.NoError(t, err)
	assert.Equal(t, int64(42), runID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinishSync(t *testing.T) {
	t.Run("Deve gravar status e estatísticas", func(t *testing.T) {
		repo, mock := newSyncLogRepository(t)

		mock.ExpectExec("UPDATE sync_log").
			WithArgs(string(domain.SyncStatusSuccess), 12, 34, 56, nil, int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.FinishSync(context.Background(), 42, domain.SyncStatusSuccess, domain.SyncStats{
			CampaignsFetched: 12,
			CreativesFetched: 34,
			APICallsMade:     56,
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Deve gravar a mensagem de erro quando a sincronização falha", func(t *testing.T) {
		repo, mock := newSyncLogRepository(t)

		mock.ExpectExec("UPDATE sync_log").
			WithArgs(string(domain.SyncStatusFailed), 0, 0, 3, "falha ao buscar contas de anúncio", int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.FinishSync(context.Background(), 7, domain.SyncStatusFailed, domain.SyncStats{
			APICallsMade: 3,
			Errors:       "falha ao buscar contas de anúncio",
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListRecent(t *testing.T) {
	repo, mock := newSyncLogRepository(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM sync_log").
		WillReturnRows(sqlmock.NewRows(syncLogColumns()).
			AddRow(int64(2), "all", now, now, "success", "api", 5, 8, 13, "").
			AddRow(int64(1), "all", now.Add(-time.Hour), now.Add(-time.Hour), "failed", "manual", 0, 0, 1, "timeout"))

	entries, err := repo.ListRecent(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.SyncStatus("success"), entries[0].Status)
	assert.Equal(t, "timeout", entries[1].Errors)
}
