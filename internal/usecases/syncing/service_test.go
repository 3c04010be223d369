package syncing_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-center/internal/config"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/syncing"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/syncing/mocks"
	"github.com/vfg2006/linkedin-ads-center/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

type serviceMocks struct {
	auth      *mocks.MockAuthenticator
	gateway   *mocks.MockGateway
	assembler *mocks.MockAssembler
	persister *mocks.MockPersister
	syncLog   *mocks.MockSyncLogger
}

func newService(t *testing.T) (*syncing.Service, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		auth:      mocks.NewMockAuthenticator(ctrl),
		gateway:   mocks.NewMockGateway(ctrl),
		assembler: mocks.NewMockAssembler(ctrl),
		persister: mocks.NewMockPersister(ctrl),
		syncLog:   mocks.NewMockSyncLogger(ctrl),
	}

	cfg := &config.Config{
		Sync:     config.Sync{LookbackDays: 90, FreshnessTTLMinutes: 240},
		Snapshot: config.Snapshot{Dir: t.TempDir()},
	}

	service := syncing.NewService(cfg, m.auth, m.gateway, m.assembler, m.persister, m.syncLog, syncing.NewJobStore())

	return service, m
}

func TestRun(t *testing.T) {
	t.Run("Deve recusar sem autenticação", func(t *testing.T) {
		service, m := newService(t)
		m.auth.EXPECT().Authenticated().Return(false)

		result, err := service.Run(context.Background(), syncing.Options{})

		require.Error(t, err)
		assert.Nil(t, result)

		authErr := &domain.AuthenticationError{}
		assert.ErrorAs(t, err, &authErr)
	})

	t.Run("Deve dispensar quando o portão diz que os dados estão frescos", func(t *testing.T) {
		service, m := newService(t)
		m.auth.EXPECT().Authenticated().Return(true)
		m.syncLog.EXPECT().
			ShouldSync(gomock.Any(), syncing.GlobalScope, false).
			Return(false, "fresh (30m ago, ttl=240m)", nil)

		result, err := service.Run(context.Background(), syncing.Options{})

		require.NoError(t, err)
		assert.True(t, result.Skipped)
		assert.Equal(t, "fresh (30m ago, ttl=240m)", result.Reason)
	})

	t.Run("Deve rodar a pipeline completa e finalizar com sucesso", func(t *testing.T) {
		service, m := newService(t)

		m.auth.EXPECT().Authenticated().Return(true)
		m.syncLog.EXPECT().
			ShouldSync(gomock.Any(), syncing.GlobalScope, true).
			Return(true, "force=True", nil)
		m.syncLog.EXPECT().
			StartSync(gomock.Any(), syncing.GlobalScope, "api").
			Return(int64(42), nil)

		m.gateway.EXPECT().FetchAdAccounts(gomock.Any()).Return([]json.RawMessage{
			json.RawMessage(`{"id":101,"name":"Conta A","status":"ACTIVE"}`),
		}, nil)
		m.gateway.EXPECT().
			FetchCampaigns(gomock.Any(), int64(101), gomock.Nil()).
			Return([]json.RawMessage{json.RawMessage(`{"id":555,"name":"Prospecção Q3","status":"ACTIVE"}`)}, nil)
		m.gateway.EXPECT().
			FetchCreatives(gomock.Any(), int64(101), []int64{555}).
			Return([]json.RawMessage{json.RawMessage(`{"id":"urn:li:sponsoredCreative:901"}`)}, nil)
		m.gateway.EXPECT().
			FetchCampaignMetrics(gomock.Any(), []string{"555"}, gomock.Any(), gomock.Any()).
			Return(nil, nil)
		m.gateway.EXPECT().
			FetchCreativeMetrics(gomock.Any(), []string{"901"}, gomock.Any(), gomock.Any()).
			Return(nil, nil)
		m.gateway.EXPECT().
			FetchDemographics(gomock.Any(), int64(101), gomock.Any(), gomock.Any()).
			Return(map[string]linkedindomain.PivotResult{})
		m.gateway.EXPECT().CallCount().Return(9).AnyTimes()

		snapshot := &domain.Snapshot{Accounts: []*domain.Account{{ID: 101}}}
		m.assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).Return(snapshot, nil)
		m.persister.EXPECT().Persist(gomock.Any(), snapshot).Return(nil)

		m.syncLog.EXPECT().
			FinishSync(gomock.Any(), int64(42), domain.SyncStatusSuccess, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, _ domain.SyncStatus, stats domain.SyncStats) error {
				assert.Equal(t, 1, stats.CampaignsFetched)
				assert.Equal(t, 1, stats.CreativesFetched)
				assert.Equal(t, 9, stats.APICallsMade)
				return nil
			})

		result, err := service.Run(context.Background(), syncing.Options{Force: true, Trigger: "api"})

		require.NoError(t, err)
		assert.False(t, result.Skipped)
		assert.Equal(t, 1, result.AccountCount)
		assert.NotEmpty(t, result.SnapshotPath)
	})

	t.Run("Deve finalizar o sync_log como falho quando a busca quebra", func(t *testing.T) {
		service, m := newService(t)

		m.auth.EXPECT().Authenticated().Return(true)
		m.syncLog.EXPECT().
			ShouldSync(gomock.Any(), syncing.GlobalScope, false).
			Return(true, "no previous successful sync", nil)
		m.syncLog.EXPECT().
			StartSync(gomock.Any(), syncing.GlobalScope, "manual").
			Return(int64(7), nil)

		m.gateway.EXPECT().FetchAdAccounts(gomock.Any()).Return(nil, assert.AnError)
		m.gateway.EXPECT().CallCount().Return(1).AnyTimes()

		m.syncLog.EXPECT().
			FinishSync(gomock.Any(), int64(7), domain.SyncStatusFailed, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, _ domain.SyncStatus, stats domain.SyncStats) error {
				assert.NotEmpty(t, stats.Errors)
				return nil
			})

		result, err := service.Run(context.Background(), syncing.Options{})

		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRunAsync(t *testing.T) {
	t.Run("Deve registrar o desfecho do job", func(t *testing.T) {
		service, m := newService(t)

		m.auth.EXPECT().Authenticated().Return(false)

		job, err := service.RunAsync(context.Background(), syncing.Options{Trigger: "api"})
		require.NoError(t, err)
		require.NotEmpty(t, job.ID)

		assert.Eventually(t, func() bool {
			current, ok := service.Jobs().Get(job.ID)
			return ok && current.Status == syncing.JobStatusFailed
		}, time.Second, 10*time.Millisecond)
	})
}

func TestJobStore(t *testing.T) {
	store := syncing.NewJobStore()

	job, err := store.Create("scheduler")
	require.NoError(t, err)
	assert.Equal(t, syncing.JobStatusRunning, job.Status)

	store.Finish(job.ID, &syncing.Result{Skipped: true, Reason: "fresh"}, "")

	finished, ok := store.Get(job.ID)
	require.True(t, ok)
	assert.Equal(t, syncing.JobStatusSkipped, finished.Status)
	assert.NotNil(t, finished.FinishedAt)

	_, ok = store.Get("nao-existe")
	assert.False(t, ok)
}
