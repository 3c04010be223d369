package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/linkedin-ads-center/internal/config"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/syncing"
	"github.com/vfg2006/linkedin-ads-center/pkg/log"
)

// SyncScheduler agenda a sincronização noturna do LinkedIn. O portão
// de frescor do próprio sync ainda se aplica: disparos redundantes
// viram no-ops baratos.
type SyncScheduler struct {
	scheduler *gocron.Scheduler
	cfg       *config.Config
	syncer    *syncing.Service

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSyncScheduler(syncer *syncing.Service, cfg *config.Config) *SyncScheduler {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.Sync.CronSchedule,
		"lookback_days": cfg.Sync.LookbackDays,
		"sync_enabled":  cfg.Sync.Enabled,
	}).Info("Configuração do agendador de sincronização do LinkedIn carregada")

	return &SyncScheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		cfg:       cfg,
		syncer:    syncer,
	}
}

// Start agenda o job e põe o agendador para rodar. O agendador para
// junto com o contexto.
func (s *SyncScheduler) Start(ctx context.Context) error {
	if !s.cfg.Sync.Enabled {
		logrus.Info("Sincronização agendada do LinkedIn desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.Sync.CronSchedule).
		Info("Iniciando agendador de sincronização do LinkedIn")

	_, err := s.scheduler.Cron(s.cfg.Sync.CronSchedule).Do(func() {
		s.runScheduledSync()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a sincronização do LinkedIn: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do LinkedIn")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SyncScheduler) runScheduledSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do LinkedIn já em andamento, ignorando disparo")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, correlationID := log.WithCorrelationID(context.Background())
	logger := log.ForContext(ctx)

	logger.WithField("correlation_id", correlationID).
		Info("Iniciando sincronização agendada do LinkedIn")

	result, err := s.syncer.Run(ctx, syncing.Options{Trigger: "scheduler"})
	if err != nil {
		logger.WithError(err).Error("Sincronização agendada do LinkedIn falhou")
		return
	}

	if result.Skipped {
		logger.WithField("reason", result.Reason).
			Info("Sincronização agendada dispensada pelo portão de frescor")
		return
	}

	logger.WithFields(log.Fields{
		"duration": time.Since(startTime).String(),
		"accounts": result.AccountCount,
		"snapshot": result.SnapshotPath,
	}).Info("Sincronização agendada do LinkedIn concluída")

	s.lastSyncCompletedAt = time.Now()
}
