package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/database/postgres"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/auth"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/migration"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/repository"
	"github.com/vfg2006/linkedin-ads-center/internal/api"
	"github.com/vfg2006/linkedin-ads-center/internal/config"
	"github.com/vfg2006/linkedin-ads-center/internal/scheduler"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/assembling"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/reporting"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/syncing"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/validating"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := migration.RunMigrations(cfg.Database.DSN); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migrações do banco de dados")
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	syncLogRepo := repository.NewSyncLogRepository(pgConn, cfg)
	reportRepo := repository.NewReportRepository(pgConn)

	authManager := auth.NewManager(cfg)
	go authManager.StartAutoRefresh()
	defer authManager.StopAutoRefresh()

	linkedInClient := linkedinclient.NewClient(cfg, authManager)

	validator := validating.New(false)
	assembler := assembling.NewService(validator)

	jobStore := syncing.NewJobStore()
	syncService := syncing.NewService(
		cfg,
		authManager,
		linkedInClient,
		assembler,
		snapshotRepo,
		syncLogRepo,
		jobStore,
	)

	reportService := reporting.NewService(authManager, reportRepo, syncLogRepo)

	syncScheduler := scheduler.NewSyncScheduler(syncService, cfg)
	if err := syncScheduler.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização")
	} else {
		logrus.Info("Agendador de sincronização iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authManager,
		syncService,
		reportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
