package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/database/postgres"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/auth"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/linkedinclient"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/migration"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/repository"
	"github.com/vfg2006/linkedin-ads-center/internal/config"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/assembling"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/reporting"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/syncing"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/validating"
	"github.com/vfg2006/linkedin-ads-center/pkg/utils"
)

const usage = `Uso: cli <comando> [opções]

Comandos:
  authenticate   Executa o fluxo de autorização do LinkedIn
  sync           Executa uma sincronização completa (use -force para ignorar o TTL)
  status         Mostra a saúde do token, contagem das tabelas e últimas sincronizações
  report         Mostra relatórios do que está persistido (-audit, -demographics, -limit)
`

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "authenticate":
		runAuthenticate(ctx, cfg)
	case "sync":
		runSync(ctx, cfg, os.Args[2:])
	case "status":
		runStatus(ctx, cfg)
	case "report":
		runReport(ctx, cfg, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

// runAuthenticate imprime a URL de autorização e troca o código colado
// pelo operador por tokens persistidos em disco.
func runAuthenticate(ctx context.Context, cfg *config.Config) {
	manager := auth.NewManager(cfg)

	fmt.Println("Abra a URL abaixo no navegador e autorize a aplicação:")
	fmt.Println()
	fmt.Println("  " + manager.AuthorizationURL())
	fmt.Println()
	fmt.Print("Cole aqui o parâmetro 'code' da URL de retorno: ")

	reader := bufio.NewReader(os.Stdin)
	code, err := reader.ReadString('\n')
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler o código de autorização")
	}
	code = strings.TrimSpace(code)

	if code == "" {
		logrus.Fatal("Código de autorização vazio")
	}

	if err := manager.ExchangeCode(ctx, code); err != nil {
		logrus.WithError(err).Fatal("Erro ao trocar o código de autorização")
	}

	printJSON(manager.Status())
	logrus.Info("Autenticado com sucesso; tokens salvos em ", cfg.LinkedIn.TokensFile)
}

func runSync(ctx context.Context, cfg *config.Config, args []string) {
	flags := flag.NewFlagSet("sync", flag.ExitOnError)
	force := flags.Bool("force", false, "ignora o TTL de frescor e sincroniza mesmo assim")
	strict := flags.Bool("strict", false, "valida custos de forma estrita, descartando valores não numéricos")
	_ = flags.Parse(args)

	conn := pgconn(ctx, cfg)
	defer conn.Close()

	manager := auth.NewManager(cfg)
	client := linkedinclient.NewClient(cfg, manager)
	assembler := assembling.NewService(validating.New(*strict))

	syncService := syncing.NewService(
		cfg,
		manager,
		client,
		assembler,
		repository.NewSnapshotRepository(conn),
		repository.NewSyncLogRepository(conn, cfg),
		syncing.NewJobStore(),
	)

	result, err := syncService.Run(ctx, syncing.Options{Force: *force, Trigger: "manual"})
	if err != nil {
		logrus.WithError(err).Fatal("Sincronização falhou")
	}

	printJSON(result)
}

func runStatus(ctx context.Context, cfg *config.Config) {
	conn := pgconn(ctx, cfg)
	defer conn.Close()

	manager := auth.NewManager(cfg)
	service := reporting.NewService(
		manager,
		repository.NewReportRepository(conn),
		repository.NewSyncLogRepository(conn, cfg),
	)

	report, err := service.Status(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar relatório de status")
	}

	printJSON(report)
}

func runReport(ctx context.Context, cfg *config.Config, args []string) {
	flags := flag.NewFlagSet("report", flag.ExitOnError)
	audit := flags.Bool("audit", false, "audita configurações das campanhas ativas")
	creatives := flags.Bool("creatives", false, "performance por criativo em vez de por campanha")
	visual := flags.Bool("visual", false, "série temporal, comparação de campanhas e KPIs globais")
	demographics := flags.Int64("demographics", 0, "lista a demografia persistida da conta informada")
	pivot := flags.String("pivot", "seniority", "recorte demográfico (seniority, job_title, industry, ...)")
	limit := flags.Uint64("limit", 20, "máximo de linhas no relatório de performance")
	_ = flags.Parse(args)

	conn := pgconn(ctx, cfg)
	defer conn.Close()

	manager := auth.NewManager(cfg)
	service := reporting.NewService(
		manager,
		repository.NewReportRepository(conn),
		repository.NewSyncLogRepository(conn, cfg),
	)

	switch {
	case *audit:
		entries, err := service.CampaignAudit(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao auditar campanhas")
		}
		printJSON(entries)
	case *creatives:
		rows, err := service.CreativePerformance(ctx, *limit)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao consultar performance de criativos")
		}
		printJSON(rows)
	case *visual:
		report, err := service.Visual(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao montar relatório visual")
		}
		printJSON(report)
	case *demographics != 0:
		segments, err := service.Demographics(ctx, *demographics, *pivot)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao consultar demografia")
		}
		printJSON(segments)
	default:
		rows, err := service.CampaignPerformance(ctx, *limit)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao consultar performance de campanhas")
		}
		printJSON(rows)
	}
}

func printJSON(payload any) {
	out, err := utils.Json.MarshalIndent(payload, "", "  ")
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao codificar saída")
	}
	fmt.Println(string(out))
}

func pgconn(ctx context.Context, cfg *config.Config) *postgres.Connection {
	if err := migration.RunMigrations(cfg.Database.DSN); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migrações do banco de dados")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	return conn
}
