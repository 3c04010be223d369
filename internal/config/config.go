package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/linkedin-ads-center/internal/domain"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	LinkedIn LinkedIn `mapstructure:",squash"`
	Sync     Sync     `mapstructure:",squash"`
	Snapshot Snapshot `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type LinkedIn struct {
	APIBaseURL   string `mapstructure:"linkedin_api_base_url"`
	APIVersion   string `mapstructure:"linkedin_api_version"`
	OAuthBaseURL string `mapstructure:"linkedin_oauth_base_url"`
	ClientID     string `mapstructure:"linkedin_client_id"`
	ClientSecret string `mapstructure:"linkedin_client_secret"`
	RedirectURI  string `mapstructure:"linkedin_redirect_uri"`
	OAuthState   string `mapstructure:"linkedin_oauth_state"`
	TokensFile   string `mapstructure:"linkedin_tokens_file"`
}

type Sync struct {
	FreshnessTTLMinutes int    `mapstructure:"sync_freshness_ttl_minutes"`
	LookbackDays        int    `mapstructure:"sync_lookback_days"`
	MetricsBatchSize    int    `mapstructure:"sync_metrics_batch_size"`
	CronSchedule        string `mapstructure:"sync_cron"`
	Enabled             bool   `mapstructure:"sync_enabled"`
}

type Snapshot struct {
	Dir string `mapstructure:"snapshot_dir"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/linkedin_ads?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("LINKEDIN_API_BASE_URL", "https://api.linkedin.com/rest")
	viper.SetDefault("LINKEDIN_API_VERSION", "202602")
	viper.SetDefault("LINKEDIN_OAUTH_BASE_URL", "https://www.linkedin.com/oauth/v2")
	viper.SetDefault("LINKEDIN_CLIENT_ID", "")
	viper.SetDefault("LINKEDIN_CLIENT_SECRET", "")
	viper.SetDefault("LINKEDIN_REDIRECT_URI", "http://localhost:8000/v1/auth/callback")
	viper.SetDefault("LINKEDIN_OAUTH_STATE", "supersecretstate")
	viper.SetDefault("LINKEDIN_TOKENS_FILE", "data/tokens.json")

	viper.SetDefault("SYNC_FRESHNESS_TTL_MINUTES", 240) // 4 horas entre sincronizações
	viper.SetDefault("SYNC_LOOKBACK_DAYS", 90)          // período de métricas buscado
	viper.SetDefault("SYNC_METRICS_BATCH_SIZE", 20)     // campanhas por chamada de analytics
	viper.SetDefault("SYNC_CRON", "0 3 * * *")          // todos os dias às 3h da manhã
	viper.SetDefault("SYNC_ENABLED", false)

	viper.SetDefault("SNAPSHOT_DIR", "data/snapshots")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Database.URL == "" {
		return nil, &domain.ConfigurationError{Key: "DATABASE_URL"}
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; seguindo apenas com variáveis de ambiente")
}
