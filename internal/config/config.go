package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	AI             AI             `mapstructure:",squash"`
	Storage        Storage        `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Jobs           Jobs           `mapstructure:",squash"`
	InsightRefresh InsightRefresh `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	Forecast       Forecast       `mapstructure:",squash"`
	Automation     Automation     `mapstructure:",squash"`
}

type App struct {
	Name     string `mapstructure:"app_name"`
	Version  string `mapstructure:"app_version"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

// Enabled indica se há banco configurado; sem banco a API responde com dados de demonstração
func (d Database) Enabled() bool {
	return d.URL != ""
}

type AI struct {
	Provider         string        `mapstructure:"ai_provider"`
	OpenAIAPIKey     string        `mapstructure:"openai_api_key"`
	OpenAIModel      string        `mapstructure:"openai_model"`
	OpenAIBaseURL    string        `mapstructure:"openai_base_url"`
	AnthropicAPIKey  string        `mapstructure:"anthropic_api_key"`
	AnthropicModel   string        `mapstructure:"anthropic_model"`
	RequestTimeout   time.Duration `mapstructure:"ai_request_timeout"`
	DefaultMaxTokens int           `mapstructure:"ai_default_max_tokens"`
}

type Storage struct {
	S3Endpoint        string `mapstructure:"s3_endpoint"`
	S3Region          string `mapstructure:"s3_region"`
	S3Bucket          string `mapstructure:"s3_bucket"`
	S3AccessKeyID     string `mapstructure:"s3_access_key_id"`
	S3SecretAccessKey string `mapstructure:"s3_secret_access_key"`
	S3PublicURL       string `mapstructure:"s3_public_url"`
	LocalDir          string `mapstructure:"upload_dir"`
	MaxUploadMB       int64  `mapstructure:"max_upload_mb"`
}

// S3Enabled indica se o armazenamento de objetos está configurado
func (s Storage) S3Enabled() bool {
	return s.S3Bucket != "" && s.S3AccessKeyID != ""
}

type Redis struct {
	URL    string        `mapstructure:"redis_url"`
	JobTTL time.Duration `mapstructure:"job_ttl"`
}

type Jobs struct {
	Workers   int `mapstructure:"job_workers"`
	QueueSize int `mapstructure:"job_queue_size"`
}

type InsightRefresh struct {
	CronSchedule string `mapstructure:"insight_refresh_cron"`
	Enabled      bool   `mapstructure:"insight_refresh_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Automation aponta para a instância do n8n; sem URL os workflows são estáticos
type Automation struct {
	N8NBaseURL     string        `mapstructure:"n8n_base_url"`
	N8NAPIKey      string        `mapstructure:"n8n_api_key"`
	N8NWebhookURL  string        `mapstructure:"n8n_webhook_url"`
	RequestTimeout time.Duration `mapstructure:"n8n_request_timeout"`
}

func (a Automation) Enabled() bool {
	return a.N8NBaseURL != ""
}

type Forecast struct {
	CurrentCashBalance float64 `mapstructure:"current_cash_balance"`
}

func SetDefaults() {
	viper.SetDefault("APP_NAME", "AI Business System")
	viper.SetDefault("APP_VERSION", "1.0.0")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	// Sem DATABASE_URL a API usa os dados de demonstração
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("AI_PROVIDER", "openai") // openai ou anthropic
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022")
	viper.SetDefault("AI_REQUEST_TIMEOUT", "60s")
	viper.SetDefault("AI_DEFAULT_MAX_TOKENS", 500)

	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("S3_ACCESS_KEY_ID", "")
	viper.SetDefault("S3_SECRET_ACCESS_KEY", "")
	viper.SetDefault("S3_PUBLIC_URL", "")
	viper.SetDefault("UPLOAD_DIR", "./uploads") // Usado quando o S3 não está configurado
	viper.SetDefault("MAX_UPLOAD_MB", 50)

	viper.SetDefault("REDIS_URL", "") // Sem Redis os jobs ficam em memória
	viper.SetDefault("JOB_TTL", "24h")

	viper.SetDefault("JOB_WORKERS", 2)
	viper.SetDefault("JOB_QUEUE_SIZE", 100)

	viper.SetDefault("INSIGHT_REFRESH_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("INSIGHT_REFRESH_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")

	viper.SetDefault("CURRENT_CASH_BALANCE", 50000) // Saldo usado no cálculo de runway

	viper.SetDefault("N8N_BASE_URL", "")
	viper.SetDefault("N8N_API_KEY", "")
	viper.SetDefault("N8N_WEBHOOK_URL", "https://n8n.your-domain.com/webhook")
	viper.SetDefault("N8N_REQUEST_TIMEOUT", "30s")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = buildDSN(config.Database)

	for i, origin := range config.Cors.AllowedOrigins {
		config.Cors.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	if config.Jobs.Workers < 1 {
		config.Jobs.Workers = 1
	}

	return config, nil
}

// buildDSN aceita DATABASE_URL completa (postgres://...) ou no formato host:porta/base
func buildDSN(db Database) string {
	if db.URL == "" {
		return ""
	}
	if strings.Contains(db.URL, "://") {
		return db.URL
	}

	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
