package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Forecast   Forecast   `mapstructure:",squash"`
	RollupSync RollupSync `mapstructure:",squash"`
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

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Forecast concentra as configurações do orquestrador de previsões e do
// cliente do modelo externo.
type Forecast struct {
	APIKey              string        `mapstructure:"forecast_api_key"`
	Model               string        `mapstructure:"forecast_model"`
	RequestTimeout      time.Duration `mapstructure:"forecast_request_timeout"`
	CooldownSeconds     int           `mapstructure:"forecast_cooldown_seconds"`
	MaxPeriods          int           `mapstructure:"forecast_max_periods"`
	MaxHistoricalMonths int           `mapstructure:"forecast_max_historical_months"`
}

// RollupSync configura o job que mantém a tabela fato de consolidação mensal
type RollupSync struct {
	CronSchedule  string `mapstructure:"rollup_sync_cron"`
	Enabled       bool   `mapstructure:"rollup_sync_enabled"`
	MonthLookBack int    `mapstructure:"rollup_sync_month_lookback"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/gestorpro")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("FORECAST_API_KEY", "")
	viper.SetDefault("FORECAST_MODEL", "gpt-4o")
	viper.SetDefault("FORECAST_REQUEST_TIMEOUT", "45s")
	viper.SetDefault("FORECAST_COOLDOWN_SECONDS", 10)
	viper.SetDefault("FORECAST_MAX_PERIODS", 12)
	viper.SetDefault("FORECAST_MAX_HISTORICAL_MONTHS", 24)

	// Defaults do job de consolidação mensal
	viper.SetDefault("ROLLUP_SYNC_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("ROLLUP_SYNC_ENABLED", false)
	viper.SetDefault("ROLLUP_SYNC_MONTH_LOOKBACK", 2)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o arquivo .env procurando nas localizações usuais
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
