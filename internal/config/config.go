package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Variantes de build aceitas em BUILD_VARIANT
const (
	VariantDevelopment = "development"
	VariantProduction  = "production"
)

// Origens padrão da API de escalas quando API_URL não é informada
const (
	DevelopmentAPIURL = "http://localhost:8000"
	ProductionAPIURL  = "https://api.escala-estagiarios.mmendol.com"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	API       API       `mapstructure:",squash"`
	Session   Session   `mapstructure:",squash"`
	KeepAlive KeepAlive `mapstructure:",squash"`
}

type App struct {
	LogLevel     string `mapstructure:"log_level"`
	Env          string `mapstructure:"app_env"`
	BuildVariant string `mapstructure:"build_variant"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// API guarda a origem do backend. BaseURL é resolvida uma única vez em NewConfig.
type API struct {
	Override string `mapstructure:"api_url"`
	BaseURL  string `mapstructure:"-"`
}

type Session struct {
	Secret string `mapstructure:"session_secret"`
}

type KeepAlive struct {
	CronSchedule string `mapstructure:"keepalive_cron"`
	Enabled      bool   `mapstructure:"keepalive_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("BUILD_VARIANT", VariantProduction)

	viper.SetDefault("API_URL", "") // vazio usa o padrão da variante

	viper.SetDefault("SESSION_SECRET", "your_session_secret") // ONLY LOCAL

	viper.SetDefault("KEEPALIVE_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("KEEPALIVE_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
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

	config.App.BuildVariant = normalizeVariant(config.App.BuildVariant)
	config.API.BaseURL = ResolveAPIBaseURL(config.API.Override, config.App.BuildVariant)

	logrus.WithFields(logrus.Fields{
		"api_url":       config.API.BaseURL,
		"build_variant": config.App.BuildVariant,
		"overridden":    strings.TrimSpace(config.API.Override) != "",
	}).Info("Origem da API de escalas resolvida")

	return config, nil
}

// ResolveAPIBaseURL aplica a ordem de prioridade: override explícito, depois
// o padrão da variante de build.
func ResolveAPIBaseURL(override, variant string) string {
	if o := strings.TrimRight(strings.TrimSpace(override), "/"); o != "" {
		return o
	}

	if normalizeVariant(variant) == VariantDevelopment {
		return DevelopmentAPIURL
	}

	return ProductionAPIURL
}

func normalizeVariant(variant string) string {
	switch strings.ToLower(strings.TrimSpace(variant)) {
	case "development", "dev", "local":
		return VariantDevelopment
	default:
		return VariantProduction
	}
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
