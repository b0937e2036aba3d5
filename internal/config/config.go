package config

import (
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Tables     Tables     `mapstructure:",squash"`
	Query      Query      `mapstructure:",squash"`
	Cors       Cors       `mapstructure:",squash"`
	StoreProbe StoreProbe `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN                string        `mapstructure:"-"`
	Driver             string        `mapstructure:"database_driver"`
	Host               string        `mapstructure:"database_host"`
	Name               string        `mapstructure:"database_name"`
	User               string        `mapstructure:"database_user"`
	Password           string        `mapstructure:"database_password"`
	SSLMode            string        `mapstructure:"database_sslmode"`
	ConnectTimeout     time.Duration `mapstructure:"database_connect_timeout"`
	StatementTimeoutMS int           `mapstructure:"database_statement_timeout_ms"`
	MaxOpenConns       int           `mapstructure:"database_max_open_conns"`
}

// Tables nomeia as duas tabelas consultadas pelo gateway
type Tables struct {
	Brands       string `mapstructure:"brands_table"`
	Transactions string `mapstructure:"transactions_table"`
}

// Query limita o tamanho dos resultados devolvidos por requisição
type Query struct {
	DefaultLimit int `mapstructure:"query_default_limit"`
	MinLimit     int `mapstructure:"query_min_limit"`
	MaxLimit     int `mapstructure:"query_max_limit"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type StoreProbe struct {
	CronSchedule string `mapstructure:"store_probe_cron"`
	Enabled      bool   `mapstructure:"store_probe_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "5000")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_HOST", "localhost:5432")
	viper.SetDefault("DATABASE_NAME", "brands")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_CONNECT_TIMEOUT", "30s")
	viper.SetDefault("DATABASE_STATEMENT_TIMEOUT_MS", 0) // 0 = usa o padrão do servidor
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("BRANDS_TABLE", "brand_details")
	viper.SetDefault("TRANSACTIONS_TABLE", "brand_transactions")

	viper.SetDefault("QUERY_DEFAULT_LIMIT", 10)
	viper.SetDefault("QUERY_MIN_LIMIT", 1)
	viper.SetDefault("QUERY_MAX_LIMIT", 1000)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("STORE_PROBE_CRON", "* * * * *") // A cada minuto
	viper.SetDefault("STORE_PROBE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN, err = BuildDSN(config.Database)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita configurações que deixariam o gateway em estado inconsistente.
// Os nomes de tabela entram no texto SQL, por isso só aceitamos identificadores simples.
func (c *Config) Validate() error {
	for _, table := range []string{c.Tables.Brands, c.Tables.Transactions} {
		if !identifierPattern.MatchString(table) {
			return fmt.Errorf("config: invalid table name %q", table)
		}
	}

	if c.Query.MinLimit < 1 || c.Query.MaxLimit < c.Query.MinLimit {
		return fmt.Errorf("config: invalid limit range [%d, %d]", c.Query.MinLimit, c.Query.MaxLimit)
	}

	if c.Query.DefaultLimit < c.Query.MinLimit || c.Query.DefaultLimit > c.Query.MaxLimit {
		return fmt.Errorf("config: default limit %d outside [%d, %d]", c.Query.DefaultLimit, c.Query.MinLimit, c.Query.MaxLimit)
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("config: unsupported database driver %q", c.Database.Driver)
	}

	return nil
}

// BuildDSN monta a string de conexão para o driver configurado
func BuildDSN(db Database) (string, error) {
	switch db.Driver {
	case DriverSQLite:
		return db.Name, nil
	case DriverPostgres:
		query := url.Values{}
		if db.SSLMode != "" {
			query.Set("sslmode", db.SSLMode)
		}
		if db.ConnectTimeout > 0 {
			query.Set("connect_timeout", strconv.Itoa(connectTimeoutSeconds(db.ConnectTimeout)))
		}
		if db.StatementTimeoutMS > 0 {
			query.Set("statement_timeout", strconv.Itoa(db.StatementTimeoutMS))
		}

		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(db.User, db.Password),
			Host:     db.Host,
			Path:     "/" + db.Name,
			RawQuery: query.Encode(),
		}
		return dsn.String(), nil
	default:
		return "", fmt.Errorf("config: unsupported database driver %q", db.Driver)
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
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}

// connectTimeoutSeconds arredonda para cima: lib/pq só aceita segundos inteiros
// e 0 significaria esperar para sempre
func connectTimeoutSeconds(timeout time.Duration) int {
	return int(math.Ceil(timeout.Seconds()))
}
