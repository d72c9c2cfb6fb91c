package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	TransportTCP  = "tcp"
	TransportHTTP = "http"
)

// Viper keys. AutomaticEnv maps each of them to its upper-case environment variable.
const (
	KeyDatabaseURL    = "database_url"
	KeyDBPool         = "db_pool"
	KeyDBMaxConns     = "db_max_conns"
	KeyRunAddress     = "run_address"
	KeyTransport      = "transport"
	KeyReadBufferSize = "read_buffer_size"
	KeyEnv            = "app_env"
	KeyLogFile        = "log_file"
)

const (
	DefaultDatabaseURL    = "postgres://postgres:postgres@db:5432/postgres"
	DefaultRunAddress     = "0.0.0.0:8080"
	DefaultReadBufferSize = 1024
	DefaultMaxConns       = 4
)

type Config struct {
	Env    string
	DB     db
	Server server
	Logger logger
}

type db struct {
	DatabaseURL string `env:"DATABASE_URL"`
	Pool        bool   `env:"DB_POOL"`
	MaxConns    int32  `env:"DB_MAX_CONNS"`
}

type server struct {
	RunAddress     string `env:"RUN_ADDRESS"`
	Transport      string `env:"TRANSPORT"`
	ReadBufferSize int    `env:"READ_BUFFER_SIZE"`
}

type logger struct {
	File string `env:"LOG_FILE"`
}

func init() {
	SetDefaults(viper.GetViper())
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabaseURL, DefaultDatabaseURL)
	v.SetDefault(KeyDBPool, false)
	v.SetDefault(KeyDBMaxConns, DefaultMaxConns)
	v.SetDefault(KeyRunAddress, DefaultRunAddress)
	v.SetDefault(KeyTransport, TransportTCP)
	v.SetDefault(KeyReadBufferSize, DefaultReadBufferSize)
	v.SetDefault(KeyEnv, EnvProd)
}

// MustLoad reads .env (when present) and the environment into a Config.
// Flags bound to the global viper take precedence over both.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	return FromViper(viper.GetViper())
}

// FromViper builds a Config from v, clamping values that would make the server unusable.
func FromViper(v *viper.Viper) *Config {
	cfg := Config{
		Env: strings.ToLower(v.GetString(KeyEnv)),
		DB: db{
			DatabaseURL: v.GetString(KeyDatabaseURL),
			Pool:        v.GetBool(KeyDBPool),
			MaxConns:    v.GetInt32(KeyDBMaxConns),
		},
		Server: server{
			RunAddress:     v.GetString(KeyRunAddress),
			Transport:      strings.ToLower(v.GetString(KeyTransport)),
			ReadBufferSize: v.GetInt(KeyReadBufferSize),
		},
		Logger: logger{File: v.GetString(KeyLogFile)},
	}

	if cfg.DB.DatabaseURL == "" {
		cfg.DB.DatabaseURL = DefaultDatabaseURL
	}
	if cfg.DB.MaxConns <= 0 {
		cfg.DB.MaxConns = DefaultMaxConns
	}
	if cfg.Server.ReadBufferSize <= 0 {
		cfg.Server.ReadBufferSize = DefaultReadBufferSize
	}
	if cfg.Server.Transport != TransportHTTP {
		cfg.Server.Transport = TransportTCP
	}

	return &cfg
}
