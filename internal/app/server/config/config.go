package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress  = ":8080"
	defaultDataDir     = "root/database"
	defaultKeysDir     = "root/keys"
	defaultLockTimeout = 5 * time.Second

	// Development fallbacks only; deployments set API_KEY and RSA_PASSPHRASE.
	defaultAPIKey     = "dev-api-key"
	defaultPassphrase = "dev-passphrase"
)

type Config struct {
	Env     string
	Server  server
	Auth    auth
	Storage storage
	Crypto  crypto
	Logger  logger
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type auth struct {
	APIKey string `env:"API_KEY"`
}

type storage struct {
	DataDir     string        `env:"DATA_DIR"`
	LockTimeout time.Duration `env:"LOCK_TIMEOUT"`
}

type crypto struct {
	KeysDir    string `env:"KEYS_DIR"`
	Passphrase string `env:"RSA_PASSPHRASE"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	conf := Config{
		Env: viper.GetString("app_env"),
		Server: server{
			RunAddress: viper.GetString("run_address"),
		},
		Auth: auth{
			APIKey: viper.GetString("api_key"),
		},
		Storage: storage{
			DataDir:     viper.GetString("data_dir"),
			LockTimeout: viper.GetDuration("lock_timeout"),
		},
		Crypto: crypto{
			KeysDir:    viper.GetString("keys_dir"),
			Passphrase: viper.GetString("rsa_passphrase"),
		},
		Logger: logger{
			LogLevel: viper.GetString("log_level"),
		},
	}

	if conf.Server.RunAddress == "" {
		conf.Server.RunAddress = defaultRunAddress
	}
	if conf.Auth.APIKey == "" {
		conf.Auth.APIKey = defaultAPIKey
	}
	if conf.Storage.DataDir == "" {
		conf.Storage.DataDir = defaultDataDir
	}
	if conf.Storage.LockTimeout <= 0 {
		conf.Storage.LockTimeout = defaultLockTimeout
	}
	if conf.Crypto.KeysDir == "" {
		conf.Crypto.KeysDir = defaultKeysDir
	}
	if conf.Crypto.Passphrase == "" {
		conf.Crypto.Passphrase = defaultPassphrase
	}

	return &conf
}
