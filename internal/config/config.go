package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Storage    Storage
	Database   Database
	Auth       Auth
	CORS       CORS
	Prometheus Prometheus
	Redis      Redis
}

type HTTPServer struct {
	Address string
	Port    int
}

type Storage struct {
	// Backend selects the persistence layer: "postgres" or "memory".
	Backend string
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

type Auth struct {
	// JWTSecret verifies the HS256 bearer tokens issued by the auth service.
	JWTSecret string
}

type CORS struct {
	AllowedOrigin string
}

type Prometheus struct {
	Address string
	Port    int
}

type Redis struct {
	Enabled  bool
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)

	viper.SetDefault("storage.backend", "postgres")

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "post-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "skillshare")
	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("auth.jwt_secret", "")

	viper.SetDefault("cors.allowed_origin", "http://localhost:5173")

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9103)

	viper.SetDefault("redis.enabled", true)
	viper.SetDefault("redis.address", "redis")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address: viper.GetString("http_server.address"),
			Port:    viper.GetInt("http_server.port"),
		},
		Storage: Storage{
			Backend: viper.GetString("storage.backend"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		Auth: Auth{
			JWTSecret: viper.GetString("auth.jwt_secret"),
		},
		CORS: CORS{
			AllowedOrigin: viper.GetString("cors.allowed_origin"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
		Redis: Redis{
			Enabled:  viper.GetBool("redis.enabled"),
			Address:  viper.GetString("redis.address"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			PoolSize: viper.GetInt("redis.pool_size"),
		},
	}

	return config
}
