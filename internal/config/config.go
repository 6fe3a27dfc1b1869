package config

import (
	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	MongoURI       string
	MongoDatabase  string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	FrontendOrigin string
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DATABASE", "shophub")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("FRONTEND_ORIGIN", "http://localhost:3000")
	viper.AutomaticEnv()

	return &Config{
		ServerPort:     viper.GetString("SERVER_PORT"),
		MongoURI:       viper.GetString("MONGODB_URI"),
		MongoDatabase:  viper.GetString("MONGODB_DATABASE"),
		RedisAddr:      viper.GetString("REDIS_ADDR"),
		RedisDB:        viper.GetInt("REDIS_DB"),
		RedisPass:      viper.GetString("REDIS_PASSWORD"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		FrontendOrigin: viper.GetString("FRONTEND_ORIGIN"),
		SwaggerHost:    viper.GetString("SWAGGER_HOST"),
	}
}
