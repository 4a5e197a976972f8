package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port            string
	ServiceName     string
	ServiceID       string
	ServiceAddress  string
	ConsulAddress   string
	MongoURI        string
	MongoDatabase   string
	RedisURI        string
	RabbitURI       string
	JWTSecret       string
	JWTExpiredHours int64
	FEAddress       string
}

func New() *Config {
	jwtExpiredStr := getEnv("TOKEN_EXPIRY_TIME", "24")
	jwtExpired, _ := strconv.Atoi(jwtExpiredStr)

	return &Config{
		Port:            getEnv("PORT", "9200"),
		ServiceName:     getEnv("LAB_SERVICE_NAME", "lab-access-service"),
		ServiceID:       getEnv("LAB_SERVICE_NAME", "lab-access-service") + "-" + getEnv("LAB_HOSTNAME", "1"),
		ServiceAddress:  getEnv("LAB_SERVICE_ADDRESS", "lab-access-service"),
		ConsulAddress:   getEnv("CONSUL_ADDRESS", "consul-server:8500"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDatabase:   getEnv("MONGO_DATABASE", "lab_access"),
		RedisURI:        getEnv("REDIS_URI", ""),
		RabbitURI:       getEnv("RABBITMQ_URI", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTExpiredHours: int64(jwtExpired),
		FEAddress:       getEnv("FE_ADDR", "http://localhost:3000"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("ENV %s not set, using default %q", key, fallback)
	return fallback
}
