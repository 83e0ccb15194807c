package registry

import "os"

type Config struct {
	RedisAddress  string
	RedisPassword string
	Namespace     string
	Port          string
	LogLevel      string
}

func GetConfig() Config {
	return Config{
		RedisAddress:  getEnv("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		Namespace:     getEnv("REGISTRY_NAMESPACE", "world"),
		Port:          getEnv("REGISTRY_PORT", "4040"),
		LogLevel:      getEnv("REGISTRY_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
