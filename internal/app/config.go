package app

import (
	"github.com/pickwise/laptop-advisor-backend/internal/platform/envutil"
)

type Config struct {
	Port           string
	ServiceName    string
	Version        string
	RecommendLimit int
}

func LoadConfig() Config {
	return Config{
		Port:           envutil.String("PORT", "8080"),
		ServiceName:    envutil.String("SERVICE_NAME", "laptop-advisor-backend"),
		Version:        envutil.String("SERVICE_VERSION", "dev"),
		RecommendLimit: envutil.Int("RECOMMEND_LIMIT", 5),
	}
}
