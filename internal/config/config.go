package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	MongoURI string
	MongoDB  string

	RedisAddr string
	RedisPass string

	JWTSecret string

	GroqAPIKey  string
	GroqBaseURL string

	RazorpayKeyID     string
	RazorpayKeySecret string

	CloudinaryURL string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("artisan: No .env file found, relying on system env vars")
	}

	return Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8020"),

		MongoURI: getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:  getEnv("MONGO_DB", "artisan"),

		RedisAddr: getEnv("REDIS_ADDR", "redis:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		GroqAPIKey:  getEnv("GROQ_API_KEY", ""),
		GroqBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai"),

		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),

		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
