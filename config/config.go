package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

// Config holds every setting read from the environment
type Config struct {
	Env           string
	Port          string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	RedisAddr     string
	RedisUser     string
	RedisPassword string
	SecretKey     string
	TokenTTL      time.Duration
	CloudinaryURL string
	LockTTL       time.Duration
	LockWait      time.Duration
	RoomCacheTTL  time.Duration
	LogLevel      string
	LogDir        string
}

// LoadEnv loads .env when present
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env not loaded, using process environment: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("Warning: invalid duration %s=%q, using %s", key, v, def)
	return def
}

// Load reads the configuration from the environment
func Load() Config {
	return Config{
		Env:           getEnvDefault("ENV", "dev"),
		Port:          getEnvDefault("PORT", "8083"),
		DBHost:        getEnvDefault("DB_HOST", "localhost"),
		DBPort:        getEnvDefault("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getEnvDefault("DB_NAME", "casamia"),
		DBSSLMode:     getEnvDefault("DB_SSLMODE", "disable"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisUser:     os.Getenv("REDIS_USER"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SecretKey:     os.Getenv("SECRETORPRIVATEKEY"),
		TokenTTL:      getDuration("TOKEN_TTL", 72*time.Hour),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		LockTTL:       getDuration("LOCK_TTL", 10*time.Second),
		LockWait:      getDuration("LOCK_WAIT", 5*time.Second),
		RoomCacheTTL:  getDuration("ROOM_CACHE_TTL", 10*time.Minute),
		LogLevel:      getEnvDefault("LOG_LEVEL", "info"),
		LogDir:        os.Getenv("LOG_DIR"),
	}
}

// ConnectCloudinary returns nil when CLOUDINARY_URL is not set
func ConnectCloudinary(cfg Config) *cloudinary.Cloudinary {
	if cfg.CloudinaryURL == "" {
		log.Println("Warning: CLOUDINARY_URL not set, image upload disabled")
		return nil
	}
	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		log.Printf("Cloudinary init failed, image upload disabled: %v", err)
		return nil
	}
	return cld
}
