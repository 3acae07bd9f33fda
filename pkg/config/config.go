package config

import (
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	JWTSecret   string

	OllamaBaseURL     string
	OllamaModel       string
	OllamaTimeout     time.Duration
	OllamaTemperature float64
	OllamaNumPredict  int

	// MoodDayTimezone is the IANA zone used to truncate check-ins to a calendar day.
	MoodDayTimezone    string
	DailyQuestionCount int
	// QuestionCacheTTL bounds how long a day's selection is memoized. Zero disables it.
	QuestionCacheTTL   time.Duration
	MetricsEnabled     bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("APP_ENV", "development"),
		DatabaseURL:        getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=carecompanion port=5432 sslmode=disable"),
		JWTSecret:          getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:        getEnv("OLLAMA_MODEL", "llama3"),
		OllamaTimeout:      getDuration("OLLAMA_TIMEOUT", 180*time.Second), // llama3 on CPU can take minutes
		OllamaTemperature:  getFloat("OLLAMA_TEMPERATURE", 0.3),
		OllamaNumPredict:   getInt("OLLAMA_NUM_PREDICT", 300),
		MoodDayTimezone:    getEnv("MOOD_DAY_TIMEZONE", "Local"),
		DailyQuestionCount: getInt("DAILY_QUESTION_COUNT", 5),
		QuestionCacheTTL:   getDuration("QUESTION_CACHE_TTL", 10*time.Minute),
		MetricsEnabled:     getBool("METRICS_ENABLED", true),
	}
}

// DayLocation resolves MoodDayTimezone, falling back to the server zone.
func (c *Config) DayLocation() *time.Location {
	if c.MoodDayTimezone == "" || c.MoodDayTimezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.MoodDayTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
