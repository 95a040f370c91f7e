package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"strings"
	"time"

	"restaurant-recommender/logging"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	PolicyMockOnFailure = "mock-on-failure"
	PolicyAlwaysMock    = "always-mock"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type WebConfig struct {
	Addr           string
	PredictURL     string
	PredictTimeout time.Duration
	FallbackPolicy string
	CacheBackend   string
	SessionTTL     time.Duration
	SessionSweep   time.Duration
	PublicURL      string
	EventsTopic    string
	AllowedOrigins []string
	Mail           MailConfig
}

type MailConfig struct {
	APIURL      string
	ServiceID   string
	TemplateID  string
	PublicKey   string
	AccessToken string
	ReloadAfter time.Duration
}

type PredictConfig struct {
	Addr string
}

type AggConfig struct {
	Addr        string
	EventsTopic string
	GroupID     string
	DailyTTL    time.Duration
}

func LoadWeb() WebConfig {
	return WebConfig{
		Addr:           GetEnv("WEB_ADDR", ":8080"),
		PredictURL:     GetEnv("PREDICT_SVC_URL", "http://localhost:5000"),
		PredictTimeout: GetDuration("PREDICT_TIMEOUT", 10*time.Second),
		FallbackPolicy: GetEnv("FALLBACK_POLICY", PolicyMockOnFailure),
		CacheBackend:   GetEnv("CACHE_BACKEND", CacheBackendMemory),
		SessionTTL:     GetDuration("SESSION_TTL", 24*time.Hour),
		SessionSweep:   GetDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		PublicURL:      GetEnv("PUBLIC_URL", "http://localhost:8080"),
		EventsTopic:    GetEnv("EVENTS_TOPIC", "recommendations"),
		AllowedOrigins: GetList("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"}),
		Mail: MailConfig{
			APIURL:      GetEnv("MAIL_API_URL", "https://api.emailjs.com"),
			ServiceID:   GetEnv("MAIL_SERVICE_ID", "service_0fx4jjj"),
			TemplateID:  GetEnv("MAIL_TEMPLATE_ID", "template_9wm4bcr"),
			PublicKey:   os.Getenv("MAIL_PUBLIC_KEY"),
			AccessToken: os.Getenv("MAIL_ACCESS_TOKEN"),
			ReloadAfter: GetDuration("FEEDBACK_RELOAD_AFTER", 2*time.Second),
		},
	}
}

func LoadPredict() PredictConfig {
	return PredictConfig{
		Addr: GetEnv("PREDICT_ADDR", ":5000"),
	}
}

func LoadAgg() AggConfig {
	return AggConfig{
		Addr:        GetEnv("AGG_ADDR", ":8082"),
		EventsTopic: GetEnv("EVENTS_TOPIC", "recommendations"),
		GroupID:     GetEnv("AGG_GROUP_ID", "agg-svc-consumer"),
		DailyTTL:    GetDuration("AGG_DAILY_TTL", 7*24*time.Hour),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetList splits a comma-separated variable, dropping empty items.
func GetList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// GetDuration accepts Go durations ("10s") or a bare number of seconds.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	logging.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
	return defaultValue
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := GetEnv("DB_PORT", "5432")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		logging.Fatal().Err(err).Msg("failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: GetEnv("REDIS_HOST", "localhost") + ":" + GetEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to redis")
	}

	return client
}

// NewKafkaWriter returns nil when KAFKA_BROKER is unset; publishers treat a
// nil writer as "events disabled".
func NewKafkaWriter(topic string) *kafka.Writer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 5 * time.Second,
	}
}

// NewKafkaReader mirrors NewKafkaWriter: nil when KAFKA_BROKER is unset.
func NewKafkaReader(topic, groupID string) *kafka.Reader {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}
