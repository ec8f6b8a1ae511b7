package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chokka/chokka-api/libs/go/helpers"
)

// Event backends for order.created
const (
	EventsBackendNone  = ""
	EventsBackendSQS   = "sqs"
	EventsBackendKafka = "kafka"
)

// Config holds non-secret runtime settings read from the environment
type Config struct {
	Stage string
	Port  string

	StoreConfigPath string
	Catalog         *Catalog

	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	CORSExposedHeaders []string
	CORSAllowCreds     bool
	CORSMaxAge         time.Duration

	EventsBackend string
	SQSQueueURL   string
	KafkaBrokers  []string
	KafkaTopic    string
	KafkaGroupID  string

	OTelEndpoint string

	SteadfastBaseURL string
	TelegramBaseURL  string

	NotificationEmail string
	EmailFromAddress  string

	StorageEndpoint  string
	StorageRegion    string
	StorageBucket    string
	StoragePrefix    string
	StoragePublicURL string
	UploadDir        string

	AdminTokenTTL   time.Duration
	CourierSyncSize int
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"https://chokka-website.vercel.app",
	"https://www.chokka-website.vercel.app",
	"https://chokka.shop",
	"https://www.chokka.shop",
}

// Load reads the environment and the optional store catalog
func Load() (*Config, error) {
	cfg := &Config{
		Stage:              helpers.GetStage(),
		Port:               getEnv("PORT", "8000"),
		StoreConfigPath:    os.Getenv("STORE_CONFIG_PATH"),
		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", defaultOrigins),
		CORSAllowedMethods: getList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		CORSAllowedHeaders: getList("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"}),
		CORSExposedHeaders: getList("CORS_EXPOSED_HEADERS", []string{"Content-Length", "X-Correlation-ID"}),
		CORSAllowCreds:     getBool("CORS_ALLOW_CREDENTIALS", true),
		CORSMaxAge:         getDuration("CORS_MAX_AGE", 12*time.Hour),
		EventsBackend:      strings.ToLower(os.Getenv("EVENTS_BACKEND")),
		SQSQueueURL:        os.Getenv("ORDER_EVENTS_QUEUE_URL"),
		KafkaBrokers:       getList("KAFKA_BROKERS", nil),
		KafkaTopic:         getEnv("KAFKA_ORDER_TOPIC", "chokka.orders"),
		KafkaGroupID:       getEnv("KAFKA_GROUP_ID", "chokka-notifications"),
		OTelEndpoint:       os.Getenv("OTEL_EXPORTER_ENDPOINT"),
		SteadfastBaseURL:   os.Getenv("STEADFAST_BASE_URL"),
		TelegramBaseURL:    os.Getenv("TELEGRAM_BASE_URL"),
		NotificationEmail:  os.Getenv("ADMIN_NOTIFICATION_EMAIL"),
		EmailFromAddress:   getEnv("EMAIL_FROM_ADDRESS", "orders@chokka.shop"),
		StorageEndpoint:    os.Getenv("STORAGE_S3_ENDPOINT"),
		StorageRegion:      getEnv("STORAGE_S3_REGION", "ap-south-1"),
		StorageBucket:      getEnv("STORAGE_BUCKET", "product-images"),
		StoragePrefix:      getEnv("STORAGE_PREFIX", "gallery"),
		StoragePublicURL:   os.Getenv("STORAGE_PUBLIC_URL"),
		UploadDir:          getEnv("UPLOAD_DIR", "./uploads"),
		AdminTokenTTL:      getDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
		CourierSyncSize:    getInt("COURIER_SYNC_CONCURRENCY", 5),
	}

	catalog, err := LoadCatalog(cfg.StoreConfigPath)
	if err != nil {
		return nil, err
	}
	if ids := getList("TELEGRAM_CHAT_IDS", nil); len(ids) > 0 {
		catalog.TelegramChatIDs = ids
	}
	if url := os.Getenv("ADMIN_PANEL_URL"); url != "" {
		catalog.AdminPanelURL = url
	}
	cfg.Catalog = catalog

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
