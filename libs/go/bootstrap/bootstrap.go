// Package bootstrap assembles the runtime shared by the API server, the
// Lambda processors and chokkactl: stage and logger, secrets, the database
// pool, external clients and the services built on them.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	awsclient "github.com/chokka/chokka-api/libs/go/client/aws"
	"github.com/chokka/chokka-api/libs/go/client/events"
	"github.com/chokka/chokka-api/libs/go/client/steadfast"
	"github.com/chokka/chokka-api/libs/go/client/storage"
	"github.com/chokka/chokka-api/libs/go/client/telegram"
	"github.com/chokka/chokka-api/libs/go/config"
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/observability"
	"github.com/chokka/chokka-api/libs/go/services"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const emailFromName = "Chokka Orders"

// Runtime is the process-wide state every entrypoint starts from
type Runtime struct {
	Config  *config.Config
	Secrets awsclient.SecretsProvider

	shutdown []func(context.Context) error
}

// Init loads .env files, validates STAGE, initialises the logger and
// tracing, and picks a secrets provider. Missing .env files are ignored.
func Init(ctx context.Context, envFiles ...string) (*Runtime, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: Error loading %s: %v", f, err)
		}
	}

	stage := helpers.GetStage()
	if !helpers.IsValidStage(stage) {
		return nil, fmt.Errorf("invalid STAGE %q, must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}
	if logger.Log == nil {
		logger.InitLogger(stage)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	rt := &Runtime{Config: cfg, Secrets: newSecretsProvider(ctx, stage)}

	otelShutdown, err := observability.Setup(ctx, observability.Config{
		Endpoint:       cfg.OTelEndpoint,
		AuthHeader:     rt.Secrets.GetOptionalSecretString(ctx, "OTEL_EXPORTER_AUTH_ARN", "OTEL_EXPORTER_AUTH"),
		ServiceVersion: os.Getenv("SERVICE_VERSION"),
		Insecure:       stage == helpers.StageLocal,
	})
	if err != nil {
		logger.Warn("OpenTelemetry export disabled", zap.Error(err))
	}
	rt.onShutdown(otelShutdown)

	logger.Info("Runtime initialised",
		zap.String("stage", stage),
		zap.Bool("otel_export", cfg.OTelEndpoint != ""),
		zap.Int("catalog_products", len(cfg.Catalog.Products)))
	return rt, nil
}

func newSecretsProvider(ctx context.Context, stage string) awsclient.SecretsProvider {
	client, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		if stage != helpers.StageLocal {
			logger.Warn("Secrets Manager unavailable, reading secrets from the environment", zap.Error(err))
		}
		return awsclient.EnvSecretsProvider{}
	}
	return client
}

func (rt *Runtime) onShutdown(fn func(context.Context) error) {
	if fn != nil {
		rt.shutdown = append(rt.shutdown, fn)
	}
}

// Shutdown releases everything opened through the runtime, newest first
func (rt *Runtime) Shutdown(ctx context.Context) error {
	var err error
	for i := len(rt.shutdown) - 1; i >= 0; i-- {
		err = errors.Join(err, rt.shutdown[i](ctx))
	}
	rt.shutdown = nil
	_ = logger.Sync()
	return err
}

// ConnectDatabase opens the pgx pool from DATABASE_URL (or the secret named
// by DATABASE_URL_ARN) and pings it
func (rt *Runtime) ConnectDatabase(ctx context.Context) (*pgxpool.Pool, error) {
	dsn, err := rt.Secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	if err != nil {
		return nil, fmt.Errorf("database url: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		logger.Warn("Database not reachable at start-up", zap.Error(err))
	}

	rt.onShutdown(func(context.Context) error {
		pool.Close()
		return nil
	})
	return pool, nil
}

// NewSteadfastClient builds the courier client. Missing credentials leave
// it unconfigured; its calls then fail with steadfast.ErrNotConfigured.
func (rt *Runtime) NewSteadfastClient(ctx context.Context) *steadfast.Client {
	apiKey := rt.Secrets.GetOptionalSecretString(ctx, "STEADFAST_API_KEY_ARN", "STEADFAST_API_KEY")
	secretKey := rt.Secrets.GetOptionalSecretString(ctx, "STEADFAST_SECRET_KEY_ARN", "STEADFAST_SECRET_KEY")
	if apiKey == "" || secretKey == "" {
		logger.Warn("Steadfast credentials not set, courier endpoints will answer 503")
	}

	var opts []steadfast.Option
	if rt.Config.SteadfastBaseURL != "" {
		opts = append(opts, steadfast.WithBaseURL(rt.Config.SteadfastBaseURL))
	}
	return steadfast.NewClient(apiKey, secretKey, opts...)
}

// NewNotifier builds the admin alert fan-out over Telegram and Resend.
// Channels without credentials are left out.
func (rt *Runtime) NewNotifier(ctx context.Context) *services.NotificationService {
	var tg interfaces.TelegramClient
	if token := rt.Secrets.GetOptionalSecretString(ctx, "TELEGRAM_BOT_TOKEN_ARN", "TELEGRAM_BOT_TOKEN"); token != "" {
		tg = telegram.NewClient(token, rt.Config.TelegramBaseURL)
	} else {
		logger.Warn("TELEGRAM_BOT_TOKEN not set, Telegram alerts disabled")
	}

	var email interfaces.EmailService
	if key := rt.Secrets.GetOptionalSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY"); key != "" && rt.Config.NotificationEmail != "" {
		email = services.NewEmailService(key, rt.Config.EmailFromAddress, emailFromName, rt.Config.Catalog.AdminPanelURL)
	}

	return services.NewNotificationService(tg, email, rt.Config.Catalog, rt.Config.NotificationEmail)
}

// NewPublisher returns the order event publisher selected by
// EVENTS_BACKEND, or nil when events are disabled and notifications run
// inline
func (rt *Runtime) NewPublisher(ctx context.Context) (interfaces.EventPublisher, error) {
	cfg := rt.Config
	switch cfg.EventsBackend {
	case config.EventsBackendNone:
		return nil, nil
	case config.EventsBackendSQS:
		if cfg.SQSQueueURL == "" {
			return nil, errors.New("ORDER_EVENTS_QUEUE_URL is required for the sqs events backend")
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
		}
		return events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL), nil
	case config.EventsBackendKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required for the kafka events backend")
		}
		pub := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
		rt.onShutdown(func(context.Context) error { return pub.Close() })
		return pub, nil
	default:
		return nil, fmt.Errorf("unknown EVENTS_BACKEND %q", cfg.EventsBackend)
	}
}

// NewStorage returns the gallery image store: the S3 compatible bucket when
// an endpoint is configured or the stage is deployed, local disk otherwise
func (rt *Runtime) NewStorage(ctx context.Context) (interfaces.ObjectStorage, error) {
	cfg := rt.Config
	if cfg.StorageEndpoint == "" && cfg.Stage == helpers.StageLocal {
		return storage.NewLocal(cfg.UploadDir, "/uploads"), nil
	}

	return storage.NewS3(ctx, storage.S3Config{
		Region:          cfg.StorageRegion,
		Endpoint:        cfg.StorageEndpoint,
		AccessKeyID:     rt.Secrets.GetOptionalSecretString(ctx, "STORAGE_S3_ACCESS_KEY_ID_ARN", "STORAGE_S3_ACCESS_KEY_ID"),
		SecretAccessKey: rt.Secrets.GetOptionalSecretString(ctx, "STORAGE_S3_SECRET_ACCESS_KEY_ARN", "STORAGE_S3_SECRET_ACCESS_KEY"),
		Bucket:          cfg.StorageBucket,
		Prefix:          cfg.StoragePrefix,
		PublicBaseURL:   cfg.StoragePublicURL,
	})
}

// NewAuthService builds the admin login service from ADMIN_PASSWORD_HASH
// and JWT_SECRET
func (rt *Runtime) NewAuthService(ctx context.Context) (*services.AuthService, error) {
	hash, err := rt.Secrets.GetSecretString(ctx, "ADMIN_PASSWORD_HASH_ARN", "ADMIN_PASSWORD_HASH")
	if err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}
	key, err := rt.Secrets.GetSecretString(ctx, "JWT_SECRET_ARN", "JWT_SECRET")
	if err != nil {
		return nil, fmt.Errorf("jwt secret: %w", err)
	}
	return services.NewAuthService(hash, key, rt.Config.AdminTokenTTL)
}

// Services is every domain service wired against one database pool
type Services struct {
	Pool    *pgxpool.Pool
	Queries *db.Queries

	Order        *services.OrderService
	Courier      *services.CourierService
	Notification *services.NotificationService
	Product      *services.ProductService
	Coupon       *services.CouponService
	Review       *services.ReviewService
	Gallery      *services.GalleryService
	Inventory    *services.InventoryService
	Expense      *services.ExpenseService
	Payout       *services.PayoutService
	Dashboard    *services.DashboardService
	Auth         *services.AuthService
}

// BuildServices connects to the database and creates all services
func (rt *Runtime) BuildServices(ctx context.Context) (*Services, error) {
	pool, err := rt.ConnectDatabase(ctx)
	if err != nil {
		return nil, err
	}
	queries := db.New(pool)
	tx := helpers.NewPoolTxRunner(pool)

	publisher, err := rt.NewPublisher(ctx)
	if err != nil {
		return nil, err
	}
	store, err := rt.NewStorage(ctx)
	if err != nil {
		return nil, fmt.Errorf("gallery storage: %w", err)
	}
	auth, err := rt.NewAuthService(ctx)
	if err != nil {
		return nil, err
	}

	notifier := rt.NewNotifier(ctx)
	catalog := rt.Config.Catalog

	return &Services{
		Pool:         pool,
		Queries:      queries,
		Order:        services.NewOrderService(queries, tx, catalog, publisher, notifier),
		Courier:      services.NewCourierService(queries, tx, rt.NewSteadfastClient(ctx), rt.Config.CourierSyncSize),
		Notification: notifier,
		Product:      services.NewProductService(queries),
		Coupon:       services.NewCouponService(queries),
		Review:       services.NewReviewService(queries),
		Gallery:      services.NewGalleryService(queries, store),
		Inventory:    services.NewInventoryService(queries, tx),
		Expense:      services.NewExpenseService(queries),
		Payout:       services.NewPayoutService(queries),
		Dashboard:    services.NewDashboardService(queries),
		Auth:         auth,
	}, nil
}
