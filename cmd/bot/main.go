package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/KirkDiggler/kegweb/internal/common/clock"
	"github.com/KirkDiggler/kegweb/internal/common/uuid"
	"github.com/KirkDiggler/kegweb/internal/handlers/discord"
	"github.com/KirkDiggler/kegweb/internal/handlers/meter"
	"github.com/KirkDiggler/kegweb/internal/repositories/drink_ledger"
	"github.com/KirkDiggler/kegweb/internal/repositories/drinker"
	"github.com/KirkDiggler/kegweb/internal/repositories/keg"
	"github.com/KirkDiggler/kegweb/internal/services/pour"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// A missing .env is fine; the environment may be set directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to load .env file: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(getEnv("LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		log.Fatalf("Invalid REDIS_DB: %v", err)
	}

	// Pour timestamps are stored without a zone and read in the site's zone
	siteZone, err := time.LoadLocation(getEnv("SITE_TIMEZONE", "UTC"))
	if err != nil {
		log.Fatalf("Invalid SITE_TIMEZONE: %v", err)
	}

	// Pours further apart than this start a new drinking session
	sessionMinutes, err := strconv.Atoi(getEnv("SESSION_TIMEOUT_MINUTES", "180"))
	if err != nil || sessionMinutes <= 0 {
		log.Fatalf("Invalid SESSION_TIMEOUT_MINUTES: %q", getEnv("SESSION_TIMEOUT_MINUTES", ""))
	}

	siteClock := clock.NewSiteClock(siteZone)

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	drinkLedgerRepo, err := drink_ledger.NewRedis(&drink_ledger.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create drink ledger repository: %v", err)
	}

	kegRepo, err := keg.NewRedis(&keg.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create keg repository: %v", err)
	}

	drinkerRepo, err := drinker.NewRedis(&drinker.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create drinker repository: %v", err)
	}

	// Initialize pour service
	pourSvc, err := pour.New(&pour.Config{
		DrinkLedgerRepo: drinkLedgerRepo,
		KegRepo:         kegRepo,
		DrinkerRepo:     drinkerRepo,
		Clock:           siteClock,
		UUIDGenerator:   uuid.New(),
		SessionTimeout:  time.Duration(sessionMinutes) * time.Minute,
		Logger:          logger,
	})
	if err != nil {
		log.Fatalf("Failed to create pour service: %v", err)
	}

	// Flow meter ingestion is optional; without a broker pours are only read
	var meterSub *meter.Subscriber
	if brokerURL := getEnv("MQTT_BROKER", ""); brokerURL != "" {
		meterHandler, err := meter.NewHandler(pourSvc, logger)
		if err != nil {
			log.Fatalf("Failed to create meter handler: %v", err)
		}

		meterSub, err = meter.NewSubscriber(&meter.SubscriberConfig{
			BrokerURL: brokerURL,
			ClientID:  getEnv("MQTT_CLIENT_ID", ""),
			Handler:   meterHandler,
			Logger:    logger,
		})
		if err != nil {
			log.Fatalf("Failed to create meter subscriber: %v", err)
		}

		if err := meterSub.Start(); err != nil {
			log.Fatalf("Failed to start meter subscriber: %v", err)
		}
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         discordToken,
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		PourService:   pourSvc,
		Clock:         siteClock,
		Logger:        logger,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		logger.Error("failed to stop bot", "error", err)
	}

	if meterSub != nil {
		meterSub.Stop()
	}

	if err := redisClient.Close(); err != nil {
		logger.Error("failed to close redis client", "error", err)
	}

	logger.Info("bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// logLevel maps LOG_LEVEL to a slog level, defaulting to info
func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
