// Package main provides the CLI entrypoint for the heritage sites catalog.
// It wires subcommands (serve, jwt, reference), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"heritage/internal/config"
	"heritage/internal/registry"
	"heritage/pkg/cache"
	"heritage/pkg/logger"
	"heritage/pkg/metrics"
	"heritage/pkg/storage/postgres"
	"heritage/pkg/tracing"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getCache connects to Redis when it is configured and returns the choices
// cache along with a cleanup function. Without a Redis URL caching is disabled.
func getCache(ctx context.Context, cfg *config.Config) (cache.ChoicesCache, func()) {
	client, err := cache.NewRedisClient(ctx, cache.Options{
		URL:          cfg.Redis.URL,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}
	if client == nil {
		logger.Info(ctx, "redis is not configured, choices cache disabled")

		return cache.New(nil, 0), func() {}
	}

	return cache.New(client, cfg.Catalog.ChoicesCacheTTL), func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

// getRegistry builds the catalog registry on top of postgres and the choices
// cache. Registry counters are exported through the Prometheus registry and
// sampled registry spans are written to the log.
func getRegistry(ctx context.Context, cfg *config.Config) (registry.Registry, func()) {
	strg, closeStrg := getPostgres(ctx, cfg)
	choices, closeCache := getCache(ctx, cfg)

	mp, err := metrics.NewMeterProvider(nil)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}

	tp := tracing.NewTracerProvider(logger.Get(ctx), cfg.Tracing.SampleRatio)
	otel.SetTracerProvider(tp)

	options := registry.NewOptions(cfg)
	options.MeterProvider = mp
	options.TracerProvider = tp
	reg, err := registry.New(strg, choices, options)
	if err != nil {
		logger.Fatal(ctx, "could not create registry", zap.Error(err))
	}

	return reg, func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not shut down tracer provider", zap.Error(err))
		}
		if err := mp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
		}
		closeCache()
		closeStrg()
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "heritage",
		Short: "UNESCO World Heritage Sites catalog",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	configPath := flags.String("c", "config.yml", "The config file path")
	_ = flags.Parse(configArgs(os.Args[1:]))

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatal("could not load .env file: ", err)
	}

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err = logger.SetupWithLevel(cfg.Environment, cfg.LogLevel); err != nil {
		log.Println(err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		jwtCommand(cfg),
		referenceCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs picks the -c/--config flag out of args so the standard flag
// package does not trip over subcommands and their flags.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch {
		case arg == "-c" || arg == "--config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		case strings.HasPrefix(arg, "-c="):
			return []string{arg}
		case strings.HasPrefix(arg, "--config="):
			return []string{"-c=" + strings.TrimPrefix(arg, "--config=")}
		}
	}

	return nil
}
