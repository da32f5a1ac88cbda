package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/countryflag/countryflag/internal/cache"
	"github.com/countryflag/countryflag/internal/cache/disk"
	"github.com/countryflag/countryflag/internal/cache/memory"
	rediscache "github.com/countryflag/countryflag/internal/cache/redis"
	sqlitecache "github.com/countryflag/countryflag/internal/cache/sqlite"
	"github.com/countryflag/countryflag/internal/cache/ttl"
	"github.com/countryflag/countryflag/internal/config"
	"github.com/countryflag/countryflag/internal/resolver"
	"github.com/countryflag/countryflag/internal/service"
	httpTransport "github.com/countryflag/countryflag/internal/transport/http"
)

var rootCmd = &cobra.Command{
	Use:   "countryflag",
	Short: "Convert country names to emoji flags and back",
	Long:  "A country flag conversion tool with fuzzy matching, region grouping, multiple output formats and a pluggable caching layer (memory, disk, Redis or SQLite)",
}

var convertCmd = &cobra.Command{
	Use:   "convert [COUNTRY...]",
	Short: "Convert country names to emoji flags",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

var reverseCmd = &cobra.Command{
	Use:   "reverse [FLAG...]",
	Short: "Convert emoji flags back to country names",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReverse,
}

var regionCmd = &cobra.Command{
	Use:   "region [REGION]",
	Short: "Show flags for every country in a region (Africa, Americas, Asia, Europe, Oceania)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegion,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all supported countries",
	RunE:  runList,
}

var validateCmd = &cobra.Command{
	Use:   "validate [COUNTRY]",
	Short: "Check whether a country name is recognized",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Cache management commands",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache hit statistics",
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the configured cache",
	RunE:  runCacheClear,
}

func init() {
	rootCmd.PersistentFlags().String("cache", config.BackendMemory, "Cache backend (memory, disk, redis, sqlite)")
	rootCmd.PersistentFlags().String("cache-dir", "~/.cache/countryflag", "Cache directory (disk backend)")
	rootCmd.PersistentFlags().String("redis-addr", "localhost:6379", "Redis address (redis backend)")
	rootCmd.PersistentFlags().String("sqlite-path", "countryflag-cache.db", "SQLite database path (sqlite backend)")
	rootCmd.PersistentFlags().Duration("ttl", 0, "Expire cache entries after this duration (0 disables expiry)")
	rootCmd.PersistentFlags().StringP("separator", "s", " ", "Separator between flags")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format (text, json, csv)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	convertCmd.Flags().Bool("fuzzy", false, "Enable fuzzy matching for unrecognized names")
	convertCmd.Flags().Float64("threshold", service.DefaultFuzzyThreshold, "Fuzzy matching similarity threshold (0-1)")

	serveCmd.Flags().StringP("port", "p", "8080", "Server port")

	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd)
	rootCmd.AddCommand(convertCmd, reverseCmd, regionCmd, listCmd, validateCmd, serveCmd, cacheCmd)
}

// loadConfig assembles and validates configuration from the CLI flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	backend, _ := cmd.Flags().GetString("cache")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	redisAddr, _ := cmd.Flags().GetString("redis-addr")
	sqlitePath, _ := cmd.Flags().GetString("sqlite-path")
	separator, _ := cmd.Flags().GetString("separator")
	format, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")

	port := "8080"
	if cmd.Flags().Lookup("port") != nil {
		port, _ = cmd.Flags().GetString("port")
	}

	return config.New(port, config.CacheConfig{
		Backend:    backend,
		Dir:        cacheDir,
		RedisAddr:  redisAddr,
		SQLitePath: sqlitePath,
	}, separator, format, verbose)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// newCache builds the configured cache backend. A nil return selects the
// shared in-process default cache. A non-zero ttl wraps the backend with
// per-entry expiry; for the memory backend that means a private instance
// rather than the shared default, since the wrapper changes what a stored
// entry looks like.
func newCache(cfg *config.Config, entryTTL time.Duration, logger *zap.Logger) (cache.Cache, func(), error) {
	backend, cleanup, err := newBackend(cfg, logger)
	if err != nil || entryTTL <= 0 {
		return backend, cleanup, err
	}
	if backend == nil {
		backend = memory.New()
	}
	return ttl.New(backend, entryTTL), cleanup, nil
}

func newBackend(cfg *config.Config, logger *zap.Logger) (cache.Cache, func(), error) {
	noop := func() {}

	switch cfg.Cache.Backend {
	case config.BackendMemory:
		return nil, noop, nil
	case config.BackendDisk:
		c, err := disk.New(cfg.Cache.Dir, logger)
		if err != nil {
			return nil, noop, err
		}
		return c, noop, nil
	case config.BackendRedis:
		client := goredis.NewClient(&goredis.Options{Addr: cfg.Cache.RedisAddr})
		return rediscache.New(client, "countryflag:"), func() { client.Close() }, nil
	case config.BackendSQLite:
		c, err := sqlitecache.New(cfg.Cache.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return c, func() { c.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}

// newService wires the resolver, cache and logger into a facade
func newService(cmd *cobra.Command) (service.CountryFlag, *config.Config, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := newLogger(cfg.Logging.Verbose)
	if err != nil {
		return nil, nil, nil, err
	}

	entryTTL, _ := cmd.Flags().GetDuration("ttl")

	c, cleanup, err := newCache(cfg, entryTTL, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	cf := service.New(resolver.NewDatasetResolver(), c, logger)
	return cf, cfg, cleanup, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cf, cfg, cleanup, err := newService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	fuzzy, _ := cmd.Flags().GetBool("fuzzy")
	threshold, _ := cmd.Flags().GetFloat64("threshold")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := cf.GetFlag(ctx, args, service.ConvertOptions{
		Separator:      cfg.Output.Separator,
		Fuzzy:          fuzzy,
		FuzzyThreshold: threshold,
	})
	if err != nil {
		return err
	}

	out, err := cf.FormatOutput(result.Pairs, cfg.Output.Format, cfg.Output.Separator)
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

func runReverse(cmd *cobra.Command, args []string) error {
	cf, cfg, cleanup, err := newService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pairs, err := cf.ReverseLookup(ctx, args)
	if err != nil {
		return err
	}

	if cfg.Output.Format != "text" {
		out, err := cf.FormatOutput(pairs, cfg.Output.Format, cfg.Output.Separator)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	for _, pair := range pairs {
		fmt.Printf("%s %s\n", pair.Flag, pair.Country)
	}
	return nil
}

func runRegion(cmd *cobra.Command, args []string) error {
	cf, cfg, cleanup, err := newService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := cf.GetFlagsByRegion(ctx, args[0], cfg.Output.Separator)
	if err != nil {
		return err
	}

	out, err := cf.FormatOutput(result.Pairs, cfg.Output.Format, cfg.Output.Separator)
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cf, _, cleanup, err := newService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	countries, err := cf.GetSupportedCountries(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%-30s %-5s %-5s %s\n", "Name", "ISO2", "ISO3", "Region")
	for _, c := range countries {
		fmt.Printf("%-30s %-5s %-5s %s %s\n", c.Name, c.ISO2, c.ISO3, c.Region, c.Flag)
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cf, _, cleanup, err := newService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	valid, err := cf.ValidateCountryName(ctx, args[0])
	if err != nil {
		return err
	}

	if valid {
		fmt.Printf("%s is a recognized country name\n", args[0])
		return nil
	}
	fmt.Printf("%s is not a recognized country name\n", args[0])
	return nil
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	cf, cfg, cleanup, err := newService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	instrumented, ok := cf.ActiveCache().(cache.Instrumented)
	if !ok {
		fmt.Printf("cache backend %s does not report hit statistics\n", cfg.Cache.Backend)
		return nil
	}

	fmt.Printf("backend: %s\n", cfg.Cache.Backend)
	fmt.Printf("hits: %d\n", instrumented.Hits())
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cf, cfg, cleanup, err := newService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cfg.Cache.Backend == config.BackendMemory {
		service.ClearGlobalCache()
	} else if err := cf.ActiveCache().Clear(ctx); err != nil {
		return err
	}

	fmt.Println("cache cleared")
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cf, cfg, cleanup, err := newService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	logger, err := newLogger(cfg.Logging.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	server := httpTransport.NewServer(cf, cfg.Server.Port, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		logger.Info("received signal, shutting down gracefully", zap.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", zap.Error(err))
		}
	}

	logger.Info("server stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
