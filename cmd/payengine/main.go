package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/iho/payengine/internal/adapter/csvio"
	"github.com/iho/payengine/internal/adapter/repository/memory"
	"github.com/iho/payengine/internal/infrastructure/config"
	"github.com/iho/payengine/internal/infrastructure/logger"
	"github.com/iho/payengine/internal/infrastructure/metrics"
	"github.com/iho/payengine/internal/usecase"
)

func main() {
	var cacheSize int

	rootCmd := &cobra.Command{
		Use:   "payengine <transactions.csv>",
		Short: "Compute final client balances from a transaction stream",
		Long: `payengine replays an ordered CSV stream of deposits, withdrawals,
disputes, resolves and chargebacks, and prints the final per-client
account report on stdout. Diagnostics go to stderr.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], cacheSize)
		},
	}

	rootCmd.Flags().IntVar(&cacheSize, "cache-size", 0, "recently-used transaction cache size (overrides TX_CACHE_SIZE)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string, cacheSize int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if cacheSize <= 0 {
		cacheSize = cfg.TxCacheSize
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}).
		With().
		Str("run_id", ulid.Make().String()).
		Logger()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open transactions: %w", err)
	}
	defer file.Close()

	reader, err := csvio.NewReader(file)
	if err != nil {
		return err
	}

	m := metrics.New()
	store, err := memory.NewCachedStore(memory.NewStore(), cacheSize, m)
	if err != nil {
		return fmt.Errorf("build transaction cache: %w", err)
	}
	processor := usecase.NewProcessor(store, log, m)

	for {
		ev, err := reader.Next()
		if err == io.EOF {
			break
		}
		var rowErr *csvio.RowError
		if errors.As(err, &rowErr) {
			m.RecordsSkipped.Inc()
			log.Warn().Int("line", rowErr.Line).Err(rowErr.Err).Msg("skipping unparseable record")
			continue
		}
		if err != nil {
			return err
		}
		processor.Process(ev)
	}

	if err := csvio.WriteReport(os.Stdout, processor.Accounts()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	m.Dump(log)
	return nil
}
