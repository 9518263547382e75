package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"locator/config"
	"locator/internal/domain/lifecycle"
	"locator/internal/infra/cache"
	"locator/internal/infra/geocoding"
	logs "locator/internal/infra/log"
	"locator/internal/infra/metrics"
	"locator/internal/infra/persistence/postgres"
	"locator/internal/usecase"
	"locator/internal/usecase/impl"
	"locator/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// importer loads a store CSV straight into the database, bypassing the HTTP API.
// Usage: importer -file stores.csv [-out report.json]

func main() {
	file := flag.String("file", "", "Path to the store CSV file")
	out := flag.String("out", "", "Write the JSON report to this path instead of stdout")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *file, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, file, out string) error {
	if file == "" {
		flag.Usage()

		return errors.New("-file is required")
	}
	if !strings.EqualFold(filepath.Ext(file), ".csv") {
		return errors.Errorf("unsupported file: %s", file)
	}

	var (
		importUC usecase.ImportUsecase
		logger   *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			cache.NewClient,
			cache.NewRedisCache,
			cache.NewCache,
			geocoding.NewNominatimClient,
			metrics.New,
			impl.NewGeocodeService,
			impl.NewImportService,
		),
		fx.Populate(&importUC, &logger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build importer")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start importer")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			logger.Warn("Failed to stop importer cleanly", slog.Any("error", err))
		}
	}()

	f, err := os.Open(file)
	if err != nil {
		return errors.Wrap(err, "failed to open CSV file")
	}
	defer f.Close()

	start := time.Now()
	source := util.NewChecksumReader(f)
	report, err := importUC.Import(ctx, source)
	if err != nil {
		return err
	}

	logger.Info("Import finished",
		slog.String("file", file),
		slog.String("size", util.FormatBytes(source.BytesRead())),
		slog.String("sha256", source.Sum()),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
		slog.Int("total_rows", report.TotalRows),
		slog.Int("created", report.Created),
		slog.Int("updated", report.Updated),
		slog.Int("failed", report.Failed),
	)

	return writeReport(report, out)
}

func writeReport(report *usecase.ImportReport, out string) error {
	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode report")
	}

	if out == "" {
		_, err = fmt.Fprintln(os.Stdout, string(encoded))

		return errors.Wrap(err, "failed to print report")
	}

	return errors.Wrap(os.WriteFile(out, append(encoded, '\n'), 0o644), "failed to write report")
}
