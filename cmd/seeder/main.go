// Command seeder loads an order export into the local database so the
// dashboard has data before the first upstream sync. It is intended to be
// run offline, not as part of the main server.
//
// Flags:
//
//	--file     order export, a JSON array or {"orders": [...]} (required)
//	--dry-run  validate the export without writing to the database
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/partsdesk-backend/internal/adapter/kafka"
	"github.com/heartmarshall/partsdesk-backend/internal/adapter/postgres"
	orderrepo "github.com/heartmarshall/partsdesk-backend/internal/adapter/postgres/order"
	"github.com/heartmarshall/partsdesk-backend/internal/app"
	"github.com/heartmarshall/partsdesk-backend/internal/config"
	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/internal/service/order"
)

func main() {
	fileFlag := flag.String("file", "", "order export to load")
	dryRunFlag := flag.Bool("dry-run", false, "validate without writing to DB")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("--file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	orders, err := readExport(*fileFlag)
	if err != nil {
		logger.Error("read export", slog.String("file", *fileFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	batches := chunk(orders, order.MaxImportBatch)
	for i, b := range batches {
		if err := (order.ImportInput{Orders: b}).Validate(); err != nil {
			logger.Error("invalid export", slog.Int("batch", i), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if *dryRunFlag {
		logger.Info("dry run: export is valid", slog.Int("orders", len(orders)), slog.Int("batches", len(batches)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// Import never calls the parts API; the snapshot it fills is discarded.
	svc := order.NewService(logger, orderrepo.New(pool), postgres.NewTxManager(pool), nil, kafka.Discard{}, cfg.Snapshot.MaxOrders)

	start := time.Now()
	total := 0
	for i, b := range batches {
		n, err := svc.Import(ctx, order.ImportInput{Orders: b})
		if err != nil {
			logger.Error("import batch failed",
				slog.Int("batch", i),
				slog.Int("imported_so_far", total),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		total += n
	}

	logger.Info("seed completed",
		slog.Int("orders", total),
		slog.Duration("took", time.Since(start)),
	)
}

func readExport(path string) ([]domain.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return order.ReadOrders(f)
}

func chunk(orders []domain.Order, size int) [][]domain.Order {
	var out [][]domain.Order
	for len(orders) > size {
		out = append(out, orders[:size])
		orders = orders[size:]
	}
	return append(out, orders)
}
