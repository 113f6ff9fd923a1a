package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/item"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// LowStockSweepJob periodically scans for product listings at or below
// their minimum stock level and logs a per-store summary. The inventory
// dashboard shows the same numbers on demand; the sweep exists so low
// stock shows up in the logs without anyone opening the dashboard.
type LowStockSweepJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewLowStockSweepJob creates the sweep job. It runs once a minute.
func NewLowStockSweepJob(db *gorm.DB, logger *slog.Logger) *LowStockSweepJob {
	return &LowStockSweepJob{
		db:     db,
		cron:   cron.New(),
		logger: logger.With("component", "low_stock_sweep_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *LowStockSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Low stock sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock sweep job started (running every minute)")
	return nil
}

// Stop stops the sweep job.
func (j *LowStockSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock sweep job stopped")
}

func (j *LowStockSweepJob) sweep(ctx context.Context) error {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT i.store_id, a.name, COUNT(*) AS low_stock
		FROM items i
		JOIN accounts a ON a.id = i.store_id
		WHERE i.kind = ? AND i.stock_actual <= i.stock_minimum
		GROUP BY i.store_id, a.name
		ORDER BY i.store_id`,
		item.KindProduct.String(),
	).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var storeID int64
		var storeName string
		var lowStock int

		if err := rows.Scan(&storeID, &storeName, &lowStock); err != nil {
			return err
		}

		j.logger.WarnContext(ctx, "Store has listings at or below minimum stock",
			"store_id", storeID,
			"store_name", storeName,
			"low_stock_count", lowStock,
		)
	}
	return rows.Err()
}
