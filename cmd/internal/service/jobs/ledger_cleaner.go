package jobs

import (
	"context"
	"time"

	"codcoz/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

const (
	CleanInterval = 1 * time.Hour

	// ClaimTTL bounds how long a week may stay claimed without a menu id.
	ClaimTTL = 10 * time.Minute
)

type MenuRecordRepository interface {
	DeleteExpired(before int64) (int64, error)
	DeleteStaleClaims(before int64) (int64, error)
}

// LedgerCleaner drops menu ledger records older than the retention period.
type LedgerCleaner struct {
	recordRepo MenuRecordRepository
	retention  time.Duration
	now        func() int64
}

func NewLedgerCleaner(repo MenuRecordRepository, retention time.Duration) *LedgerCleaner {
	return &LedgerCleaner{recordRepo: repo, retention: retention, now: utils.NowUTC}
}

func (c *LedgerCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(CleanInterval)
	defer ticker.Stop()

	log.Info("Menu ledger cleaner cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping menu ledger cleaner...")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *LedgerCleaner) cleanup() {
	now := c.now()

	cutoff := now - c.retention.Milliseconds()
	n, err := c.recordRepo.DeleteExpired(cutoff)
	if err != nil {
		log.Errorf("Cleaner: failed to delete expired menu records: %v", err)
	} else {
		log.Debugf("Cleaner: swept %d menu records older than %d", n, cutoff)
	}

	claimCutoff := now - ClaimTTL.Milliseconds()
	n, err = c.recordRepo.DeleteStaleClaims(claimCutoff)
	if err != nil {
		log.Errorf("Cleaner: failed to release stale week claims: %v", err)
		return
	}
	if n > 0 {
		log.Warnf("Cleaner: released %d week claims older than %d", n, claimCutoff)
	}
}
