// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartMissionSyncScheduler periodically re-syncs mission progress from the
// stored profile. The recompute is idempotent, so the job only matters after
// a write that skipped the progression flow (or a blob restored from a
// snapshot); it uses Resync and therefore never advances the login streak.
func (s *ProgressionService) StartMissionSyncScheduler(interval time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			update, ok := s.Resync()
			if !ok {
				return // no profile stored yet
			}
			if update.XPGained > 0 {
				log.Printf("[Scheduler] mission re-sync granted %d XP", update.XPGained)
			}
		}),
	)
}
