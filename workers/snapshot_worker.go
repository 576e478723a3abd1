package workers

import (
	"context"
	"log"
	"time"

	"link-organizer-system/services"
	"link-organizer-system/utils"
)

// SnapshotClient uploads full-board snapshots to R2.
type SnapshotClient struct {
	Snapshots *services.SnapshotService
}

func NewSnapshotClient(snapshots *services.SnapshotService) *SnapshotClient {
	return &SnapshotClient{Snapshots: snapshots}
}

// Export builds and uploads one snapshot.
func (c *SnapshotClient) Export(ctx context.Context) error {
	data, key, err := c.Snapshots.Marshal()
	if err != nil {
		return err
	}
	if err := utils.UploadBytesToR2(ctx, key, "application/json", data); err != nil {
		return err
	}
	log.Printf("✅ Snapshot exported: %s (%d bytes)", key, len(data))
	return nil
}

// PollSnapshots exports the board on an interval until ctx is cancelled.
// An untouched board ("nothing stored yet") is not an error worth logging
// repeatedly, so failures are logged and the loop keeps going.
func PollSnapshots(ctx context.Context, client *SnapshotClient, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Snapshot worker stopped")
			return
		case <-ticker.C:
			if err := client.Export(ctx); err != nil {
				log.Printf("[Snapshot] export skipped: %v", err)
			}
		}
	}
}
