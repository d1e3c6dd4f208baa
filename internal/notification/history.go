package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/reelmates/reelmates-BE/internal/db"
)

// HistoryCap is the maximum number of notifications kept per recipient.
const HistoryCap = 10

// HistoryStore maintains each recipient's bounded notification history:
// append-only, timestamp-ordered, oldest entry evicted once the cap is
// exceeded.
type HistoryStore struct {
	store db.Store
}

func NewHistoryStore(store db.Store) *HistoryStore {
	return &HistoryStore{store: store}
}

// Append persists the notification under a fresh id, then trims the
// recipient's history back to HistoryCap. The insert is durable before the
// trim decision is evaluated, and the trim reads at most HistoryCap+1
// records. Concurrent appends for the same recipient each run their own
// read-count-evict cycle, so the cap is enforced eventually, not atomically.
func (h *HistoryStore) Append(ctx context.Context, userID string, notification *db.Notification) error {
	notification.ID = uuid.NewString()

	if err := h.store.SetNotification(ctx, userID, notification); err != nil {
		return err
	}

	stored, err := h.store.ListNotifications(ctx, userID, HistoryCap+1)
	if err != nil {
		return fmt.Errorf("failed to read back history of user %s: %w", userID, err)
	}

	if len(stored) > HistoryCap {
		oldest := stored[0]
		if err = h.store.DeleteNotification(ctx, userID, oldest.ID); err != nil {
			return fmt.Errorf("failed to evict notification %s of user %s: %w", oldest.ID, userID, err)
		}
	}

	return nil
}
