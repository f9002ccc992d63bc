package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/creatordash/internal/models"
	"github.com/maheshrc27/creatordash/pkg/dates"
)

// HandleContentReminderTask fires at a content item's scheduled time and
// appends a feed entry. It never changes the item's status; publishing stays a
// user action.
func (q *Queue) HandleContentReminderTask(ctx context.Context, task *asynq.Task) error {
	var payload ContentReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	content, err := q.cr.GetByID(ctx, payload.ContentID)
	if err != nil {
		return err
	}
	if content == nil || content.Status != models.ContentStatusScheduled {
		// Deleted, rescheduled away, or already moved on.
		return nil
	}

	profile, err := q.ps.GetUserProfile(ctx, content.UserID)
	if err != nil {
		return err
	}

	due := ""
	if content.ScheduledAt != nil {
		due = content.ScheduledAt.UTC().Format(time.RFC3339)
	}
	message := fmt.Sprintf("%q is due on %s", content.Title, dates.FormatForDisplay(due, profile.Timezone))

	activity := &models.Activity{
		UserID:    content.UserID,
		ContentID: content.ID,
		Kind:      models.ActivityContentDue,
		Message:   message,
	}
	if _, err := q.ar.Create(ctx, activity); err != nil {
		log.Printf("Error saving reminder activity for ContentID %d: %v", content.ID, err)
		return err
	}

	return nil
}
