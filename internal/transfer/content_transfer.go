package transfer

import "time"

// ContentCreation carries the creation form fields. ScheduledDate is in
// datetime-local format and may be empty for an unscheduled draft.
type ContentCreation struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Platform      string `json:"platform"`
	ScheduledDate string `json:"scheduled_date"`
	ImageURL      string `json:"image_url"`
}

// ContentUpdate carries a partial update. A nil field is left unspecified; a
// non-nil field is written, including a non-nil empty ScheduledDate, which
// clears the stored date.
type ContentUpdate struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Type          *string `json:"type"`
	Platform      *string `json:"platform"`
	ScheduledDate *string `json:"scheduled_date"`
	ImageURL      *string `json:"image_url"`
	Status        *string `json:"status"`
}

// ContentPatch is the repository-level form of ContentUpdate, with the
// scheduled date already converted to a canonical instant.
type ContentPatch struct {
	Title       *string
	Description *string
	Type        *string
	Platform    *string
	ImageURL    *string
	Status      *string

	// SetScheduledAt marks scheduled_at for writing; a nil ScheduledAt
	// then writes NULL.
	SetScheduledAt bool
	ScheduledAt    *time.Time
}

type StatusUpdate struct {
	Status string `json:"status"`
}
