package models

import "time"

type Content struct {
	ID          int64      `db:"id" json:"id"`
	UserID      int64      `db:"user_id" json:"user_id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Type        string     `db:"type" json:"type"`
	Platform    string     `db:"platform" json:"platform"`
	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduled_at"`
	ImageURL    string     `db:"image_url" json:"image_url,omitempty"`
	Status      string     `db:"status" json:"status"` // draft, scheduled, published, archived
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

const (
	ContentStatusDraft     = "draft"
	ContentStatusScheduled = "scheduled"
	ContentStatusPublished = "published"
	ContentStatusArchived  = "archived"
)

const (
	ContentTypePost    = "post"
	ContentTypeVideo   = "video"
	ContentTypeArticle = "article"
)

const (
	PlatformInstagram = "instagram"
	PlatformYoutube   = "youtube"
	PlatformTwitter   = "twitter"
	PlatformLinkedin  = "linkedin"
)

func IsValidContentStatus(status string) bool {
	switch status {
	case ContentStatusDraft, ContentStatusScheduled, ContentStatusPublished, ContentStatusArchived:
		return true
	}
	return false
}

func IsValidContentType(contentType string) bool {
	switch contentType {
	case ContentTypePost, ContentTypeVideo, ContentTypeArticle:
		return true
	}
	return false
}

func IsValidPlatform(platform string) bool {
	switch platform {
	case PlatformInstagram, PlatformYoutube, PlatformTwitter, PlatformLinkedin:
		return true
	}
	return false
}
