// file: internals/features/workflow/calendar/model/content_item_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM
// =========================================================

type ContentStatus string

const (
	ContentStatusIdea      ContentStatus = "idea"
	ContentStatusDrafted   ContentStatus = "drafted"
	ContentStatusScheduled ContentStatus = "scheduled"
	ContentStatusPublished ContentStatus = "published"
)

func (s ContentStatus) Valid() bool {
	switch s {
	case ContentStatusIdea, ContentStatusDrafted, ContentStatusScheduled, ContentStatusPublished:
		return true
	}
	return false
}

type ContentPlatform string

const (
	ContentPlatformInstagram ContentPlatform = "instagram"
	ContentPlatformTiktok    ContentPlatform = "tiktok"
	ContentPlatformFacebook  ContentPlatform = "facebook"
	ContentPlatformLinkedin  ContentPlatform = "linkedin"
	ContentPlatformYoutube   ContentPlatform = "youtube"
)

func (p ContentPlatform) Valid() bool {
	switch p {
	case ContentPlatformInstagram, ContentPlatformTiktok, ContentPlatformFacebook,
		ContentPlatformLinkedin, ContentPlatformYoutube:
		return true
	}
	return false
}

// =========================================================
// MODEL — item kalender editorial
// =========================================================

type ContentItem struct {
	ContentID uuid.UUID `gorm:"column:content_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"content_id"`

	ContentTitle   string  `gorm:"column:content_title;type:varchar(160);not null" json:"content_title"`
	ContentCaption *string `gorm:"column:content_caption;type:text" json:"content_caption,omitempty"`

	ContentClientID *uuid.UUID `gorm:"column:content_client_id;type:uuid;index" json:"content_client_id,omitempty"`

	ContentPlatform ContentPlatform `gorm:"column:content_platform;type:varchar(20);not null" json:"content_platform"`
	ContentStatus   ContentStatus   `gorm:"column:content_status;type:varchar(20);not null;default:'idea';index" json:"content_status"`

	ContentScheduledAt *time.Time `gorm:"column:content_scheduled_at;index" json:"content_scheduled_at,omitempty"`
	ContentPublishedAt *time.Time `gorm:"column:content_published_at" json:"content_published_at,omitempty"`

	ContentCreatedAt time.Time      `gorm:"column:content_created_at;not null;default:now()" json:"content_created_at"`
	ContentUpdatedAt time.Time      `gorm:"column:content_updated_at;not null;default:now()" json:"content_updated_at"`
	ContentDeletedAt gorm.DeletedAt `gorm:"column:content_deleted_at;index" json:"-"`
}

func (ContentItem) TableName() string {
	return "content_items"
}

func (m *ContentItem) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ContentCreatedAt.IsZero() {
		m.ContentCreatedAt = now
	}
	m.ContentUpdatedAt = now
	return nil
}

func (m *ContentItem) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ContentUpdatedAt = time.Now()
	return nil
}
