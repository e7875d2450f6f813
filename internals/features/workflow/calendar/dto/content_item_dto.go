// file: internals/features/workflow/calendar/dto/content_item_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	calModel "agencehub_backend/internals/features/workflow/calendar/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateContentItemRequest struct {
	ContentTitle       string     `json:"content_title" validate:"required,min=1,max=160"`
	ContentCaption     *string    `json:"content_caption" validate:"omitempty"`
	ContentClientID    *uuid.UUID `json:"content_client_id" validate:"omitempty"`
	ContentPlatform    string     `json:"content_platform" validate:"required,oneof=instagram tiktok facebook linkedin youtube"`
	ContentStatus      *string    `json:"content_status" validate:"omitempty,oneof=idea drafted scheduled published"`
	ContentScheduledAt *time.Time `json:"content_scheduled_at" validate:"omitempty"`
}

func (r CreateContentItemRequest) ToModel() *calModel.ContentItem {
	m := &calModel.ContentItem{
		ContentTitle:       r.ContentTitle,
		ContentCaption:     r.ContentCaption,
		ContentClientID:    r.ContentClientID,
		ContentPlatform:    calModel.ContentPlatform(r.ContentPlatform),
		ContentStatus:      calModel.ContentStatusIdea,
		ContentScheduledAt: r.ContentScheduledAt,
	}
	if r.ContentStatus != nil {
		m.ContentStatus = calModel.ContentStatus(*r.ContentStatus)
	}
	return m
}

type PatchContentItemRequest struct {
	ContentTitle       *string    `json:"content_title" validate:"omitempty,min=1,max=160"`
	ContentCaption     *string    `json:"content_caption" validate:"omitempty"`
	ContentClientID    *uuid.UUID `json:"content_client_id" validate:"omitempty"`
	ContentPlatform    *string    `json:"content_platform" validate:"omitempty,oneof=instagram tiktok facebook linkedin youtube"`
	ContentStatus      *string    `json:"content_status" validate:"omitempty,oneof=idea drafted scheduled published"`
	ContentScheduledAt *time.Time `json:"content_scheduled_at" validate:"omitempty"`
}

func (r PatchContentItemRequest) ApplyTo(m *calModel.ContentItem) {
	if r.ContentTitle != nil {
		m.ContentTitle = *r.ContentTitle
	}
	if r.ContentCaption != nil {
		m.ContentCaption = r.ContentCaption
	}
	if r.ContentClientID != nil {
		m.ContentClientID = r.ContentClientID
	}
	if r.ContentPlatform != nil {
		m.ContentPlatform = calModel.ContentPlatform(*r.ContentPlatform)
	}
	if r.ContentStatus != nil {
		next := calModel.ContentStatus(*r.ContentStatus)
		// stempel waktu publish sekali saja, saat transisi ke published
		if next == calModel.ContentStatusPublished && m.ContentStatus != calModel.ContentStatusPublished {
			now := time.Now()
			m.ContentPublishedAt = &now
		}
		m.ContentStatus = next
	}
	if r.ContentScheduledAt != nil {
		m.ContentScheduledAt = r.ContentScheduledAt
	}
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ContentItemResponse struct {
	ContentID          uuid.UUID  `json:"content_id"`
	ContentTitle       string     `json:"content_title"`
	ContentCaption     *string    `json:"content_caption,omitempty"`
	ContentClientID    *uuid.UUID `json:"content_client_id,omitempty"`
	ContentPlatform    string     `json:"content_platform"`
	ContentStatus      string     `json:"content_status"`
	ContentScheduledAt *time.Time `json:"content_scheduled_at,omitempty"`
	ContentPublishedAt *time.Time `json:"content_published_at,omitempty"`
	ContentCreatedAt   time.Time  `json:"content_created_at"`
	ContentUpdatedAt   time.Time  `json:"content_updated_at"`
}

func FromModelContentItem(m *calModel.ContentItem) ContentItemResponse {
	return ContentItemResponse{
		ContentID:          m.ContentID,
		ContentTitle:       m.ContentTitle,
		ContentCaption:     m.ContentCaption,
		ContentClientID:    m.ContentClientID,
		ContentPlatform:    string(m.ContentPlatform),
		ContentStatus:      string(m.ContentStatus),
		ContentScheduledAt: m.ContentScheduledAt,
		ContentPublishedAt: m.ContentPublishedAt,
		ContentCreatedAt:   m.ContentCreatedAt,
		ContentUpdatedAt:   m.ContentUpdatedAt,
	}
}

func FromModelContentItems(rows []calModel.ContentItem) []ContentItemResponse {
	out := make([]ContentItemResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelContentItem(&rows[i]))
	}
	return out
}
