package dto

import (
	"testing"

	calModel "agencehub_backend/internals/features/workflow/calendar/model"
)

func strPtr(s string) *string { return &s }

func TestApplyToStampsPublishedAtOnce(t *testing.T) {
	t.Parallel()
	m := &calModel.ContentItem{
		ContentTitle:  "Reel lancement",
		ContentStatus: calModel.ContentStatusScheduled,
	}

	req := PatchContentItemRequest{ContentStatus: strPtr("published")}
	req.ApplyTo(m)

	if m.ContentStatus != calModel.ContentStatusPublished {
		t.Fatalf("status = %s, want published", m.ContentStatus)
	}
	if m.ContentPublishedAt == nil {
		t.Fatal("published_at must be stamped on transition to published")
	}

	first := *m.ContentPublishedAt
	// patch kedua dengan status sama tidak menggeser stempel
	req2 := PatchContentItemRequest{ContentStatus: strPtr("published"), ContentTitle: strPtr("Reel lancement v2")}
	req2.ApplyTo(m)
	if !m.ContentPublishedAt.Equal(first) {
		t.Fatal("published_at must not move on a repeat publish patch")
	}
	if m.ContentTitle != "Reel lancement v2" {
		t.Fatalf("title = %s, want updated title", m.ContentTitle)
	}
}

func TestCreateDefaultsToIdea(t *testing.T) {
	t.Parallel()
	req := CreateContentItemRequest{
		ContentTitle:    "Carousel conseils",
		ContentPlatform: "instagram",
	}
	m := req.ToModel()
	if m.ContentStatus != calModel.ContentStatusIdea {
		t.Fatalf("status = %s, want idea", m.ContentStatus)
	}
	if m.ContentPlatform != calModel.ContentPlatformInstagram {
		t.Fatalf("platform = %s, want instagram", m.ContentPlatform)
	}
}
