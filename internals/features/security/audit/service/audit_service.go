// file: internals/features/security/audit/service/audit_service.go
package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "agencehub_backend/internals/features/security/audit/model"
)

// Record menulis satu baris security log. Best-effort: kegagalan audit
// tidak boleh menggagalkan request utama, cukup dicatat di log server.
func Record(db *gorm.DB, actorID *uuid.UUID, action string, entity string, entityID *uuid.UUID, ip string, detail string) {
	ev := model.SecurityEvent{
		SecurityEventActorID: actorID,
		SecurityEventAction:  action,
	}
	if entity != "" {
		ev.SecurityEventEntity = &entity
	}
	if entityID != nil {
		ev.SecurityEventEntityID = entityID
	}
	if ip != "" {
		ev.SecurityEventIP = &ip
	}
	if detail != "" {
		ev.SecurityEventDetail = &detail
	}

	if err := db.Create(&ev).Error; err != nil {
		log.Printf("[AUDIT ERROR] gagal tulis security event action=%s: %v", action, err)
	}
}
