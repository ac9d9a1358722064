package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertRecord is a user's saved or dismissed reaction to a trend.
type AlertRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TopicID   string
	Niche     string
	Title     string
	Status    AlertStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
