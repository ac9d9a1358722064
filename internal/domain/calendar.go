package domain

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEntry is one planned piece of content on a calendar day.
type CalendarEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Date          time.Time // calendar day at 00:00 UTC
	TopicID       *string   // nil for manual entries without a backing trend
	Title         string
	Status        EntryStatus
	Source        EntrySource
	ScheduledTime TimeOfDay
	Score         *float64 // set on generated entries
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CalendarEntryUpdateParams carries the optional fields of an entry update.
type CalendarEntryUpdateParams struct {
	Title  *string
	Date   *time.Time
	Status *EntryStatus
	Source *EntrySource
}

// generatedEntryNamespace scopes deterministic IDs of generated entries.
var generatedEntryNamespace = uuid.MustParse("6f1c2a8e-3d4b-5c6d-8e9f-0a1b2c3d4e5f")

// GeneratedEntryID derives a stable ID for a generated entry so identical
// generation runs produce identical rows.
func GeneratedEntryID(userID uuid.UUID, date time.Time, topicID string) uuid.UUID {
	key := userID.String() + "|" + FormatDate(date) + "|" + topicID
	return uuid.NewSHA1(generatedEntryNamespace, []byte(key))
}
