package calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

// entryRow mirrors a calendar_entries row for pgxscan.
type entryRow struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	EntryDate     time.Time `db:"entry_date"`
	TopicID       *string   `db:"topic_id"`
	Title         string    `db:"title"`
	Status        string    `db:"status"`
	Source        string    `db:"source"`
	ScheduledTime string    `db:"scheduled_time"`
	Score         *float64  `db:"score"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r entryRow) toDomain() domain.CalendarEntry {
	// Stored values pass the column check, so a parse failure leaves the zero time.
	at, _ := domain.ParseTimeOfDay(r.ScheduledTime)
	return domain.CalendarEntry{
		ID:            r.ID,
		UserID:        r.UserID,
		Date:          domain.DateOf(r.EntryDate),
		TopicID:       r.TopicID,
		Title:         r.Title,
		Status:        domain.EntryStatus(r.Status),
		Source:        domain.EntrySource(r.Source),
		ScheduledTime: at,
		Score:         r.Score,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toDomainEntries(rows []entryRow) []domain.CalendarEntry {
	out := make([]domain.CalendarEntry, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
