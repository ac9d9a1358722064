package domain

// Difficulty is the production effort ordinal of a trending topic.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Penalty maps the ordinal onto the scoring penalty: easy=0, medium=1, hard=2.
// Unknown values are treated as medium.
func (d Difficulty) Penalty() float64 {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyHard:
		return 2
	default:
		return 1
	}
}

// EntryStatus is the one-way progression of a calendar entry.
type EntryStatus string

const (
	EntryStatusSuggested EntryStatus = "suggested"
	EntryStatusConfirmed EntryStatus = "confirmed"
	EntryStatusPublished EntryStatus = "published"
)

func (s EntryStatus) String() string { return string(s) }

func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusSuggested, EntryStatusConfirmed, EntryStatusPublished:
		return true
	}
	return false
}

// IsCommitted reports whether the status occupies its date exclusively.
func (s EntryStatus) IsCommitted() bool {
	return s == EntryStatusConfirmed || s == EntryStatusPublished
}

// CanTransitionTo allows only the single forward steps
// suggested -> confirmed and confirmed -> published.
func (s EntryStatus) CanTransitionTo(next EntryStatus) bool {
	switch s {
	case EntryStatusSuggested:
		return next == EntryStatusConfirmed
	case EntryStatusConfirmed:
		return next == EntryStatusPublished
	}
	return false
}

// EntrySource records who created a calendar entry.
type EntrySource string

const (
	EntrySourceGenerated EntrySource = "generated"
	EntrySourceManual    EntrySource = "manual"
)

func (s EntrySource) String() string { return string(s) }

func (s EntrySource) IsValid() bool {
	return s == EntrySourceGenerated || s == EntrySourceManual
}

// AlertStatus is the state of a user's reaction to a trend.
type AlertStatus string

const (
	AlertStatusSaved     AlertStatus = "saved"
	AlertStatusDismissed AlertStatus = "dismissed"
)

func (s AlertStatus) String() string { return string(s) }

func (s AlertStatus) IsValid() bool {
	return s == AlertStatusSaved || s == AlertStatusDismissed
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeCalendarEntry EntityType = "CALENDAR_ENTRY"
	EntityTypePreferences   EntityType = "PREFERENCES"
	EntityTypeAlert         EntityType = "ALERT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeCalendarEntry, EntityTypePreferences, EntityTypeAlert:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate   AuditAction = "CREATE"
	AuditActionUpdate   AuditAction = "UPDATE"
	AuditActionDelete   AuditAction = "DELETE"
	AuditActionGenerate AuditAction = "GENERATE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionGenerate:
		return true
	}
	return false
}
