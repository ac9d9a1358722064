package alert

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

const (
	MaxTopicIDLength = 128
	MaxTitleLength   = 200
)

// TopicInput identifies the topic being saved or dismissed. Niche and title
// are kept for display only.
type TopicInput struct {
	TopicID string
	Niche   string
	Title   string
}

// Validate checks all fields and collects all errors.
func (i TopicInput) Validate() error {
	var errs []domain.FieldError

	id := strings.TrimSpace(i.TopicID)
	if id == "" {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	} else if len(id) > MaxTopicIDLength {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: fmt.Sprintf("max %d characters", MaxTopicIDLength)})
	}
	if len([]rune(strings.TrimSpace(i.Title))) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput filters the alert list.
type ListInput struct {
	Status *domain.AlertStatus // nil = all
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.Status != nil && !i.Status.IsValid() {
		return domain.NewValidationError("status", "invalid value")
	}
	return nil
}
