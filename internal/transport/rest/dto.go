package rest

import (
	"time"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
	"github.com/heartmarshall/trendplan-backend/internal/service/calendar"
	"github.com/heartmarshall/trendplan-backend/internal/service/calendar/planner"
	"github.com/heartmarshall/trendplan-backend/internal/service/trend"
)

type entryResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	TopicID   *string   `json:"topicId,omitempty"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	Score     *float64  `json:"score,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toEntryResponse(e domain.CalendarEntry) entryResponse {
	return entryResponse{
		ID:        e.ID.String(),
		Date:      domain.FormatDate(e.Date),
		Time:      e.ScheduledTime.String(),
		TopicID:   e.TopicID,
		Title:     e.Title,
		Status:    e.Status.String(),
		Source:    e.Source.String(),
		Score:     e.Score,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toEntryResponses(entries []domain.CalendarEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

type reportResponse struct {
	TopicsConsidered       int `json:"topicsConsidered"`
	TopicsFiltered         int `json:"topicsFiltered"`
	TopicsAlreadyScheduled int `json:"topicsAlreadyScheduled"`
	EligibleDates          int `json:"eligibleDates"`
	Assigned               int `json:"assigned"`
	TopicShortfall         int `json:"topicShortfall"`
	CapacityShortfall      int `json:"capacityShortfall"`
}

func toReportResponse(r planner.Report) reportResponse {
	return reportResponse{
		TopicsConsidered:       r.TopicsConsidered,
		TopicsFiltered:         r.TopicsFiltered,
		TopicsAlreadyScheduled: r.TopicsAlreadyScheduled,
		EligibleDates:          r.EligibleDates,
		Assigned:               r.Assigned,
		TopicShortfall:         r.TopicShortfall,
		CapacityShortfall:      r.CapacityShortfall,
	}
}

type generateResponse struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Entries  []entryResponse `json:"entries"`
	Removed  int             `json:"removed"`
	Report   reportResponse  `json:"report"`
	Warnings []string        `json:"warnings"`
}

func toGenerateResponse(r *calendar.GenerateResult) generateResponse {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return generateResponse{
		From:     domain.FormatDate(r.From),
		To:       domain.FormatDate(r.To),
		Entries:  toEntryResponses(r.Entries),
		Removed:  r.Removed,
		Report:   toReportResponse(r.Report),
		Warnings: warnings,
	}
}

type preferencesResponse struct {
	Niches           []string   `json:"niches"`
	FrequencyPerWeek int        `json:"frequencyPerWeek"`
	PreferredDays    []int      `json:"preferredDays"`
	PreferredTime    string     `json:"preferredTime"`
	Timezone         string     `json:"timezone"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

func toPreferencesResponse(p domain.UserPreferences) preferencesResponse {
	niches := append([]string{}, p.Niches...)
	days := make([]int, 0, len(p.PreferredDays))
	for _, d := range p.PreferredDays {
		days = append(days, int(d))
	}
	resp := preferencesResponse{
		Niches:           niches,
		FrequencyPerWeek: p.FrequencyPerWeek,
		PreferredDays:    days,
		PreferredTime:    p.PreferredTime.String(),
		Timezone:         p.Timezone,
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = &p.UpdatedAt
	}
	return resp
}

type alertResponse struct {
	ID        string    `json:"id"`
	TopicID   string    `json:"topicId"`
	Niche     string    `json:"niche,omitempty"`
	Title     string    `json:"title,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAlertResponse(a domain.AlertRecord) alertResponse {
	return alertResponse{
		ID:        a.ID.String(),
		TopicID:   a.TopicID,
		Niche:     a.Niche,
		Title:     a.Title,
		Status:    a.Status.String(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type trendResponse struct {
	ID         string  `json:"id"`
	Niche      string  `json:"niche"`
	Title      string  `json:"title"`
	Views      int64   `json:"views"`
	GrowthRate float64 `json:"growthRate"`
	Difficulty string  `json:"difficulty"`
	Score      float64 `json:"score"`
	Saved      bool    `json:"saved"`
}

type trendListResponse struct {
	Topics   []trendResponse `json:"topics"`
	Warnings []string        `json:"warnings"`
}

func toTrendListResponse(r *trend.ListResult) trendListResponse {
	topics := make([]trendResponse, 0, len(r.Topics))
	for _, t := range r.Topics {
		topics = append(topics, trendResponse{
			ID:         t.Topic.ID,
			Niche:      t.Topic.Niche,
			Title:      t.Topic.Title,
			Views:      t.Topic.Metrics.Views,
			GrowthRate: t.Topic.Metrics.GrowthRate,
			Difficulty: t.Topic.Metrics.Difficulty.String(),
			Score:      t.Score,
			Saved:      t.Saved,
		})
	}
	warnings := r.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return trendListResponse{Topics: topics, Warnings: warnings}
}
