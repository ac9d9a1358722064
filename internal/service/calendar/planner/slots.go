package planner

import (
	"time"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

// window is the length of the rolling frequency window in days.
const window = 7

// occupancy tracks how many entries each calendar day holds, keyed by the
// day offset from the start of the horizon (negative for days before it).
type occupancy struct {
	today     time.Time
	counts    map[int]int
	committed map[int]struct{}
	suggested map[int]struct{}
}

func newOccupancy(today time.Time, existing []domain.CalendarEntry) *occupancy {
	o := &occupancy{
		today:     today,
		counts:    make(map[int]int),
		committed: make(map[int]struct{}),
		suggested: make(map[int]struct{}),
	}
	for _, e := range existing {
		day := o.offset(e.Date)
		o.counts[day]++
		if e.Status.IsCommitted() {
			o.committed[day] = struct{}{}
		} else {
			o.suggested[day] = struct{}{}
		}
	}
	return o
}

func (o *occupancy) offset(date time.Time) int {
	return domain.DaysBetween(o.today, date)
}

func (o *occupancy) date(offset int) time.Time {
	return o.today.AddDate(0, 0, offset)
}

// claim records a newly allocated entry on day.
func (o *occupancy) claim(day int) {
	o.counts[day]++
	o.suggested[day] = struct{}{}
}

// fits reports whether one more entry on day keeps every rolling window
// that contains it within the cap.
func (o *occupancy) fits(day, capPerWeek int) bool {
	for end := day; end < day+window; end++ {
		count := 1
		for d := end - window + 1; d <= end; d++ {
			count += o.counts[d]
		}
		if count > capPerWeek {
			return false
		}
	}
	return true
}
