package usecase

import (
	"context"
	"math"
	"sort"
	"strconv"

	"github.com/prospectdesk/prospector/internal/entity"
)

const rateTableLimit = 15

type AnalyticsUseCase struct {
	Store ContactStore
}

func NewAnalyticsUseCase(store ContactStore) *AnalyticsUseCase {
	return &AnalyticsUseCase{Store: store}
}

// Execute computes yes-rates overall, by company, by state, and by the
// hour/weekday of the most recent touch. Unparseable touch timestamps are
// simply left out of the time buckets.
func (uc *AnalyticsUseCase) Execute(ctx context.Context) *AnalyticsOutput {
	contacts := uc.Store.All()

	out := &AnalyticsOutput{Total: len(contacts)}
	byCompany := map[string]*RateRow{}
	byState := map[string]*RateRow{}
	byHour := map[string]*RateRow{}
	byWeekday := map[string]*RateRow{}

	for _, c := range contacts {
		attempted := c.Attempted()
		yes := c.Status == entity.StatusYes
		if attempted {
			out.Attempted++
		}
		if yes {
			out.Yes++
		}

		bump(byCompany, c.Company, attempted, yes)
		bump(byState, c.State, attempted, yes)

		if raw := c.TouchDateTime(); raw != "" {
			if t, err := entity.ParseDateTime(raw); err == nil {
				bump(byHour, strconv.Itoa(t.Hour()), attempted, yes)
				bump(byWeekday, t.Weekday().String(), attempted, yes)
			}
		}
	}

	out.YesRate = yesRate(out.Yes, out.Attempted)
	out.ByCompany = rateTable(byCompany, rateTableLimit)
	out.ByState = rateTable(byState, rateTableLimit)
	out.ByHour = rateTable(byHour, 24)
	out.ByWeekday = rateTable(byWeekday, 7)
	return out
}

func bump(m map[string]*RateRow, key string, attempted, yes bool) {
	row, ok := m[key]
	if !ok {
		row = &RateRow{Key: key}
		m[key] = row
	}
	if attempted {
		row.Attempted++
	}
	if yes {
		row.Yes++
	}
}

func yesRate(yes, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return math.Round(float64(yes)/float64(attempted)*1000) / 10
}

// rateTable keeps only groups with at least one attempt, sorted by rate
// then volume, capped at limit.
func rateTable(m map[string]*RateRow, limit int) []RateRow {
	rows := make([]RateRow, 0, len(m))
	for _, row := range m {
		if row.Attempted == 0 {
			continue
		}
		row.YesRate = yesRate(row.Yes, row.Attempted)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].YesRate != rows[j].YesRate {
			return rows[i].YesRate > rows[j].YesRate
		}
		if rows[i].Attempted != rows[j].Attempted {
			return rows[i].Attempted > rows[j].Attempted
		}
		return rows[i].Key < rows[j].Key
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
