package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"syllabus-tracker/backend/models"
)

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		days int
		want models.Severity
	}{
		{1, models.SeverityLow},
		{2, models.SeverityLow},
		{3, models.SeverityMedium},
		{5, models.SeverityMedium},
		{6, models.SeverityHigh},
		{40, models.SeverityHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SeverityFor(tt.days), "days=%d", tt.days)
	}
}

func TestDeriveAlertsBoundaries(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	dueAgo := func(days int) string { return today.AddDate(0, 0, -days).Format("2006-01-02") }

	subjects := []models.Subject{{
		ID: "s", Name: "Subject",
		Topics: []models.Topic{
			{ID: "tomorrow", Name: "Tomorrow", DueDate: dueAgo(-1)},
			{ID: "today", Name: "Today", DueDate: dueAgo(0)},
			{ID: "d2", Name: "Two", DueDate: dueAgo(2)},
			{ID: "d3", Name: "Three", DueDate: dueAgo(3)},
			{ID: "d5", Name: "Five", DueDate: dueAgo(5)},
			{ID: "d6", Name: "Six", DueDate: dueAgo(6)},
			{ID: "done", Name: "Done", DueDate: dueAgo(9), Completed: true},
			{ID: "bad", Name: "Bad date", DueDate: "someday"},
		},
	}}

	alerts := DeriveAlerts(subjects, today)

	got := map[string]models.Alert{}
	for _, a := range alerts {
		got[a.ID] = a
	}
	assert.Len(t, alerts, 4)
	assert.NotContains(t, got, "s-today")
	assert.NotContains(t, got, "s-tomorrow")
	assert.NotContains(t, got, "s-done")
	assert.NotContains(t, got, "s-bad")
	assert.Equal(t, models.SeverityLow, got["s-d2"].Severity)
	assert.Equal(t, models.SeverityMedium, got["s-d3"].Severity)
	assert.Equal(t, models.SeverityMedium, got["s-d5"].Severity)
	assert.Equal(t, models.SeverityHigh, got["s-d6"].Severity)
	assert.Equal(t, 6, alerts[0].DaysOverdue)
	assert.Equal(t, 2, alerts[3].DaysOverdue)
}

func TestDeriveAlertsStableTies(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	subjects := []models.Subject{
		{ID: "a", Name: "A", Topics: []models.Topic{
			{ID: "1", Name: "A1", DueDate: "2024-05-08"},
			{ID: "2", Name: "A2", DueDate: "2024-05-01"},
		}},
		{ID: "b", Name: "B", Topics: []models.Topic{
			{ID: "1", Name: "B1", DueDate: "2024-05-08"},
		}},
	}

	alerts := DeriveAlerts(subjects, today)
	ids := []string{}
	for _, a := range alerts {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a-2", "a-1", "b-1"}, ids)
}

func TestDeriveAlertsEmpty(t *testing.T) {
	alerts := DeriveAlerts(nil, time.Now())
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestFilterAlerts(t *testing.T) {
	alerts := []models.Alert{
		{ID: "1", Topic: "Linear Algebra", Subject: "Mathematics", Severity: models.SeverityHigh},
		{ID: "2", Topic: "Thermodynamics", Subject: "Physics", Severity: models.SeverityMedium},
		{ID: "3", Topic: "Inorganic Chemistry", Subject: "Chemistry", Severity: models.SeverityLow},
	}

	ids := func(as []models.Alert) []string {
		out := []string{}
		for _, a := range as {
			out = append(out, a.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterAlerts(alerts, "", "")))
	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterAlerts(alerts, "", "all")))
	assert.Equal(t, []string{"2"}, ids(FilterAlerts(alerts, "PHYS", "")))
	assert.Equal(t, []string{"3"}, ids(FilterAlerts(alerts, "chem", "low")))
	assert.Equal(t, []string{}, ids(FilterAlerts(alerts, "chem", "high")))
	assert.Equal(t, []string{"1"}, ids(FilterAlerts(alerts, "", "high")))
}
