package services

import (
	"sort"
	"strings"
	"time"

	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/utils"
)

// AlertID identifies the alert of one topic.
func AlertID(subjectID, topicID string) string {
	return subjectID + "-" + topicID
}

// SeverityFor grades how late a topic is: more than 5 days is high, more
// than 2 is medium, anything else low.
func SeverityFor(daysOverdue int) models.Severity {
	switch {
	case daysOverdue > 5:
		return models.SeverityHigh
	case daysOverdue > 2:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// DeriveAlerts lists every pending topic whose due date is before today,
// most overdue first. Equal lateness keeps subject/topic order. Topics with
// an unreadable due date are skipped.
func DeriveAlerts(subjects []models.Subject, today time.Time) []models.Alert {
	alerts := []models.Alert{}
	for _, subject := range subjects {
		for _, topic := range subject.Topics {
			if topic.Completed {
				continue
			}
			due, err := utils.ParseDate(topic.DueDate)
			if err != nil {
				continue
			}
			days := utils.DaysBetween(due, today)
			if days <= 0 {
				continue
			}
			alerts = append(alerts, models.Alert{
				ID:          AlertID(subject.ID, topic.ID),
				Topic:       topic.Name,
				Subject:     subject.Name,
				DaysOverdue: days,
				Severity:    SeverityFor(days),
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysOverdue > alerts[j].DaysOverdue
	})
	return alerts
}

// FilterAlerts keeps alerts whose topic or subject contains search
// (case-insensitive) and whose severity matches. An empty or "all" severity
// matches everything.
func FilterAlerts(alerts []models.Alert, search, severity string) []models.Alert {
	search = strings.ToLower(strings.TrimSpace(search))
	out := []models.Alert{}
	for _, a := range alerts {
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Topic), search) &&
			!strings.Contains(strings.ToLower(a.Subject), search) {
			continue
		}
		if severity != "" && severity != "all" && string(a.Severity) != severity {
			continue
		}
		out = append(out, a)
	}
	return out
}
