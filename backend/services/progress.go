package services

import (
	"math"
	"time"

	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/utils"
)

func countCompleted(subject models.Subject) int {
	n := 0
	for _, t := range subject.Topics {
		if t.Completed {
			n++
		}
	}
	return n
}

func completionRatio(subject models.Subject) float64 {
	if len(subject.Topics) == 0 {
		return 0
	}
	return float64(countCompleted(subject)) / float64(len(subject.Topics)) * 100
}

// CompletionPercent is the rounded share of completed topics; 0 for a subject
// without topics.
func CompletionPercent(subject models.Subject) int {
	return int(math.Round(completionRatio(subject)))
}

// BuildOverview aggregates per-subject progress. The overall figure is the
// mean of the unrounded subject percentages, rounded once.
func BuildOverview(subjects []models.Subject, today time.Time) models.ProgressOverview {
	overview := models.ProgressOverview{Subjects: make([]models.SubjectProgress, 0, len(subjects))}

	sum := 0.0
	for _, subject := range subjects {
		completed := countCompleted(subject)
		total := len(subject.Topics)
		sum += completionRatio(subject)

		overview.TotalTopics += total
		overview.CompletedTopics += completed
		overview.Subjects = append(overview.Subjects, models.SubjectProgress{
			SubjectID: subject.ID,
			Name:      subject.Name,
			Icon:      subject.Icon,
			Color:     subject.Color,
			Completed: completed,
			Total:     total,
			Remaining: total - completed,
			Percent:   CompletionPercent(subject),
		})

		for _, t := range subject.Topics {
			if t.Completed {
				continue
			}
			if due, err := utils.ParseDate(t.DueDate); err == nil && due.Before(today) {
				overview.OverdueTopics++
			}
		}
	}

	overview.PendingTopics = overview.TotalTopics - overview.CompletedTopics
	if len(subjects) > 0 {
		overview.OverallProgress = int(math.Round(sum / float64(len(subjects))))
	}
	return overview
}
