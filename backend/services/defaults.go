package services

import "syllabus-tracker/backend/models"

// DefaultSubjects returns a fresh copy of the seed syllabus written on first load.
func DefaultSubjects() []models.Subject {
	return []models.Subject{
		{
			ID:    "math",
			Name:  "Mathematics",
			Icon:  models.IconCalculator,
			Color: "#3b82f6",
			Topics: []models.Topic{
				{ID: "calc1", Name: "Differential Calculus", Completed: true, DueDate: "2024-01-15", CompletedBy: "John Doe", CompletedAt: "2024-01-15"},
				{ID: "calc2", Name: "Integral Calculus", Completed: true, DueDate: "2024-01-20", CompletedBy: "Jane Smith", CompletedAt: "2024-01-18"},
				{ID: "algebra", Name: "Linear Algebra", DueDate: "2024-01-25"},
				{ID: "stats", Name: "Statistics", DueDate: "2024-02-01"},
			},
		},
		{
			ID:    "physics",
			Name:  "Physics",
			Icon:  models.IconAtom,
			Color: "#10b981",
			Topics: []models.Topic{
				{ID: "mechanics", Name: "Classical Mechanics", Completed: true, DueDate: "2024-01-18", CompletedBy: "Mike Johnson", CompletedAt: "2024-01-18"},
				{ID: "thermo", Name: "Thermodynamics", DueDate: "2024-01-28"},
				{ID: "waves", Name: "Wave Optics", DueDate: "2024-02-05"},
			},
		},
		{
			ID:    "chemistry",
			Name:  "Chemistry",
			Icon:  models.IconFlaskConical,
			Color: "#f59e0b",
			Topics: []models.Topic{
				{ID: "organic", Name: "Organic Chemistry", Completed: true, DueDate: "2024-01-22", CompletedBy: "Sarah Wilson", CompletedAt: "2024-01-22"},
				{ID: "inorganic", Name: "Inorganic Chemistry", DueDate: "2024-01-30"},
				{ID: "physical", Name: "Physical Chemistry", DueDate: "2024-02-08"},
			},
		},
		{
			ID:    "english",
			Name:  "English Literature",
			Icon:  models.IconPenTool,
			Color: "#8b5cf6",
			Topics: []models.Topic{
				{ID: "shakespeare", Name: "Shakespeare Studies", Completed: true, DueDate: "2024-01-12", CompletedBy: "Emily Davis", CompletedAt: "2024-01-12"},
				{ID: "poetry", Name: "Modern Poetry", Completed: true, DueDate: "2024-01-19", CompletedBy: "Robert Brown", CompletedAt: "2024-01-19"},
				{ID: "prose", Name: "Contemporary Prose", DueDate: "2024-02-02"},
			},
		},
	}
}
