package models

// SubjectProgress is the completion of one subject.
type SubjectProgress struct {
	SubjectID string `json:"subjectId"`
	Name      string `json:"name"`
	Icon      Icon   `json:"icon"`
	Color     string `json:"color"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Remaining int    `json:"remaining"`
	Percent   int    `json:"percent"`
}

// ProgressOverview rolls every subject up into one figure.
type ProgressOverview struct {
	OverallProgress int               `json:"overallProgress"`
	TotalTopics     int               `json:"totalTopics"`
	CompletedTopics int               `json:"completedTopics"`
	PendingTopics   int               `json:"pendingTopics"`
	OverdueTopics   int               `json:"overdueTopics"`
	Subjects        []SubjectProgress `json:"subjects"`
}

// Dashboard is everything the front page renders after a (re)load.
type Dashboard struct {
	Subjects   []Subject        `json:"subjects"`
	Activities []Activity       `json:"activities"`
	Alerts     []Alert          `json:"alerts"`
	Progress   ProgressOverview `json:"progress"`
}
