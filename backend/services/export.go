package services

import (
	"encoding/csv"
	"html/template"
	"io"
	"time"

	"github.com/pkg/errors"

	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/utils"
)

var csvHeader = []string{"Subject", "Topic", "Status", "Due Date", "Completed By", "Completed At"}

// SelectSubjects keeps the subjects named in ids, in stored order. No ids
// selects everything.
func SelectSubjects(subjects []models.Subject, ids []string) []models.Subject {
	if len(ids) == 0 {
		return subjects
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := []models.Subject{}
	for _, s := range subjects {
		if want[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

// ExportFilename is the download name of a report generated on day.
func ExportFilename(ext string, day time.Time) string {
	return "syllabus-progress-" + day.Format(utils.DateLayout) + "." + ext
}

func topicStatus(t models.Topic) string {
	if t.Completed {
		return "Completed"
	}
	return "Pending"
}

// WriteCSV writes one row per topic under the report header.
func WriteCSV(w io.Writer, subjects []models.Subject) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, s := range subjects {
		for _, t := range s.Topics {
			row := []string{s.Name, t.Name, topicStatus(t), t.DueDate, t.CompletedBy, t.CompletedAt}
			if err := cw.Write(row); err != nil {
				return errors.Wrap(err, "write csv row")
			}
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"status":  topicStatus,
	"percent": CompletionPercent,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Syllabus Progress Report</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
h1 { color: #3b82f6; }
h2 { color: #374151; margin-top: 30px; }
table { width: 100%; border-collapse: collapse; margin: 10px 0; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f3f4f6; }
.completed { color: #10b981; font-weight: bold; }
.pending { color: #f59e0b; font-weight: bold; }
</style>
</head>
<body>
<h1>Syllabus Progress Report</h1>
<p>Generated on {{.Generated}}</p>
{{range .Subjects}}
<h2>{{.Name}} ({{percent .}}% complete)</h2>
<table>
<tr><th>Topic</th><th>Status</th><th>Due Date</th><th>Completed By</th><th>Completed At</th></tr>
{{range .Topics}}<tr>
<td>{{.Name}}</td>
<td class="{{if .Completed}}completed{{else}}pending{{end}}">{{status .}}</td>
<td>{{.DueDate}}</td>
<td>{{.CompletedBy}}</td>
<td>{{.CompletedAt}}</td>
</tr>
{{end}}</table>
{{end}}
</body>
</html>
`))

// WriteHTMLReport renders a printable report grouping topics by subject.
func WriteHTMLReport(w io.Writer, subjects []models.Subject, generated time.Time) error {
	data := struct {
		Generated string
		Subjects  []models.Subject
	}{generated.Format(utils.DateLayout), subjects}
	return errors.Wrap(reportTemplate.Execute(w, data), "render html report")
}
