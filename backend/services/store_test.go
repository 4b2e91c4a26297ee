package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/storage"
)

// 2024-01-31 mid-morning: after every default due date up to the 30th.
var frozenNow = time.Date(2024, 1, 31, 10, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*SyllabusStore, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	return NewSyllabusStore(kv, WithClock(func() time.Time { return frozenNow })), kv
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestGetSubjectsSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	store, kv := newTestStore(t)

	subjects, err := store.GetSubjects(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 4)

	names := []string{}
	counts := []int{}
	for _, s := range subjects {
		names = append(names, s.Name)
		counts = append(counts, len(s.Topics))
	}
	assert.Equal(t, []string{"Mathematics", "Physics", "Chemistry", "English Literature"}, names)
	assert.Equal(t, []int{4, 3, 3, 3}, counts)
	assert.Equal(t, DefaultSubjects(), subjects)

	// seeding persisted the blob
	_, ok, err := kv.Get(ctx, storage.SubjectsKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSaveSubjectsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	in := []models.Subject{
		{
			ID: "bio", Name: "Biology", Icon: models.IconGlobe, Color: "#000000",
			Topics: []models.Topic{
				{ID: "cells", Name: "Cells", Description: "Intro", DueDate: "2024-03-01"},
				{ID: "dna", Name: "DNA", DueDate: "2024-03-08", Completed: true, CompletedBy: "Alice", CompletedAt: "2024-03-07"},
			},
		},
		{ID: "empty", Name: "Empty", Icon: models.IconBookOpen, Color: "#ffffff", Topics: []models.Topic{}},
	}
	require.NoError(t, store.SaveSubjects(ctx, in))

	out, err := store.GetSubjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestGetActivitiesEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	activities, err := store.GetActivities(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, activities)
	assert.Empty(t, activities)
}

func TestAddActivityCapsLog(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	for i := 0; i < ActivityLogLimit+1; i++ {
		a, err := store.AddActivity(ctx, models.Activity{
			Topic: fmt.Sprintf("topic-%d", i), Subject: "Math", CompletedBy: "System", Type: models.ActivityAdded,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, "2024-01-31", a.Date)
	}

	activities, err := store.GetActivities(ctx)
	require.NoError(t, err)
	require.Len(t, activities, ActivityLogLimit)
	assert.Equal(t, "topic-50", activities[0].Topic)
	assert.Equal(t, "topic-1", activities[ActivityLogLimit-1].Topic)
}

func TestAddTopic(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	created, err := store.AddTopic(ctx, "physics", models.Topic{Name: "Quantum Mechanics", DueDate: "2024-02-20"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)

	subjects, err := store.GetSubjects(ctx)
	require.NoError(t, err)
	physics := subjects[1]
	require.Len(t, physics.Topics, 4)
	last := physics.Topics[3]
	assert.Equal(t, *created, last)
	assert.Equal(t, "Quantum Mechanics", last.Name)

	seen := map[string]int{}
	for _, s := range subjects {
		for _, tp := range s.Topics {
			seen[tp.ID]++
		}
	}
	assert.Equal(t, 1, seen[created.ID])

	activities, err := store.GetActivities(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActivityAdded, activities[0].Type)
	assert.Equal(t, "System", activities[0].CompletedBy)
	assert.Equal(t, "Quantum Mechanics", activities[0].Topic)
	assert.Equal(t, "Physics", activities[0].Subject)
}

func TestAddTopicUnknownSubject(t *testing.T) {
	ctx := context.Background()
	store, kv := newTestStore(t)
	_, err := store.GetSubjects(ctx)
	require.NoError(t, err)
	before, _, _ := kv.Get(ctx, storage.SubjectsKey)

	created, err := store.AddTopic(ctx, "history", models.Topic{Name: "Rome", DueDate: "2024-02-20"})
	require.NoError(t, err)
	assert.Nil(t, created)

	after, _, _ := kv.Get(ctx, storage.SubjectsKey)
	assert.Equal(t, before, after)
	activities, _ := store.GetActivities(ctx)
	assert.Empty(t, activities)
}

func TestUpdateTopicCompletionRecordsActivity(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	updated, err := store.UpdateTopic(ctx, "math", "algebra", models.TopicUpdate{
		Completed:   boolPtr(true),
		CompletedBy: strPtr("Alice"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Alice", updated.CompletedBy)
	assert.Equal(t, "Linear Algebra", updated.Name)
	assert.Equal(t, "2024-01-25", updated.DueDate)

	activities, err := store.GetActivities(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, activities)
	assert.Equal(t, models.ActivityCompleted, activities[0].Type)
	assert.Equal(t, "Alice", activities[0].CompletedBy)
	assert.Equal(t, "Linear Algebra", activities[0].Topic)
	assert.Equal(t, "Mathematics", activities[0].Subject)
}

func TestUpdateTopicActor(t *testing.T) {
	tests := []struct {
		name      string
		update    models.TopicUpdate
		wantActor string
		wantLog   bool
	}{
		{name: "no actor", update: models.TopicUpdate{Completed: boolPtr(true)}, wantActor: "Unknown", wantLog: true},
		{name: "empty actor", update: models.TopicUpdate{Completed: boolPtr(true), CompletedBy: strPtr("")}, wantActor: "Unknown", wantLog: true},
		{name: "uncomplete", update: models.TopicUpdate{Completed: boolPtr(false)}},
		{name: "rename only", update: models.TopicUpdate{Name: strPtr("Stats 101")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store, _ := newTestStore(t)

			_, err := store.UpdateTopic(ctx, "math", "stats", tt.update)
			require.NoError(t, err)

			activities, err := store.GetActivities(ctx)
			require.NoError(t, err)
			if !tt.wantLog {
				assert.Empty(t, activities)
				return
			}
			require.Len(t, activities, 1)
			assert.Equal(t, tt.wantActor, activities[0].CompletedBy)
		})
	}
}

func TestUpdateTopicShallowMerge(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.UpdateTopic(ctx, "math", "calc1", models.TopicUpdate{Description: strPtr("Limits and derivatives")})
	require.NoError(t, err)

	subjects, _ := store.GetSubjects(ctx)
	topic := subjects[0].Topics[0]
	assert.Equal(t, "Limits and derivatives", topic.Description)
	assert.Equal(t, "Differential Calculus", topic.Name)
	assert.True(t, topic.Completed)
	assert.Equal(t, "John Doe", topic.CompletedBy)
	assert.Equal(t, "2024-01-15", topic.CompletedAt)
}

func TestUpdateTopicNotFoundLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	store, kv := newTestStore(t)
	_, err := store.GetSubjects(ctx)
	require.NoError(t, err)
	before, _, _ := kv.Get(ctx, storage.SubjectsKey)

	upd := models.TopicUpdate{Completed: boolPtr(true), CompletedBy: strPtr("Alice")}

	got, err := store.UpdateTopic(ctx, "nope", "algebra", upd)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.UpdateTopic(ctx, "math", "nope", upd)
	require.NoError(t, err)
	assert.Nil(t, got)

	after, _, _ := kv.Get(ctx, storage.SubjectsKey)
	assert.Equal(t, before, after)
	activities, _ := store.GetActivities(ctx)
	assert.Empty(t, activities)
}

func TestDeleteTopic(t *testing.T) {
	ctx := context.Background()
	store, kv := newTestStore(t)

	ok, err := store.DeleteTopic(ctx, "chemistry", "inorganic")
	require.NoError(t, err)
	assert.True(t, ok)

	subjects, _ := store.GetSubjects(ctx)
	ids := []string{}
	for _, tp := range subjects[2].Topics {
		ids = append(ids, tp.ID)
	}
	assert.Equal(t, []string{"organic", "physical"}, ids)

	before, _, _ := kv.Get(ctx, storage.SubjectsKey)
	ok, err = store.DeleteTopic(ctx, "chemistry", "inorganic")
	require.NoError(t, err)
	assert.False(t, ok)
	after, _, _ := kv.Get(ctx, storage.SubjectsKey)
	assert.Equal(t, before, after)

	activities, _ := store.GetActivities(ctx)
	assert.Empty(t, activities)
}

func TestToggleTopic(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	done, err := store.ToggleTopic(ctx, "physics", "thermo", true, "Dr. Sarah Johnson")
	require.NoError(t, err)
	require.NotNil(t, done)
	assert.True(t, done.Completed)
	assert.Equal(t, "Dr. Sarah Johnson", done.CompletedBy)
	assert.Equal(t, "2024-01-31", done.CompletedAt)

	undone, err := store.ToggleTopic(ctx, "physics", "thermo", false, "Dr. Sarah Johnson")
	require.NoError(t, err)
	assert.False(t, undone.Completed)
	assert.Empty(t, undone.CompletedBy)
	assert.Empty(t, undone.CompletedAt)

	// the cleared fields are gone from the blob too
	subjects, _ := store.GetSubjects(ctx)
	raw, err := sonic.Marshal(subjects[1].Topics[1])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "completedBy")

	activities, _ := store.GetActivities(ctx)
	assert.Len(t, activities, 1)
}

func TestMarkAllComplete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	n, err := store.MarkAllComplete(ctx, "Dr. Sarah Johnson")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	subjects, _ := store.GetSubjects(ctx)
	for _, s := range subjects {
		for _, tp := range s.Topics {
			assert.True(t, tp.Completed, tp.ID)
		}
	}

	activities, _ := store.GetActivities(ctx)
	require.Len(t, activities, 7)
	assert.Equal(t, "Contemporary Prose", activities[0].Topic)
	assert.Equal(t, "Linear Algebra", activities[6].Topic)

	n, err = store.MarkAllComplete(ctx, "Dr. Sarah Johnson")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestResolveAlert(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	resolved, err := store.ResolveAlert(ctx, "physics-thermo", "Dr. Sarah Johnson")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "Thermodynamics", resolved.Name)

	alerts, err := store.GetAlerts(ctx)
	require.NoError(t, err)
	for _, a := range alerts {
		assert.NotEqual(t, "physics-thermo", a.ID)
	}

	missing, err := store.ResolveAlert(ctx, "physics-nope", "x")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestResolveAlertIgnoresTopicsWithoutAlert(t *testing.T) {
	ctx := context.Background()
	store, kv := newTestStore(t)
	_, err := store.GetSubjects(ctx)
	require.NoError(t, err)
	before, _, _ := kv.Get(ctx, storage.SubjectsKey)

	tests := []struct {
		name    string
		alertID string
	}{
		{name: "already completed", alertID: "math-calc1"},
		{name: "not yet due", alertID: "math-stats"},
		{name: "due later", alertID: "physics-waves"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.ResolveAlert(ctx, tt.alertID, "Intruder")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}

	after, _, _ := kv.Get(ctx, storage.SubjectsKey)
	assert.Equal(t, before, after)
	subjects, _ := store.GetSubjects(ctx)
	calc1 := subjects[0].Topics[0]
	assert.Equal(t, "John Doe", calc1.CompletedBy)
	assert.Equal(t, "2024-01-15", calc1.CompletedAt)
	activities, _ := store.GetActivities(ctx)
	assert.Empty(t, activities)
}

func TestGetAlertsOnDefaults(t *testing.T) {
	store, _ := newTestStore(t)

	alerts, err := store.GetAlerts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Alert{
		{ID: "math-algebra", Topic: "Linear Algebra", Subject: "Mathematics", DaysOverdue: 6, Severity: models.SeverityHigh},
		{ID: "physics-thermo", Topic: "Thermodynamics", Subject: "Physics", DaysOverdue: 3, Severity: models.SeverityMedium},
		{ID: "chemistry-inorganic", Topic: "Inorganic Chemistry", Subject: "Chemistry", DaysOverdue: 1, Severity: models.SeverityLow},
	}, alerts)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	_, err := store.AddTopic(ctx, "english", models.Topic{Name: "Drama", DueDate: "2024-03-01"})
	require.NoError(t, err)

	d, err := store.Dashboard(ctx)
	require.NoError(t, err)
	assert.Len(t, d.Subjects, 4)
	assert.Len(t, d.Activities, 1)
	assert.Len(t, d.Alerts, 3)
	assert.Equal(t, 14, d.Progress.TotalTopics)
}

func TestStoreTodayUsesLocation(t *testing.T) {
	late := time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC)
	store := NewSyllabusStore(storage.NewMemoryKV(),
		WithClock(func() time.Time { return late }),
		WithLocation(time.FixedZone("UTC+3", 3*60*60)))

	a, err := store.AddActivity(context.Background(), models.Activity{Topic: "x"})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", a.Date)
}
