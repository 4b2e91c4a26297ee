package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/storage"
	"syllabus-tracker/backend/utils"
)

// ActivityLogLimit is how many activities are kept, newest first.
const ActivityLogLimit = 50

const (
	actorSystem  = "System"
	actorUnknown = "Unknown"
)

// SyllabusStore reads and mutates the subjects and activity blobs.
// Not-found mutations are silent no-ops: they report that nothing was
// applied and leave storage untouched.
type SyllabusStore struct {
	kv  storage.KV
	now func() time.Time
	loc *time.Location
	log *slog.Logger

	// serializes read-modify-write sequences inside this process
	mu sync.Mutex
}

// StoreOption customizes a SyllabusStore at construction.
type StoreOption func(*SyllabusStore)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) StoreOption {
	return func(s *SyllabusStore) { s.now = now }
}

// WithLocation sets the timezone that decides the calendar date.
func WithLocation(loc *time.Location) StoreOption {
	return func(s *SyllabusStore) { s.loc = loc }
}

// WithLogger sets the store logger; the default discards.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *SyllabusStore) { s.log = l }
}

// NewSyllabusStore builds a store over kv using UTC and the wall clock
// unless options say otherwise.
func NewSyllabusStore(kv storage.KV, opts ...StoreOption) *SyllabusStore {
	s := &SyllabusStore{kv: kv, now: time.Now, loc: time.UTC, log: utils.DiscardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today is the current calendar date in the store's timezone.
func (s *SyllabusStore) Today() time.Time {
	return utils.Today(s.now(), s.loc)
}

func (s *SyllabusStore) todayString() string {
	return s.Today().Format(utils.DateLayout)
}

// GetSubjects returns the stored subjects, seeding the defaults when none exist.
func (s *SyllabusStore) GetSubjects(ctx context.Context) ([]models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSubjects(ctx)
}

// SaveSubjects overwrites the whole subjects blob.
func (s *SyllabusStore) SaveSubjects(ctx context.Context, subjects []models.Subject) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeSubjects(ctx, subjects)
}

// GetActivities returns the activity log, newest first.
func (s *SyllabusStore) GetActivities(ctx context.Context) ([]models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadActivities(ctx)
}

// AddActivity stamps a new id and today's date on a, prepends it to the log
// and drops everything past ActivityLogLimit.
func (s *SyllabusStore) AddActivity(ctx context.Context, a models.Activity) (models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendActivity(ctx, a)
}

// AddTopic appends topic to the subject with a fresh id. It returns nil when
// the subject does not exist.
func (s *SyllabusStore) AddTopic(ctx context.Context, subjectID string, topic models.Topic) (*models.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subjects, err := s.loadSubjects(ctx)
	if err != nil {
		return nil, err
	}
	si := findSubject(subjects, subjectID)
	if si < 0 {
		s.log.Debug("add topic: subject not found", "subject_id", subjectID)
		return nil, nil
	}

	topic.ID = uuid.NewString()
	subjects[si].Topics = append(subjects[si].Topics, topic)
	if err := s.writeSubjects(ctx, subjects); err != nil {
		return nil, err
	}

	if _, err := s.appendActivity(ctx, models.Activity{
		Topic:       topic.Name,
		Subject:     subjects[si].Name,
		CompletedBy: actorSystem,
		Type:        models.ActivityAdded,
	}); err != nil {
		return nil, err
	}
	return &topic, nil
}

// UpdateTopic merges upd onto the topic. A completion records an activity
// attributed to upd.CompletedBy. It returns nil when subject or topic is missing.
func (s *SyllabusStore) UpdateTopic(ctx context.Context, subjectID, topicID string, upd models.TopicUpdate) (*models.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTopic(ctx, subjectID, topicID, upd)
}

// DeleteTopic removes the topic and reports whether it existed.
func (s *SyllabusStore) DeleteTopic(ctx context.Context, subjectID, topicID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subjects, err := s.loadSubjects(ctx)
	if err != nil {
		return false, err
	}
	si, ti := findTopic(subjects, subjectID, topicID)
	if ti < 0 {
		return false, nil
	}

	topics := subjects[si].Topics
	subjects[si].Topics = append(topics[:ti:ti], topics[ti+1:]...)
	if err := s.writeSubjects(ctx, subjects); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleTopic marks a topic done by actor today, or clears its completion.
func (s *SyllabusStore) ToggleTopic(ctx context.Context, subjectID, topicID string, completed bool, actor string) (*models.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTopic(ctx, subjectID, topicID, s.completionUpdate(completed, actor))
}

// MarkAllComplete completes every pending topic on behalf of actor and
// returns how many changed.
func (s *SyllabusStore) MarkAllComplete(ctx context.Context, actor string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subjects, err := s.loadSubjects(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, subject := range subjects {
		for _, topic := range subject.Topics {
			if topic.Completed {
				continue
			}
			if _, err := s.updateTopic(ctx, subject.ID, topic.ID, s.completionUpdate(true, actor)); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

// ResolveAlert completes the topic behind a live alert. It returns nil when
// alertID is not among the alerts derived right now, so completed topics and
// topics not yet due are left alone.
func (s *SyllabusStore) ResolveAlert(ctx context.Context, alertID, actor string) (*models.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subjects, err := s.loadSubjects(ctx)
	if err != nil {
		return nil, err
	}
	live := false
	for _, a := range DeriveAlerts(subjects, s.Today()) {
		if a.ID == alertID {
			live = true
			break
		}
	}
	if !live {
		s.log.Debug("resolve alert: no such alert", "alert_id", alertID)
		return nil, nil
	}

	for _, subject := range subjects {
		for _, topic := range subject.Topics {
			if AlertID(subject.ID, topic.ID) == alertID {
				return s.updateTopic(ctx, subject.ID, topic.ID, s.completionUpdate(true, actor))
			}
		}
	}
	return nil, nil
}

// GetAlerts derives overdue alerts from the stored subjects.
func (s *SyllabusStore) GetAlerts(ctx context.Context) ([]models.Alert, error) {
	subjects, err := s.GetSubjects(ctx)
	if err != nil {
		return nil, err
	}
	return DeriveAlerts(subjects, s.Today()), nil
}

// Progress summarizes completion across the stored subjects.
func (s *SyllabusStore) Progress(ctx context.Context) (models.ProgressOverview, error) {
	subjects, err := s.GetSubjects(ctx)
	if err != nil {
		return models.ProgressOverview{}, err
	}
	return BuildOverview(subjects, s.Today()), nil
}

// Dashboard re-reads everything the front page shows.
func (s *SyllabusStore) Dashboard(ctx context.Context) (models.Dashboard, error) {
	subjects, err := s.GetSubjects(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}
	activities, err := s.GetActivities(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}
	today := s.Today()
	return models.Dashboard{
		Subjects:   subjects,
		Activities: activities,
		Alerts:     DeriveAlerts(subjects, today),
		Progress:   BuildOverview(subjects, today),
	}, nil
}

func (s *SyllabusStore) completionUpdate(completed bool, actor string) models.TopicUpdate {
	by, at := "", ""
	if completed {
		by, at = actor, s.todayString()
	}
	return models.TopicUpdate{Completed: &completed, CompletedBy: &by, CompletedAt: &at}
}

func (s *SyllabusStore) updateTopic(ctx context.Context, subjectID, topicID string, upd models.TopicUpdate) (*models.Topic, error) {
	subjects, err := s.loadSubjects(ctx)
	if err != nil {
		return nil, err
	}
	si, ti := findTopic(subjects, subjectID, topicID)
	if ti < 0 {
		s.log.Debug("update topic: not found", "subject_id", subjectID, "topic_id", topicID)
		return nil, nil
	}

	topic := &subjects[si].Topics[ti]
	upd.Apply(topic)
	if err := s.writeSubjects(ctx, subjects); err != nil {
		return nil, err
	}

	if upd.MarksCompleted() {
		actor := actorUnknown
		if upd.CompletedBy != nil && *upd.CompletedBy != "" {
			actor = *upd.CompletedBy
		}
		if _, err := s.appendActivity(ctx, models.Activity{
			Topic:       topic.Name,
			Subject:     subjects[si].Name,
			CompletedBy: actor,
			Type:        models.ActivityCompleted,
		}); err != nil {
			return nil, err
		}
	}

	updated := *topic
	return &updated, nil
}

func (s *SyllabusStore) loadSubjects(ctx context.Context) ([]models.Subject, error) {
	raw, ok, err := s.kv.Get(ctx, storage.SubjectsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		defaults := DefaultSubjects()
		if err := s.writeSubjects(ctx, defaults); err != nil {
			return nil, err
		}
		s.log.Info("seeded default subjects", "count", len(defaults))
		return defaults, nil
	}

	var subjects []models.Subject
	if err := sonic.Unmarshal(raw, &subjects); err != nil {
		return nil, errors.Wrap(err, "decode subjects")
	}
	return subjects, nil
}

func (s *SyllabusStore) writeSubjects(ctx context.Context, subjects []models.Subject) error {
	if subjects == nil {
		subjects = []models.Subject{}
	}
	raw, err := sonic.Marshal(subjects)
	if err != nil {
		return errors.Wrap(err, "encode subjects")
	}
	return s.kv.Set(ctx, storage.SubjectsKey, raw)
}

func (s *SyllabusStore) loadActivities(ctx context.Context) ([]models.Activity, error) {
	raw, ok, err := s.kv.Get(ctx, storage.ActivitiesKey)
	if err != nil {
		return nil, err
	}
	activities := []models.Activity{}
	if !ok {
		return activities, nil
	}
	if err := sonic.Unmarshal(raw, &activities); err != nil {
		return nil, errors.Wrap(err, "decode activities")
	}
	return activities, nil
}

func (s *SyllabusStore) appendActivity(ctx context.Context, a models.Activity) (models.Activity, error) {
	activities, err := s.loadActivities(ctx)
	if err != nil {
		return models.Activity{}, err
	}

	a.ID = uuid.NewString()
	a.Date = s.todayString()
	activities = append([]models.Activity{a}, activities...)
	if len(activities) > ActivityLogLimit {
		activities = activities[:ActivityLogLimit]
	}

	raw, err := sonic.Marshal(activities)
	if err != nil {
		return models.Activity{}, errors.Wrap(err, "encode activities")
	}
	if err := s.kv.Set(ctx, storage.ActivitiesKey, raw); err != nil {
		return models.Activity{}, err
	}
	return a, nil
}

func findSubject(subjects []models.Subject, id string) int {
	for i := range subjects {
		if subjects[i].ID == id {
			return i
		}
	}
	return -1
}

func findTopic(subjects []models.Subject, subjectID, topicID string) (int, int) {
	si := findSubject(subjects, subjectID)
	if si < 0 {
		return -1, -1
	}
	for ti := range subjects[si].Topics {
		if subjects[si].Topics[ti].ID == topicID {
			return si, ti
		}
	}
	return si, -1
}
