package services

import (
	"bytes"
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"

	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/storage"
	"syllabus-tracker/backend/utils"
)

// ErrMalformedImport is returned for any backup that cannot be restored.
var ErrMalformedImport = errors.New("Failed to import data. Invalid file format.")

// SettingsService keeps the single settings blob.
type SettingsService struct {
	kv  storage.KV
	now func() time.Time
}

// NewSettingsService builds a SettingsService over kv.
func NewSettingsService(kv storage.KV) *SettingsService {
	return &SettingsService{kv: kv, now: time.Now}
}

// DefaultSettings are the settings of a user who never saved any.
func DefaultSettings(user models.User) models.Settings {
	return models.Settings{
		Profile: models.ProfileSettings{Name: user.Name, Email: user.Email},
		Notifications: models.NotificationSettings{
			EmailAlerts:       true,
			PushNotifications: true,
			WeeklyReports:     false,
			OverdueReminders:  true,
		},
		Preferences: models.PreferenceSettings{
			Theme:      "light",
			Language:   "en",
			Timezone:   "UTC",
			DateFormat: "MM/DD/YYYY",
		},
	}
}

// Get returns the stored settings, or defaults built from user.
func (s *SettingsService) Get(ctx context.Context, user models.User) (models.Settings, error) {
	raw, ok, err := s.kv.Get(ctx, storage.SettingsKey)
	if err != nil {
		return models.Settings{}, err
	}
	if !ok {
		return DefaultSettings(user), nil
	}
	var settings models.Settings
	if err := sonic.Unmarshal(raw, &settings); err != nil {
		return models.Settings{}, errors.Wrap(err, "decode settings")
	}
	return settings, nil
}

// Save validates and overwrites the stored settings.
func (s *SettingsService) Save(ctx context.Context, settings models.Settings) error {
	if err := utils.Validate(settings); err != nil {
		return err
	}
	raw, err := sonic.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "encode settings")
	}
	return s.kv.Set(ctx, storage.SettingsKey, raw)
}

// Export renders the settings as an indented backup document.
func (s *SettingsService) Export(ctx context.Context, user models.User) ([]byte, error) {
	settings, err := s.Get(ctx, user)
	if err != nil {
		return nil, err
	}
	doc := models.SettingsExport{Settings: settings, ExportDate: s.now().UTC().Format(time.RFC3339)}
	out, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	return out, errors.Wrap(err, "encode settings export")
}

// Import restores a backup made by Export. Sections missing from data keep
// their current values. Anything unreadable or invalid returns
// ErrMalformedImport and leaves the stored settings as they were.
func (s *SettingsService) Import(ctx context.Context, user models.User, data []byte) (models.Settings, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.Settings{}, ErrMalformedImport
	}
	var doc models.SettingsImport
	if err := sonic.Unmarshal(trimmed, &doc); err != nil {
		return models.Settings{}, errors.Wrap(ErrMalformedImport, err.Error())
	}

	settings, err := s.Get(ctx, user)
	if err != nil {
		return models.Settings{}, err
	}
	if doc.Profile != nil {
		settings.Profile = *doc.Profile
	}
	if doc.Notifications != nil {
		settings.Notifications = *doc.Notifications
	}
	if doc.Preferences != nil {
		settings.Preferences = *doc.Preferences
	}

	if err := utils.Validate(settings); err != nil {
		return models.Settings{}, errors.Wrap(ErrMalformedImport, err.Error())
	}
	if err := s.Save(ctx, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
