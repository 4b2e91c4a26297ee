package models

type ProfileSettings struct {
	Name        string `json:"name" validate:"required,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Bio         string `json:"bio" validate:"max=500"`
	Institution string `json:"institution" validate:"max=200"`
	Department  string `json:"department" validate:"max=200"`
}

type NotificationSettings struct {
	EmailAlerts       bool `json:"emailAlerts"`
	PushNotifications bool `json:"pushNotifications"`
	WeeklyReports     bool `json:"weeklyReports"`
	OverdueReminders  bool `json:"overdueReminders"`
}

type PreferenceSettings struct {
	Theme      string `json:"theme" validate:"oneof=light dark system"`
	Language   string `json:"language" validate:"required,max=10"`
	Timezone   string `json:"timezone" validate:"required,timezone"`
	DateFormat string `json:"dateFormat" validate:"oneof=MM/DD/YYYY DD/MM/YYYY YYYY-MM-DD"`
}

// Settings is the single settings blob of the user.
type Settings struct {
	Profile       ProfileSettings      `json:"profile"`
	Notifications NotificationSettings `json:"notifications"`
	Preferences   PreferenceSettings   `json:"preferences"`
}

// SettingsExport is the backup document handed to the user.
type SettingsExport struct {
	Settings
	ExportDate string `json:"exportDate"`
}

// SettingsImport mirrors SettingsExport with every section optional.
type SettingsImport struct {
	Profile       *ProfileSettings      `json:"profile"`
	Notifications *NotificationSettings `json:"notifications"`
	Preferences   *PreferenceSettings   `json:"preferences"`
}
