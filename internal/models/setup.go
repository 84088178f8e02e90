package models

// DatabaseStatus describes whether the schema the service needs is present.
type DatabaseStatus struct {
	ProjectsExists bool `json:"projectsExists"`
	SettingsExists bool `json:"settingsExists"`
	IsSetup        bool `json:"isSetup"`
	NeedsMigration bool `json:"needsMigration"`
}
