package model

import "time"

// SettingsID is the _id of the singleton site settings document.
const SettingsID = "site"

// Settings is the site-wide operational state. BookingEnabled=false is the
// kill switch for the booking flow.
type Settings struct {
	ID                 string    `bson:"_id" json:"-"`
	BookingEnabled     bool      `bson:"booking_enabled" json:"booking_enabled"`
	PaymentsEnabled    bool      `bson:"payments_enabled" json:"payments_enabled"`
	MaintenanceMode    bool      `bson:"maintenance_mode" json:"maintenance_mode"`
	MaintenanceMessage string    `bson:"maintenance_message" json:"maintenance_message"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}

// DefaultSettings returns the state a fresh deployment starts in.
func DefaultSettings() *Settings {
	return &Settings{
		ID:              SettingsID,
		BookingEnabled:  true,
		PaymentsEnabled: true,
	}
}

// UpdateSettingsRequest is the admin payload for changing site settings.
type UpdateSettingsRequest struct {
	BookingEnabled     *bool   `json:"booking_enabled,omitempty"`
	PaymentsEnabled    *bool   `json:"payments_enabled,omitempty"`
	MaintenanceMode    *bool   `json:"maintenance_mode,omitempty"`
	MaintenanceMessage *string `json:"maintenance_message,omitempty"`
}
