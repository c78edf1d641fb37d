package models

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type Density string

const (
	DensityComfortable Density = "comfortable"
	DensityCompact     Density = "compact"
)

// UserPreference holds per-user dashboard display settings. One row per
// user; absence means defaults.
type UserPreference struct {
	BaseModel
	UserID  string  `gorm:"type:uuid;not null;uniqueIndex"`
	Theme   Theme   `gorm:"not null;default:'system'"`
	Density Density `gorm:"not null;default:'comfortable'"`
}
