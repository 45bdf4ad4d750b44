package domain

import "time"

// Reader settings enums. Exactly one value per field at any time.
const (
	FontFamilySerif = "serif"
	FontFamilySans  = "sans-serif"

	ReadingModeScroll = "scroll"
	ReadingModeBook   = "book"

	ThemeLight       = "light"
	ThemeDarkBlue    = "dark-blue"
	ThemeTransparent = "transparent"
)

// ReaderSettings represents a user's display preferences. They apply uniformly
// to whatever chapter is currently rendered.
type ReaderSettings struct {
	UserID      string    `json:"user_id"`
	FontSize    int       `json:"font_size"`
	LineHeight  float64   `json:"line_height"`
	FontFamily  string    `json:"font_family"`
	ReadingMode string    `json:"reading_mode"`
	Theme       string    `json:"theme"`
	PageSize    int       `json:"page_size"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReaderSettingsPatch is a partial update; nil fields keep their current value.
type ReaderSettingsPatch struct {
	FontSize    *int     `json:"font_size,omitempty"`
	LineHeight  *float64 `json:"line_height,omitempty"`
	FontFamily  *string  `json:"font_family,omitempty"`
	ReadingMode *string  `json:"reading_mode,omitempty"`
	Theme       *string  `json:"theme,omitempty"`
	PageSize    *int     `json:"page_size,omitempty"`
}

// DefaultReaderSettings returns the settings used before a user has saved any.
func DefaultReaderSettings(userID string) *ReaderSettings {
	return &ReaderSettings{
		UserID:      userID,
		FontSize:    18,
		LineHeight:  1.8,
		FontFamily:  FontFamilySerif,
		ReadingMode: ReadingModeScroll,
		Theme:       ThemeLight,
		PageSize:    250,
	}
}

// Validate checks numeric bounds and enum membership.
func (s *ReaderSettings) Validate() error {
	if s.FontSize <= 0 {
		return &ValidationError{Field: "font_size", Message: "must be positive"}
	}
	if s.LineHeight <= 0 {
		return &ValidationError{Field: "line_height", Message: "must be positive"}
	}
	if s.PageSize <= 0 {
		return &ValidationError{Field: "page_size", Message: "must be positive"}
	}
	switch s.FontFamily {
	case FontFamilySerif, FontFamilySans:
	default:
		return &ValidationError{Field: "font_family", Message: "unknown font family " + s.FontFamily}
	}
	switch s.ReadingMode {
	case ReadingModeScroll, ReadingModeBook:
	default:
		return &ValidationError{Field: "reading_mode", Message: "unknown reading mode " + s.ReadingMode}
	}
	switch s.Theme {
	case ThemeLight, ThemeDarkBlue, ThemeTransparent:
	default:
		return &ValidationError{Field: "theme", Message: "unknown theme " + s.Theme}
	}
	return nil
}

// Apply merges a patch onto the settings, leaving nil fields untouched.
func (s *ReaderSettings) Apply(patch *ReaderSettingsPatch) {
	if patch == nil {
		return
	}
	if patch.FontSize != nil {
		s.FontSize = *patch.FontSize
	}
	if patch.LineHeight != nil {
		s.LineHeight = *patch.LineHeight
	}
	if patch.FontFamily != nil {
		s.FontFamily = *patch.FontFamily
	}
	if patch.ReadingMode != nil {
		s.ReadingMode = *patch.ReadingMode
	}
	if patch.Theme != nil {
		s.Theme = *patch.Theme
	}
	if patch.PageSize != nil {
		s.PageSize = *patch.PageSize
	}
}

// SettingsRepository defines persistence operations for reader settings.
type SettingsRepository interface {
	// Get returns the stored settings, or defaults if the user has none.
	Get(userID string, token string) (*ReaderSettings, error)
	Upsert(settings *ReaderSettings, token string) error
}

// SettingsService defines the use-case operations for reader settings.
type SettingsService interface {
	GetSettings(userID string, token string) (*ReaderSettings, error)
	UpdateSettings(userID string, patch *ReaderSettingsPatch, token string) (*ReaderSettings, error)
}
