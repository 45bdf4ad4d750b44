package domain

import (
	"testing"
)

func TestReaderSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(s *ReaderSettings)
		wantErr  bool
		errField string
	}{
		{
			name:   "defaults are valid",
			mutate: func(s *ReaderSettings) {},
		},
		{
			name:   "sans-serif book mode dark-blue",
			mutate: func(s *ReaderSettings) { s.FontFamily = FontFamilySans; s.ReadingMode = ReadingModeBook; s.Theme = ThemeDarkBlue },
		},
		{
			name:     "zero font size",
			mutate:   func(s *ReaderSettings) { s.FontSize = 0 },
			wantErr:  true,
			errField: "font_size",
		},
		{
			name:     "negative line height",
			mutate:   func(s *ReaderSettings) { s.LineHeight = -1 },
			wantErr:  true,
			errField: "line_height",
		},
		{
			name:     "zero page size",
			mutate:   func(s *ReaderSettings) { s.PageSize = 0 },
			wantErr:  true,
			errField: "page_size",
		},
		{
			name:     "unknown font family",
			mutate:   func(s *ReaderSettings) { s.FontFamily = "comic-sans" },
			wantErr:  true,
			errField: "font_family",
		},
		{
			name:     "unknown reading mode",
			mutate:   func(s *ReaderSettings) { s.ReadingMode = "carousel" },
			wantErr:  true,
			errField: "reading_mode",
		},
		{
			name:     "unknown theme",
			mutate:   func(s *ReaderSettings) { s.Theme = "sepia" },
			wantErr:  true,
			errField: "theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultReaderSettings("user-1")
			tt.mutate(s)

			err := s.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				vErr, ok := err.(*ValidationError)
				if !ok {
					t.Fatalf("expected *ValidationError, got %T", err)
				}
				if vErr.Field != tt.errField {
					t.Fatalf("expected field %s, got %s", tt.errField, vErr.Field)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestReaderSettings_Apply(t *testing.T) {
	size := 22
	theme := ThemeTransparent

	s := DefaultReaderSettings("user-1")
	s.Apply(&ReaderSettingsPatch{FontSize: &size, Theme: &theme})

	if s.FontSize != 22 {
		t.Fatalf("expected font size 22, got %d", s.FontSize)
	}
	if s.Theme != ThemeTransparent {
		t.Fatalf("expected theme transparent, got %s", s.Theme)
	}
	// Unpatched fields keep their values.
	if s.LineHeight != 1.8 {
		t.Fatalf("expected line height 1.8, got %v", s.LineHeight)
	}
	if s.ReadingMode != ReadingModeScroll {
		t.Fatalf("expected reading mode scroll, got %s", s.ReadingMode)
	}
}

func TestReaderSettings_ApplyNilPatch(t *testing.T) {
	s := DefaultReaderSettings("user-1")
	before := *s
	s.Apply(nil)
	if *s != before {
		t.Fatalf("expected settings unchanged, got %+v", s)
	}
}

func TestDefaultReaderSettings(t *testing.T) {
	s := DefaultReaderSettings("user-9")
	if s.UserID != "user-9" {
		t.Fatalf("expected user-9, got %s", s.UserID)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if s.PageSize != 250 {
		t.Fatalf("expected page size 250, got %d", s.PageSize)
	}
}
