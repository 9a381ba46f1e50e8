package utils_test

import (
	"testing"
	"time"

	"assettrack/src/utils"
)

func TestParseAPIDate(t *testing.T) {
	t.Run("parses a wire-format date", func(t *testing.T) {
		parsed, ok := utils.ParseAPIDate("2024-03-10")
		if !ok {
			t.Fatal("expected date to parse")
		}
		if parsed.Year() != 2024 || parsed.Month() != time.March || parsed.Day() != 10 {
			t.Errorf("unexpected parse result: %v", parsed)
		}
	})

	t.Run("empty and malformed dates report absent", func(t *testing.T) {
		for _, s := range []string{"", "not a date", "03/10/2024", "2024-13-40"} {
			if _, ok := utils.ParseAPIDate(s); ok {
				t.Errorf("expected %q not to parse", s)
			}
		}
	})
}

func TestFormatAPIDate(t *testing.T) {
	formatted := utils.FormatAPIDate(time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC))
	if formatted != "2024-03-10" {
		t.Errorf("expected 2024-03-10, got %s", formatted)
	}
}
