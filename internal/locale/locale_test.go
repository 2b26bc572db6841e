package locale

import (
	"testing"
	"time"
)

func TestLookup(t *testing.T) {
	testCases := []struct {
		tag      string
		wantLang string
	}{
		{"", "ru"},
		{"ru", "ru"},
		{"ru-RU", "ru"},
		{"en", "en"},
		{"en-GB", "en"},
		{"de-AT", "de"},
		{"not a tag!", "ru"},
		{"ja", "ru"},
	}
	for _, tc := range testCases {
		if got := Lookup(tc.tag).Lang(); got != tc.wantLang {
			t.Errorf("Lookup(%q).Lang() = %q, want %q", tc.tag, got, tc.wantLang)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 12, 0, 0, 0, time.Local)
	testCases := []struct {
		tag  string
		want string
	}{
		{"ru", "07.03.2024"},
		{"en", "3/7/2024"},
		{"de", "07.03.2024"},
	}
	for _, tc := range testCases {
		if got := Lookup(tc.tag).FormatDate(ts); got != tc.want {
			t.Errorf("%s FormatDate = %q, want %q", tc.tag, got, tc.want)
		}
	}
}

func TestFormatKB(t *testing.T) {
	testCases := []struct {
		size int64
		want string
	}{
		{0, "0.0 KB"},
		{512, "0.5 KB"},
		{2048, "2.0 KB"},
		{1536000, "1500.0 KB"},
		{100, "0.1 KB"},
	}
	for _, tc := range testCases {
		if got := FormatKB(tc.size); got != tc.want {
			t.Errorf("FormatKB(%d) = %q, want %q", tc.size, got, tc.want)
		}
	}
}
