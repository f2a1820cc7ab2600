package cli

import "testing"

func TestFormatDurationMs(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0ms"},
		{850, "850ms"},
		{1000, "1.0s"},
		{12500, "12.5s"},
		{60_000, "1.0m"},
		{150_000, "2.5m"},
		{3_600_000, "1.0h"},
		{7_200_000, "2.0h"},
	}
	for _, tt := range tests {
		if got := FormatDurationMs(tt.ms); got != tt.want {
			t.Errorf("FormatDurationMs(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("a long project name", 10); got != "a long pr…" {
		t.Errorf("Truncate = %q, want %q", got, "a long pr…")
	}
}

func TestShortenHome(t *testing.T) {
	if got := ShortenHome("/home/dev/src/app", "/home/dev"); got != "~/src/app" {
		t.Errorf("ShortenHome = %q, want ~/src/app", got)
	}
	if got := ShortenHome("/etc/hosts", "/home/dev"); got != "/etc/hosts" {
		t.Errorf("ShortenHome = %q, want unchanged", got)
	}
}
