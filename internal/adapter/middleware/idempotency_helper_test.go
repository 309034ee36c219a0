package middleware

import (
	"strconv"
	"testing"
	"time"
)

func TestBuildKey(t *testing.T) {
	got := buildKey("POST", "/payments", "3f9a6a1b3d544fbe8b3a6b3e8d6b2c88")
	want := "idemp:lx:post:/payments:3f9a6a1b3d544fbe8b3a6b3e8d6b2c88"
	if got != want {
		t.Fatalf("buildKey = %q, want %q", got, want)
	}
}

func TestValidReqID(t *testing.T) {
	valid := []string{
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88",     // hex32
		"  3F9A6A1B3D544FBE8B3A6B3E8D6B2C88 ",  // trimmed + lowered
		"9b2d8f0e-4c1a-4d7e-8a2b-1f3c5e7a9b0d", // uuid v4
	}
	for _, s := range valid {
		if !validReqID(s) {
			t.Errorf("validReqID(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"short",
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",    // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x",  // 33 chars
		"9b2d8f0e4c1a4d7e8a2b1f3c5e7a9b0d-x", // junk
	}
	for _, s := range invalid {
		if validReqID(s) {
			t.Errorf("validReqID(%q) = true, want false", s)
		}
	}
}

func TestBodyHash_Deterministic(t *testing.T) {
	a := bodyHash([]byte(`{"paid_amount":3000}`))
	b := bodyHash([]byte(`{"paid_amount":3000}`))
	c := bodyHash([]byte(`{"paid_amount":3001}`))
	if a != b {
		t.Fatalf("same body hashed differently")
	}
	if a == c {
		t.Fatalf("different bodies hashed the same")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(a))
	}
}

func TestParseRequestAt_EpochSeconds(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	got, err := parseRequestAt(strconv.FormatInt(now.Unix(), 10))
	if err != nil {
		t.Fatalf("parseRequestAt: %v", err)
	}
	if !got.Equal(now) {
		t.Fatalf("got %v, want %v", got, now)
	}
}

func TestParseRequestAt_EpochMillis(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	got, err := parseRequestAt(strconv.FormatInt(now.UnixMilli(), 10))
	if err != nil {
		t.Fatalf("parseRequestAt: %v", err)
	}
	if !got.Equal(now) {
		t.Fatalf("got %v, want %v", got, now)
	}
}

func TestParseRequestAt_RFC3339WithZone(t *testing.T) {
	got, err := parseRequestAt("2026-08-28T10:00:00+05:30")
	if err != nil {
		t.Fatalf("parseRequestAt: %v", err)
	}
	want := time.Date(2026, 8, 28, 4, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Fatalf("result not normalized to UTC: %v", got)
	}
}

func TestParseRequestAt_Rejects(t *testing.T) {
	for _, s := range []string{
		"",
		"  ",
		"2026-08-28 10:00:00", // no timezone
		"not-a-time",
	} {
		if _, err := parseRequestAt(s); err == nil {
			t.Errorf("parseRequestAt(%q) should fail", s)
		}
	}
}
