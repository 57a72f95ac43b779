package storage

import (
	"strings"
	"testing"
)

func TestAllowedType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        bool
	}{
		{"jpeg", "image/jpeg", true},
		{"png", "image/png", true},
		{"jpg", "image/jpg", true},
		{"pdf", "application/pdf", true},
		{"uppercase", "IMAGE/PNG", true},
		{"with charset", "image/jpeg; charset=utf-8", true},
		{"padded", "  image/png  ", true},
		{"gif", "image/gif", false},
		{"text", "text/plain", false},
		{"zip", "application/zip", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllowedType(tt.contentType); got != tt.want {
				t.Errorf("AllowedType(%q) = %v, want %v", tt.contentType, got, tt.want)
			}
		})
	}
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("submission", "homework.pdf")
	if !strings.HasPrefix(key, "submission/") {
		t.Errorf("key %q lacks prefix", key)
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Errorf("key %q lacks extension", key)
	}
	if strings.Contains(key, "homework") {
		t.Errorf("key %q leaks the original filename", key)
	}

	if ObjectKey("pfp", "a.png") == ObjectKey("pfp", "a.png") {
		t.Error("keys for the same filename should not collide")
	}

	if key := ObjectKey("pfp", "noext"); strings.Contains(key, ".") {
		t.Errorf("key %q should have no extension", key)
	}
}
