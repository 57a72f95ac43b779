package adaptor

import (
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestHttpStatus(t *testing.T) {
	tests := []struct {
		name string
		code codes.Code
		want int
	}{
		{"invalid argument", codes.InvalidArgument, http.StatusBadRequest},
		{"unauthenticated", codes.Unauthenticated, http.StatusUnauthorized},
		{"permission denied", codes.PermissionDenied, http.StatusForbidden},
		{"not found", codes.NotFound, http.StatusNotFound},
		{"already exists", codes.AlreadyExists, http.StatusConflict},
		{"business code", codes.Code(1021), http.StatusBadRequest},
		{"db code", codes.Code(2001), http.StatusBadRequest},
		{"unknown", codes.Unknown, http.StatusInternalServerError},
		{"internal", codes.Internal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := httpStatus(tt.code); got != tt.want {
				t.Errorf("httpStatus(%v) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}
