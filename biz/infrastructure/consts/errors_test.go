package consts

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrnoCarriesGrpcStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Errno
		code codes.Code
	}{
		{"forbidden", ErrForbidden, codes.PermissionDenied},
		{"not authenticated", ErrNotAuthentication, codes.Unauthenticated},
		{"email registered", ErrEmailRegistered, codes.AlreadyExists},
		{"already in team", ErrAlreadyInTeam, codes.AlreadyExists},
		{"deadline passed", ErrDeadlinePassed, codes.Code(1021)},
		{"document parent", ErrDocumentParent, codes.InvalidArgument},
		{"not found", ErrNotFound, codes.NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := status.FromError(tt.err)
			if !ok {
				t.Fatalf("status.FromError(%v) did not recognize the error", tt.err)
			}
			if s.Code() != tt.code {
				t.Errorf("code = %v, want %v", s.Code(), tt.code)
			}
			if s.Message() != tt.err.Error() {
				t.Errorf("message = %q, want %q", s.Message(), tt.err.Error())
			}
		})
	}
}

func TestErrDeadlinePassedMessage(t *testing.T) {
	want := "deadline has passed, submission not allowed"
	if got := ErrDeadlinePassed.Error(); got != want {
		t.Errorf("ErrDeadlinePassed.Error() = %q, want %q", got, want)
	}
}
