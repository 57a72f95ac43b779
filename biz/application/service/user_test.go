package service

import (
	"errors"
	"testing"

	"class-hive/biz/infrastructure/consts"

	"golang.org/x/crypto/bcrypt"
)

func TestVerifyLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open sesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	tests := []struct {
		name      string
		lookupErr error
		hash      string
		password  string
		want      error
	}{
		{"unknown sapid", consts.ErrNotFound, "", "open sesame", consts.ErrNotFound},
		{"wrong password", nil, string(hash), "guess", consts.ErrInvalidCredentials},
		{"correct password", nil, string(hash), "open sesame", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := verifyLogin(tt.lookupErr, tt.hash, tt.password); !errors.Is(got, tt.want) {
				t.Errorf("verifyLogin() = %v, want %v", got, tt.want)
			}
		})
	}
}
