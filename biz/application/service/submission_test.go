package service

import (
	"errors"
	"testing"
	"time"

	"class-hive/biz/infrastructure/consts"
	"class-hive/biz/infrastructure/repository/assignment"
)

func TestCheckDeadline(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     error
	}{
		{"future deadline", now.Add(time.Hour), nil},
		{"exactly at the deadline", now, nil},
		{"past deadline", now.Add(-time.Minute), consts.ErrDeadlinePassed},
		{"long past deadline", now.AddDate(0, -1, 0), consts.ErrDeadlinePassed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &assignment.Assignment{Deadline: tt.deadline}
			if got := checkDeadline(a, now); !errors.Is(got, tt.want) {
				t.Errorf("checkDeadline() = %v, want %v", got, tt.want)
			}
		})
	}
}
