package service

import (
	"context"
	"errors"
	"testing"

	"class-hive/biz/infrastructure/consts"
	"class-hive/biz/infrastructure/repository/team"
)

type fakeMemberStore struct {
	existing  map[string]*team.TeamStudent
	findErr   error
	insertErr error
	inserted  []*team.TeamStudent
}

func (f *fakeMemberStore) FindByTeamAndStudent(_ context.Context, teamID, studentID string) (*team.TeamStudent, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if m, ok := f.existing[teamID+"/"+studentID]; ok {
		return m, nil
	}
	return nil, consts.ErrNotFound
}

func (f *fakeMemberStore) Insert(_ context.Context, member *team.TeamStudent) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, member)
	return nil
}

func TestEnrol(t *testing.T) {
	ctx := context.Background()

	t.Run("first join inserts the membership", func(t *testing.T) {
		store := &fakeMemberStore{}
		if err := enrol(ctx, store, "t1", "s1"); err != nil {
			t.Fatalf("enrol() = %v, want nil", err)
		}
		if len(store.inserted) != 1 {
			t.Fatalf("inserted %d members, want 1", len(store.inserted))
		}
		if m := store.inserted[0]; m.TeamID != "t1" || m.StudentID != "s1" {
			t.Errorf("inserted member = %+v, want team t1 student s1", m)
		}
	})

	t.Run("repeated join conflicts", func(t *testing.T) {
		store := &fakeMemberStore{existing: map[string]*team.TeamStudent{
			"t1/s1": {TeamID: "t1", StudentID: "s1"},
		}}
		if err := enrol(ctx, store, "t1", "s1"); !errors.Is(err, consts.ErrAlreadyInTeam) {
			t.Fatalf("enrol() = %v, want %v", err, consts.ErrAlreadyInTeam)
		}
		if len(store.inserted) != 0 {
			t.Errorf("inserted %d members, want 0", len(store.inserted))
		}
	})

	t.Run("lookup failure blocks the join", func(t *testing.T) {
		store := &fakeMemberStore{findErr: errors.New("mongo down")}
		if err := enrol(ctx, store, "t1", "s1"); !errors.Is(err, consts.ErrJoinTeam) {
			t.Errorf("enrol() = %v, want %v", err, consts.ErrJoinTeam)
		}
	})

	t.Run("insert failure surfaces as a join failure", func(t *testing.T) {
		store := &fakeMemberStore{insertErr: errors.New("mongo down")}
		if err := enrol(ctx, store, "t1", "s1"); !errors.Is(err, consts.ErrJoinTeam) {
			t.Errorf("enrol() = %v, want %v", err, consts.ErrJoinTeam)
		}
	})
}
