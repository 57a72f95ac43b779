package service

import (
	"context"
	"errors"
	"testing"

	"class-hive/biz/application/dto/basic"
	"class-hive/biz/infrastructure/consts"
	"class-hive/biz/infrastructure/repository/student"
	"class-hive/biz/infrastructure/repository/teacher"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStudentStore struct {
	students map[string]*student.Student
}

func (f *fakeStudentStore) FindOne(_ context.Context, id string) (*student.Student, error) {
	if s, ok := f.students[id]; ok {
		return s, nil
	}
	return nil, consts.ErrNotFound
}

func (f *fakeStudentStore) FindOneBySapid(_ context.Context, sapid int64) (*student.Student, error) {
	for _, s := range f.students {
		if s.Sapid == sapid {
			return s, nil
		}
	}
	return nil, consts.ErrNotFound
}

type fakeTeacherStore struct {
	teachers map[string]*teacher.Teacher
}

func (f *fakeTeacherStore) FindOne(_ context.Context, id string) (*teacher.Teacher, error) {
	if t, ok := f.teachers[id]; ok {
		return t, nil
	}
	return nil, consts.ErrNotFound
}

func TestIdentityResolve(t *testing.T) {
	ctx := context.Background()
	studentID := primitive.NewObjectID()
	teacherID := primitive.NewObjectID()
	resolver := &IdentityResolver{
		StudentMapper: &fakeStudentStore{students: map[string]*student.Student{
			studentID.Hex(): {ID: studentID, Sapid: 100, Username: "stu"},
		}},
		TeacherMapper: &fakeTeacherStore{teachers: map[string]*teacher.Teacher{
			teacherID.Hex(): {ID: teacherID, Sapid: 200, Username: "tea"},
		}},
	}

	tests := []struct {
		name     string
		meta     *basic.UserMeta
		wantRole string
		wantErr  error
	}{
		{"no token", &basic.UserMeta{}, "", consts.ErrNotAuthentication},
		{"student claim", &basic.UserMeta{UserId: studentID.Hex(), Role: consts.RoleStudent}, consts.RoleStudent, nil},
		{"teacher claim", &basic.UserMeta{UserId: teacherID.Hex(), Role: consts.RoleTeacher}, consts.RoleTeacher, nil},
		{"roleless token probes student first", &basic.UserMeta{UserId: studentID.Hex()}, consts.RoleStudent, nil},
		{"roleless token falls back to teacher", &basic.UserMeta{UserId: teacherID.Hex()}, consts.RoleTeacher, nil},
		{"unknown account", &basic.UserMeta{UserId: primitive.NewObjectID().Hex()}, "", consts.ErrNotAuthentication},
		{"student claim for missing record", &basic.UserMeta{UserId: teacherID.Hex(), Role: consts.RoleStudent}, "", consts.ErrNotAuthentication},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.Resolve(ctx, tt.meta)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Role != tt.wantRole {
				t.Errorf("Resolve() role = %q, want %q", got.Role, tt.wantRole)
			}
			if got.Id() != tt.meta.UserId {
				t.Errorf("Resolve() id = %q, want %q", got.Id(), tt.meta.UserId)
			}
		})
	}
}
