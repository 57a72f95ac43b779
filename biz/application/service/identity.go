package service

import (
	"context"
	"errors"

	"class-hive/biz/application/dto/basic"
	"class-hive/biz/application/dto/classroom"
	"class-hive/biz/infrastructure/consts"
	"class-hive/biz/infrastructure/repository/student"
	"class-hive/biz/infrastructure/repository/teacher"

	"github.com/google/wire"
)

// Identity is the resolved account behind a bearer token. Exactly one of
// Student and Teacher is set, mirrored by Role.
type Identity struct {
	Role    string
	Student *student.Student
	Teacher *teacher.Teacher
}

func (i *Identity) Id() string {
	if i.Role == consts.RoleTeacher {
		return i.Teacher.ID.Hex()
	}
	return i.Student.ID.Hex()
}

func (i *Identity) UserInfo() *classroom.UserInfo {
	if i.Role == consts.RoleTeacher {
		return userInfoFromTeacher(i.Teacher)
	}
	return userInfoFromStudent(i.Student)
}

// studentStore and teacherStore are the mapper slices identity resolution
// needs. The monc mappers satisfy them; tests substitute in-memory fakes.
type studentStore interface {
	FindOne(ctx context.Context, id string) (*student.Student, error)
	FindOneBySapid(ctx context.Context, sapid int64) (*student.Student, error)
}

type teacherStore interface {
	FindOne(ctx context.Context, id string) (*teacher.Teacher, error)
}

type IdentityResolver struct {
	StudentMapper studentStore
	TeacherMapper teacherStore
}

var IdentityResolverSet = wire.NewSet(
	wire.Struct(new(IdentityResolver), "*"),
	wire.Bind(new(studentStore), new(*student.MongoMapper)),
	wire.Bind(new(teacherStore), new(*teacher.MongoMapper)),
)

// Resolve loads the account a token refers to. The role claim picks the
// collection directly; tokens without one probe student first, then teacher.
func (r *IdentityResolver) Resolve(ctx context.Context, meta *basic.UserMeta) (*Identity, error) {
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	switch meta.GetRole() {
	case consts.RoleStudent:
		s, err := r.StudentMapper.FindOne(ctx, meta.GetUserId())
		if err != nil {
			return nil, consts.ErrNotAuthentication
		}
		return &Identity{Role: consts.RoleStudent, Student: s}, nil
	case consts.RoleTeacher:
		t, err := r.TeacherMapper.FindOne(ctx, meta.GetUserId())
		if err != nil {
			return nil, consts.ErrNotAuthentication
		}
		return &Identity{Role: consts.RoleTeacher, Teacher: t}, nil
	}

	s, err := r.StudentMapper.FindOne(ctx, meta.GetUserId())
	if err == nil {
		return &Identity{Role: consts.RoleStudent, Student: s}, nil
	}
	if !errors.Is(err, consts.ErrNotFound) && !errors.Is(err, consts.ErrInvalidObjectId) {
		return nil, err
	}
	t, err := r.TeacherMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotAuthentication
	}
	return &Identity{Role: consts.RoleTeacher, Teacher: t}, nil
}
