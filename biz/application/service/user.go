package service

import (
	"context"
	"errors"
	"mime/multipart"

	"class-hive/biz/adaptor"
	"class-hive/biz/application/dto/basic"
	"class-hive/biz/application/dto/classroom"
	"class-hive/biz/infrastructure/consts"
	"class-hive/biz/infrastructure/repository/student"
	"class-hive/biz/infrastructure/repository/teacher"
	"class-hive/biz/infrastructure/storage"
	"class-hive/biz/infrastructure/util"
	"class-hive/biz/infrastructure/util/log"
	"class-hive/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/spf13/cast"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Register(ctx context.Context, role string, req *classroom.RegisterReq) (*classroom.RegisterResp, error)
	Login(ctx context.Context, role string, req *classroom.LoginReq) (*classroom.LoginResp, error)
	Me(ctx context.Context) (*classroom.GetUserResp, error)
	GetUser(ctx context.Context, role string, req *classroom.GetUserReq) (*classroom.GetUserResp, error)
	ListUsers(ctx context.Context, role string, req *classroom.ListUsersReq) (*classroom.ListUsersResp, error)
	SearchUsers(ctx context.Context, role string, req *classroom.SearchUsersReq) (*classroom.ListUsersResp, error)
	UpdateUser(ctx context.Context, req *classroom.UpdateUserReq) (*classroom.UpdateUserResp, error)
	UploadPic(ctx context.Context, file *multipart.FileHeader) (*classroom.UploadPicResp, error)
	DeleteUser(ctx context.Context, role string, req *classroom.DeleteUserReq) (*basic.Response, error)
}

type UserService struct {
	StudentMapper *student.MongoMapper
	TeacherMapper *teacher.MongoMapper
	Resolver      *IdentityResolver
	Storage       *storage.Client
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// Register creates a student or teacher account. The email must be unused
// within the role's collection.
func (s *UserService) Register(ctx context.Context, role string, req *classroom.RegisterReq) (*classroom.RegisterResp, error) {
	if err := s.checkEmailFree(ctx, role, req.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("hash password failed: %v", err)
		return nil, consts.ErrSignUp
	}

	var info *classroom.UserInfo
	if role == consts.RoleTeacher {
		t := &teacher.Teacher{
			Sapid:    req.Sapid,
			Username: req.Username,
			Email:    req.Email,
			Password: string(hash),
			Desc:     req.Desc,
		}
		if err := s.TeacherMapper.Insert(ctx, t); err != nil {
			log.Error("register teacher failed: %v", err)
			return nil, consts.ErrSignUp
		}
		info = userInfoFromTeacher(t)
	} else {
		st := &student.Student{
			Sapid:    req.Sapid,
			Username: req.Username,
			Email:    req.Email,
			Password: string(hash),
			Desc:     req.Desc,
		}
		if err := s.StudentMapper.Insert(ctx, st); err != nil {
			log.Error("register student failed: %v", err)
			return nil, consts.ErrSignUp
		}
		info = userInfoFromStudent(st)
	}

	return &classroom.RegisterResp{
		Msg:  "registered successfully",
		User: info,
	}, nil
}

// Login verifies the sapid/password pair and issues a token carrying the
// account id and role.
func (s *UserService) Login(ctx context.Context, role string, req *classroom.LoginReq) (*classroom.LoginResp, error) {
	var id, hash string
	var findErr error
	if role == consts.RoleTeacher {
		t, err := s.TeacherMapper.FindOneBySapid(ctx, req.Sapid)
		findErr = err
		if err == nil {
			id, hash = t.ID.Hex(), t.Password
		}
	} else {
		st, err := s.StudentMapper.FindOneBySapid(ctx, req.Sapid)
		findErr = err
		if err == nil {
			id, hash = st.ID.Hex(), st.Password
		}
	}
	if err := verifyLogin(findErr, hash, req.Password); err != nil {
		return nil, err
	}

	token, expire, err := adaptor.GenerateJwtToken(id, role)
	if err != nil {
		log.Error("generate token failed: %v", err)
		return nil, consts.ErrInvalidCredentials
	}

	return &classroom.LoginResp{
		Msg:          "logged in successfully",
		Token:        token,
		Id:           id,
		AccessExpire: expire,
	}, nil
}

// Me returns the account behind the current token.
func (s *UserService) Me(ctx context.Context) (*classroom.GetUserResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}
	return &classroom.GetUserResp{User: identity.UserInfo()}, nil
}

func (s *UserService) GetUser(ctx context.Context, role string, req *classroom.GetUserReq) (*classroom.GetUserResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if role == consts.RoleTeacher {
		t, err := s.TeacherMapper.FindOne(ctx, req.Id)
		if err != nil {
			return nil, consts.ErrNotFound
		}
		return &classroom.GetUserResp{User: userInfoFromTeacher(t)}, nil
	}
	st, err := s.StudentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &classroom.GetUserResp{User: userInfoFromStudent(st)}, nil
}

func (s *UserService) ListUsers(ctx context.Context, role string, req *classroom.ListUsersReq) (*classroom.ListUsersResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	pageNum, pageSize := page.Parse(req.PaginationOptions)

	resp := &classroom.ListUsersResp{Users: make([]*classroom.UserInfo, 0)}
	if role == consts.RoleTeacher {
		teachers, total, err := s.TeacherMapper.FindAll(ctx, pageNum, pageSize)
		if err != nil {
			log.Error("list teachers failed: %v", err)
			return nil, consts.ErrNotFound
		}
		for _, t := range teachers {
			resp.Users = append(resp.Users, userInfoFromTeacher(t))
		}
		resp.Total = total
		return resp, nil
	}

	students, total, err := s.StudentMapper.FindAll(ctx, pageNum, pageSize)
	if err != nil {
		log.Error("list students failed: %v", err)
		return nil, consts.ErrNotFound
	}
	for _, st := range students {
		resp.Users = append(resp.Users, userInfoFromStudent(st))
	}
	resp.Total = total
	return resp, nil
}

// SearchUsers matches usernames by substring; a numeric query also matches the
// sapid exactly.
func (s *UserService) SearchUsers(ctx context.Context, role string, req *classroom.SearchUsersReq) (*classroom.ListUsersResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	var sapid *int64
	if n, err := cast.ToInt64E(req.Query); err == nil {
		sapid = &n
	}

	resp := &classroom.ListUsersResp{Users: make([]*classroom.UserInfo, 0)}
	if role == consts.RoleTeacher {
		teachers, err := s.TeacherMapper.Search(ctx, req.Query, sapid)
		if err != nil {
			log.Error("search teachers failed: %v", err)
			return nil, consts.ErrNotFound
		}
		for _, t := range teachers {
			resp.Users = append(resp.Users, userInfoFromTeacher(t))
		}
		resp.Total = int64(len(resp.Users))
		return resp, nil
	}

	students, err := s.StudentMapper.Search(ctx, req.Query, sapid)
	if err != nil {
		log.Error("search students failed: %v", err)
		return nil, consts.ErrNotFound
	}
	for _, st := range students {
		resp.Users = append(resp.Users, userInfoFromStudent(st))
	}
	resp.Total = int64(len(resp.Users))
	return resp, nil
}

// UpdateUser edits the caller's own profile.
func (s *UserService) UpdateUser(ctx context.Context, req *classroom.UpdateUserReq) (*classroom.UpdateUserResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	if identity.Role == consts.RoleTeacher {
		t := identity.Teacher
		applyUserPatch(&t.Username, &t.Email, &t.Desc, req)
		if err := s.TeacherMapper.Update(ctx, t); err != nil {
			log.Error("update teacher failed: %v", err)
			return nil, consts.ErrUpdate
		}
		return &classroom.UpdateUserResp{Msg: "updated successfully", User: userInfoFromTeacher(t)}, nil
	}

	st := identity.Student
	applyUserPatch(&st.Username, &st.Email, &st.Desc, req)
	if err := s.StudentMapper.Update(ctx, st); err != nil {
		log.Error("update student failed: %v", err)
		return nil, consts.ErrUpdate
	}
	return &classroom.UpdateUserResp{Msg: "updated successfully", User: userInfoFromStudent(st)}, nil
}

// UploadPic stores a profile picture and records its URL on the caller's
// account.
func (s *UserService) UploadPic(ctx context.Context, file *multipart.FileHeader) (*classroom.UploadPicResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, consts.ErrNoFiles
	}

	contentType := file.Header.Get("Content-Type")
	if !storage.AllowedType(contentType) {
		return nil, consts.ErrFileType
	}

	f, err := file.Open()
	if err != nil {
		log.Error("open uploaded file failed: %v", err)
		return nil, consts.ErrUpload
	}
	defer f.Close()

	url, err := s.Storage.Upload(ctx, storage.ObjectKey("pfp", file.Filename), contentType, f)
	if err != nil {
		log.Error("upload profile picture failed: %v", err)
		return nil, consts.ErrUpload
	}

	if identity.Role == consts.RoleTeacher {
		if err := s.TeacherMapper.UpdatePfp(ctx, identity.Id(), url); err != nil {
			return nil, consts.ErrUpdate
		}
		identity.Teacher.Pfp = url
	} else {
		if err := s.StudentMapper.UpdatePfp(ctx, identity.Id(), url); err != nil {
			return nil, consts.ErrUpdate
		}
		identity.Student.Pfp = url
	}

	return &classroom.UploadPicResp{
		Msg:  "profile picture updated",
		Url:  url,
		User: identity.UserInfo(),
	}, nil
}

// DeleteUser removes an account. Accounts can only delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, role string, req *classroom.DeleteUserReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetUserId() != req.Id || meta.GetRole() != role {
		return nil, consts.ErrForbidden
	}

	var err error
	if role == consts.RoleTeacher {
		err = s.TeacherMapper.Delete(ctx, req.Id)
	} else {
		err = s.StudentMapper.Delete(ctx, req.Id)
	}
	if err != nil {
		log.Error("delete user failed: %v", err)
		return nil, consts.ErrDelete
	}
	return util.Succeed("deleted successfully")
}

func (s *UserService) checkEmailFree(ctx context.Context, role, email string) error {
	var err error
	if role == consts.RoleTeacher {
		_, err = s.TeacherMapper.FindOneByEmail(ctx, email)
	} else {
		_, err = s.StudentMapper.FindOneByEmail(ctx, email)
	}
	if err == nil {
		return consts.ErrEmailRegistered
	}
	if !errors.Is(err, consts.ErrNotFound) {
		return consts.ErrSignUp
	}
	return nil
}

// verifyLogin maps a credential lookup to its API error: a missing record is
// not found, a hash mismatch is invalid credentials.
func verifyLogin(lookupErr error, hash, password string) error {
	if lookupErr != nil {
		return consts.ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return consts.ErrInvalidCredentials
	}
	return nil
}

func applyUserPatch(username, email, desc *string, req *classroom.UpdateUserReq) {
	if req.Username != nil {
		*username = *req.Username
	}
	if req.Email != nil {
		*email = *req.Email
	}
	if req.Desc != nil {
		*desc = *req.Desc
	}
}

