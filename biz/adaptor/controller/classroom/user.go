package classroom

import (
	"context"

	"class-hive/biz/adaptor"
	"class-hive/biz/application/dto/basic"
	"class-hive/biz/application/dto/classroom"
	"class-hive/biz/infrastructure/consts"
	"class-hive/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// The student and teacher route groups share one handler set; the group picks
// the role and with it the backing collection.

func StudentRegister(ctx context.Context, c *app.RequestContext) {
	register(ctx, c, consts.RoleStudent)
}

func TeacherRegister(ctx context.Context, c *app.RequestContext) {
	register(ctx, c, consts.RoleTeacher)
}

func StudentLogin(ctx context.Context, c *app.RequestContext) {
	login(ctx, c, consts.RoleStudent)
}

func TeacherLogin(ctx context.Context, c *app.RequestContext) {
	login(ctx, c, consts.RoleTeacher)
}

func Me(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.UserService.Me(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

func GetStudent(ctx context.Context, c *app.RequestContext) {
	getUser(ctx, c, consts.RoleStudent)
}

func GetTeacher(ctx context.Context, c *app.RequestContext) {
	getUser(ctx, c, consts.RoleTeacher)
}

func ListStudents(ctx context.Context, c *app.RequestContext) {
	listUsers(ctx, c, consts.RoleStudent)
}

func ListTeachers(ctx context.Context, c *app.RequestContext) {
	listUsers(ctx, c, consts.RoleTeacher)
}

func SearchStudents(ctx context.Context, c *app.RequestContext) {
	searchUsers(ctx, c, consts.RoleStudent)
}

func SearchTeachers(ctx context.Context, c *app.RequestContext) {
	searchUsers(ctx, c, consts.RoleTeacher)
}

func UpdateUser(ctx context.Context, c *app.RequestContext) {
	var req classroom.UpdateUserReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.UserService.UpdateUser(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UploadPic(ctx context.Context, c *app.RequestContext) {
	file, err := c.FormFile("pic")
	if err != nil {
		adaptor.PostProcess(ctx, c, nil, nil, consts.ErrNoFiles)
		return
	}
	p := provider.Get()
	resp, err := p.UserService.UploadPic(ctx, file)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

func DeleteStudent(ctx context.Context, c *app.RequestContext) {
	deleteUser(ctx, c, consts.RoleStudent)
}

func DeleteTeacher(ctx context.Context, c *app.RequestContext) {
	deleteUser(ctx, c, consts.RoleTeacher)
}

func register(ctx context.Context, c *app.RequestContext, role string) {
	var req classroom.RegisterReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.UserService.Register(ctx, role, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func login(ctx context.Context, c *app.RequestContext, role string) {
	var req classroom.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.UserService.Login(ctx, role, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func getUser(ctx context.Context, c *app.RequestContext, role string) {
	var req classroom.GetUserReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.UserService.GetUser(ctx, role, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func listUsers(ctx context.Context, c *app.RequestContext, role string) {
	var opts basic.PaginationOptions
	if err := c.BindAndValidate(&opts); err != nil {
		adaptor.PostProcess(ctx, c, &opts, nil, consts.ErrInvalidParams)
		return
	}
	req := &classroom.ListUsersReq{PaginationOptions: &opts}
	p := provider.Get()
	resp, err := p.UserService.ListUsers(ctx, role, req)
	adaptor.PostProcess(ctx, c, req, resp, err)
}

func searchUsers(ctx context.Context, c *app.RequestContext, role string) {
	var req classroom.SearchUsersReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.UserService.SearchUsers(ctx, role, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func deleteUser(ctx context.Context, c *app.RequestContext, role string) {
	var req classroom.DeleteUserReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.UserService.DeleteUser(ctx, role, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
