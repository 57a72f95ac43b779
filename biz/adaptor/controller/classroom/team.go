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

func CreateTeam(ctx context.Context, c *app.RequestContext) {
	var req classroom.CreateTeamReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.TeamService.CreateTeam(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateTeam(ctx context.Context, c *app.RequestContext) {
	var req classroom.UpdateTeamReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.TeamService.UpdateTeam(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetTeam(ctx context.Context, c *app.RequestContext) {
	var req classroom.GetTeamReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.TeamService.GetTeam(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ListTeams(ctx context.Context, c *app.RequestContext) {
	var req basic.PaginationOptions
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.TeamService.ListTeams(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func MyTeams(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.TeamService.MyTeams(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

func JoinTeam(ctx context.Context, c *app.RequestContext) {
	var req classroom.JoinTeamReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.TeamService.JoinTeam(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func AddUser(ctx context.Context, c *app.RequestContext) {
	var req classroom.AddUserReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.TeamService.AddUser(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func DeleteTeam(ctx context.Context, c *app.RequestContext) {
	var req classroom.GetTeamReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.TeamService.DeleteTeam(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
