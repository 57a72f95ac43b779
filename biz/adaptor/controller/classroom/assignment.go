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

func CreateAssignment(ctx context.Context, c *app.RequestContext) {
	var req classroom.CreateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.CreateAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func UpdateAssignment(ctx context.Context, c *app.RequestContext) {
	var req classroom.UpdateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.UpdateAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ListAssignments(ctx context.Context, c *app.RequestContext) {
	var req basic.PaginationOptions
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.ListAssignments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetAssignmentsByTeam(ctx context.Context, c *app.RequestContext) {
	var req classroom.GetAssignmentsByTeamReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.GetAssignmentsByTeam(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func MyAssignments(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.AssignmentService.MyAssignments(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

func DeleteAssignment(ctx context.Context, c *app.RequestContext) {
	var req classroom.DeleteAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.DeleteAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
