package classroom

import (
	"context"

	"class-hive/biz/adaptor"
	"class-hive/biz/application/dto/classroom"
	"class-hive/biz/infrastructure/consts"
	"class-hive/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

func CreateSubmission(ctx context.Context, c *app.RequestContext) {
	var req classroom.CreateSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.CreateSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetSubmission(ctx context.Context, c *app.RequestContext) {
	var req classroom.GetSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.GetSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetSubmissionsByAssignment(ctx context.Context, c *app.RequestContext) {
	var req classroom.GetSubmissionsByAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.GetSubmissionsByAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetStudentSubmission(ctx context.Context, c *app.RequestContext) {
	var req classroom.GetStudentSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.GetStudentSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func MySubmissions(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.SubmissionService.MySubmissions(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

func UpdateSubmission(ctx context.Context, c *app.RequestContext) {
	var req classroom.UpdateSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.UpdateSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func DeleteSubmission(ctx context.Context, c *app.RequestContext) {
	var req classroom.DeleteSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.DeleteSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
