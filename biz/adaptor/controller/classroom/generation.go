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

func CreateGeneration(ctx context.Context, c *app.RequestContext) {
	var req classroom.CreateGenerationReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.GenerationService.CreateGeneration(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetGeneration(ctx context.Context, c *app.RequestContext) {
	var req classroom.GetGenerationReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.GenerationService.GetGeneration(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ListGenerations(ctx context.Context, c *app.RequestContext) {
	var req basic.PaginationOptions
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.GenerationService.ListGenerations(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func MyGenerations(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.GenerationService.MyGenerations(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

func UpdateGeneration(ctx context.Context, c *app.RequestContext) {
	var req classroom.UpdateGenerationReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.GenerationService.UpdateGeneration(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func DeleteGeneration(ctx context.Context, c *app.RequestContext) {
	var req classroom.DeleteGenerationReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.GenerationService.DeleteGeneration(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GeneratePaper(ctx context.Context, c *app.RequestContext) {
	var req classroom.GeneratePaperReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.GenerationService.GeneratePaper(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetPaper(ctx context.Context, c *app.RequestContext) {
	var req classroom.GetGenerationReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.GenerationService.GetPaper(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GradeAnswer(ctx context.Context, c *app.RequestContext) {
	var req classroom.GradeAnswerReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.GenerationService.GradeAnswer(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
