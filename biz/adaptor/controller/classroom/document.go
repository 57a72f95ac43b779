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

// UploadDocuments reads a multipart batch from the "files" field plus the
// parent id form fields.
func UploadDocuments(ctx context.Context, c *app.RequestContext) {
	var req classroom.UploadDocumentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrNoFiles)
		return
	}

	p := provider.Get()
	resp, err := p.DocumentService.UploadDocuments(ctx, &req, form.File["files"])
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func ListDocuments(ctx context.Context, c *app.RequestContext) {
	var req basic.PaginationOptions
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.DocumentService.ListDocuments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func GetDocumentsByAssignment(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.DocumentService.GetDocumentsByAssignment(ctx, c.Param("assignmentId"))
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

func GetDocumentsBySubmission(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.DocumentService.GetDocumentsBySubmission(ctx, c.Param("submissionId"))
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

func GetDocumentsByGeneration(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.DocumentService.GetDocumentsByGeneration(ctx, c.Param("generationId"))
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

func DeleteDocument(ctx context.Context, c *app.RequestContext) {
	var req classroom.DeleteDocumentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams)
		return
	}
	p := provider.Get()
	resp, err := p.DocumentService.DeleteDocument(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
