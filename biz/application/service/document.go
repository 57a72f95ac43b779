package service

import (
	"context"
	"mime/multipart"

	"class-hive/biz/adaptor"
	"class-hive/biz/application/dto/basic"
	"class-hive/biz/application/dto/classroom"
	"class-hive/biz/infrastructure/consts"
	"class-hive/biz/infrastructure/repository/assignment"
	"class-hive/biz/infrastructure/repository/document"
	"class-hive/biz/infrastructure/repository/generation"
	"class-hive/biz/infrastructure/repository/submission"
	"class-hive/biz/infrastructure/storage"
	"class-hive/biz/infrastructure/util"
	"class-hive/biz/infrastructure/util/log"
	"class-hive/biz/infrastructure/util/page"

	"github.com/google/wire"
)

type IDocumentService interface {
	UploadDocuments(ctx context.Context, req *classroom.UploadDocumentReq, files []*multipart.FileHeader) (*classroom.UploadDocumentResp, error)
	ListDocuments(ctx context.Context, req *basic.PaginationOptions) (*classroom.ListDocumentsResp, error)
	GetDocumentsByAssignment(ctx context.Context, assignmentId string) (*classroom.ListDocumentsResp, error)
	GetDocumentsBySubmission(ctx context.Context, submissionId string) (*classroom.ListDocumentsResp, error)
	GetDocumentsByGeneration(ctx context.Context, generationId string) (*classroom.ListDocumentsResp, error)
	DeleteDocument(ctx context.Context, req *classroom.DeleteDocumentReq) (*basic.Response, error)
}

type DocumentService struct {
	DocumentMapper   *document.MongoMapper
	AssignmentMapper *assignment.MongoMapper
	SubmissionMapper *submission.MongoMapper
	GenerationMapper *generation.MongoMapper
	Resolver         *IdentityResolver
	Storage          *storage.Client
}

var DocumentServiceSet = wire.NewSet(
	wire.Struct(new(DocumentService), "*"),
	wire.Bind(new(IDocumentService), new(*DocumentService)),
)

// UploadDocuments stores a batch of files and attaches them to exactly one
// parent: an assignment, a submission or a generation batch. The caller must
// own that parent.
func (s *DocumentService) UploadDocuments(ctx context.Context, req *classroom.UploadDocumentReq, files []*multipart.FileHeader) (*classroom.UploadDocumentResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, consts.ErrNoFiles
	}
	if len(files) > consts.MaxUploadFiles {
		return nil, consts.ErrInvalidParams
	}

	prefix, err := s.checkParent(ctx, identity, req)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		if !storage.AllowedType(file.Header.Get("Content-Type")) {
			return nil, consts.ErrFileType
		}
	}

	resp := &classroom.UploadDocumentResp{Documents: make([]*classroom.DocumentInfo, 0, len(files))}
	for _, file := range files {
		url, err := s.uploadOne(ctx, prefix, file)
		if err != nil {
			return nil, err
		}

		doc := &document.Document{
			URL:          url,
			AssignmentID: req.AssignmentId,
			SubmissionID: req.SubmissionId,
			GenerationID: req.GenerationId,
		}
		if err := s.DocumentMapper.Insert(ctx, doc); err != nil {
			log.Error("insert document failed: %v", err)
			return nil, consts.ErrUpload
		}
		resp.Documents = append(resp.Documents, documentInfo(doc))
	}

	resp.Msg = "documents uploaded successfully"
	return resp, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, req *basic.PaginationOptions) (*classroom.ListDocumentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	pageNum, pageSize := page.Parse(req)
	docs, total, err := s.DocumentMapper.FindAll(ctx, pageNum, pageSize)
	if err != nil {
		log.Error("list documents failed: %v", err)
		return nil, consts.ErrNotFound
	}

	return &classroom.ListDocumentsResp{
		Documents: documentInfos(docs),
		Total:     total,
	}, nil
}

func (s *DocumentService) GetDocumentsByAssignment(ctx context.Context, assignmentId string) (*classroom.ListDocumentsResp, error) {
	return s.listByParent(ctx, assignmentId, s.DocumentMapper.FindByAssignment)
}

func (s *DocumentService) GetDocumentsBySubmission(ctx context.Context, submissionId string) (*classroom.ListDocumentsResp, error) {
	return s.listByParent(ctx, submissionId, s.DocumentMapper.FindBySubmission)
}

func (s *DocumentService) GetDocumentsByGeneration(ctx context.Context, generationId string) (*classroom.ListDocumentsResp, error) {
	return s.listByParent(ctx, generationId, s.DocumentMapper.FindByGeneration)
}

// DeleteDocument removes a document record. The caller must own the parent
// the document hangs off.
func (s *DocumentService) DeleteDocument(ctx context.Context, req *classroom.DeleteDocumentReq) (*basic.Response, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	doc, err := s.DocumentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if _, err := s.checkParent(ctx, identity, &classroom.UploadDocumentReq{
		AssignmentId: doc.AssignmentID,
		SubmissionId: doc.SubmissionID,
		GenerationId: doc.GenerationID,
	}); err != nil {
		return nil, err
	}

	if err := s.DocumentMapper.Delete(ctx, req.Id); err != nil {
		log.Error("delete document failed: %v", err)
		return nil, consts.ErrDelete
	}
	return util.Succeed("document deleted successfully")
}

// checkParent enforces the one-parent union, verifies the parent exists and
// that the caller owns it, and returns the object key prefix for uploads.
func (s *DocumentService) checkParent(ctx context.Context, identity *Identity, req *classroom.UploadDocumentReq) (string, error) {
	if !exactlyOneParent(req) {
		return "", consts.ErrDocumentParent
	}

	switch {
	case req.AssignmentId != "":
		a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentId)
		if err != nil {
			return "", consts.ErrNotFound
		}
		if identity.Role != consts.RoleTeacher || a.TeacherID != identity.Id() {
			return "", consts.ErrForbidden
		}
		return "assignment", nil
	case req.SubmissionId != "":
		sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
		if err != nil {
			return "", consts.ErrNotFound
		}
		if identity.Role != consts.RoleStudent || sub.StudentID != identity.Id() {
			return "", consts.ErrForbidden
		}
		return "submission", nil
	default:
		g, err := s.GenerationMapper.FindOne(ctx, req.GenerationId)
		if err != nil {
			return "", consts.ErrNotFound
		}
		if identity.Role != consts.RoleTeacher || g.TeacherID != identity.Id() {
			return "", consts.ErrForbidden
		}
		return "generation", nil
	}
}

// exactlyOneParent holds when precisely one parent id is set.
func exactlyOneParent(req *classroom.UploadDocumentReq) bool {
	set := 0
	for _, id := range []string{req.AssignmentId, req.SubmissionId, req.GenerationId} {
		if id != "" {
			set++
		}
	}
	return set == 1
}

func (s *DocumentService) uploadOne(ctx context.Context, prefix string, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		log.Error("open uploaded file failed: %v", err)
		return "", consts.ErrUpload
	}
	defer f.Close()

	url, err := s.Storage.Upload(ctx, storage.ObjectKey(prefix, file.Filename), file.Header.Get("Content-Type"), f)
	if err != nil {
		log.Error("upload document failed: %v", err)
		return "", consts.ErrUpload
	}
	return url, nil
}

func (s *DocumentService) listByParent(ctx context.Context, parentId string, find func(context.Context, string) ([]*document.Document, error)) (*classroom.ListDocumentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	docs, err := find(ctx, parentId)
	if err != nil {
		log.Error("list documents by parent failed: %v", err)
		return nil, consts.ErrNotFound
	}

	return &classroom.ListDocumentsResp{
		Documents: documentInfos(docs),
		Total:     int64(len(docs)),
	}, nil
}
