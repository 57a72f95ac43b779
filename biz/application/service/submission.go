package service

import (
	"context"
	"time"

	"class-hive/biz/adaptor"
	"class-hive/biz/application/dto/basic"
	"class-hive/biz/application/dto/classroom"
	"class-hive/biz/infrastructure/consts"
	"class-hive/biz/infrastructure/repository/assignment"
	"class-hive/biz/infrastructure/repository/document"
	"class-hive/biz/infrastructure/repository/submission"
	"class-hive/biz/infrastructure/util"
	"class-hive/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type ISubmissionService interface {
	CreateSubmission(ctx context.Context, req *classroom.CreateSubmissionReq) (*classroom.CreateSubmissionResp, error)
	GetSubmission(ctx context.Context, req *classroom.GetSubmissionReq) (*classroom.GetSubmissionResp, error)
	GetSubmissionsByAssignment(ctx context.Context, req *classroom.GetSubmissionsByAssignmentReq) (*classroom.ListSubmissionsResp, error)
	GetStudentSubmission(ctx context.Context, req *classroom.GetStudentSubmissionReq) (*classroom.GetSubmissionResp, error)
	MySubmissions(ctx context.Context) (*classroom.ListSubmissionsResp, error)
	UpdateSubmission(ctx context.Context, req *classroom.UpdateSubmissionReq) (*classroom.UpdateSubmissionResp, error)
	DeleteSubmission(ctx context.Context, req *classroom.DeleteSubmissionReq) (*basic.Response, error)
}

type SubmissionService struct {
	SubmissionMapper *submission.MongoMapper
	AssignmentMapper *assignment.MongoMapper
	DocumentMapper   *document.MongoMapper
	Resolver         *IdentityResolver
}

var SubmissionServiceSet = wire.NewSet(
	wire.Struct(new(SubmissionService), "*"),
	wire.Bind(new(ISubmissionService), new(*SubmissionService)),
)

// CreateSubmission hands in work against an assignment. Submissions are
// rejected once the deadline has passed; repeated submissions before it are
// allowed.
func (s *SubmissionService) CreateSubmission(ctx context.Context, req *classroom.CreateSubmissionReq) (*classroom.CreateSubmissionResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}
	if identity.Role != consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err := checkDeadline(a, time.Now()); err != nil {
		return nil, err
	}

	sub := &submission.Submission{
		StudentID:    identity.Id(),
		AssignmentID: a.ID.Hex(),
		Desc:         req.Desc,
	}
	if err := s.SubmissionMapper.Insert(ctx, sub); err != nil {
		log.Error("create submission failed: %v", err)
		return nil, consts.ErrCreateSubmission
	}

	return &classroom.CreateSubmissionResp{
		Msg:        "submission created successfully",
		Submission: submissionInfo(sub),
	}, nil
}

// GetSubmission returns one submission with its student, assignment and
// documents. Visible to the owning student and the assignment's teacher.
func (s *SubmissionService) GetSubmission(ctx context.Context, req *classroom.GetSubmissionReq) (*classroom.GetSubmissionResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err := s.checkAccess(ctx, identity, sub); err != nil {
		return nil, err
	}

	return &classroom.GetSubmissionResp{Submission: s.expand(ctx, sub)}, nil
}

// GetSubmissionsByAssignment lists everything handed in against an
// assignment. Only the assignment's teacher may call it.
func (s *SubmissionService) GetSubmissionsByAssignment(ctx context.Context, req *classroom.GetSubmissionsByAssignmentReq) (*classroom.ListSubmissionsResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if identity.Role != consts.RoleTeacher || a.TeacherID != identity.Id() {
		return nil, consts.ErrForbidden
	}

	subs, total, err := s.SubmissionMapper.FindByAssignment(ctx, req.AssignmentId)
	if err != nil {
		log.Error("list submissions failed: %v", err)
		return nil, consts.ErrNotFound
	}

	resp := &classroom.ListSubmissionsResp{Submissions: make([]*classroom.SubmissionInfo, 0, len(subs))}
	for _, sub := range subs {
		resp.Submissions = append(resp.Submissions, s.expand(ctx, sub))
	}
	resp.Total = total
	return resp, nil
}

// GetStudentSubmission fetches one student's submission for an assignment.
// Students may only look up their own.
func (s *SubmissionService) GetStudentSubmission(ctx context.Context, req *classroom.GetStudentSubmissionReq) (*classroom.GetSubmissionResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	switch identity.Role {
	case consts.RoleStudent:
		if req.StudentId != identity.Id() {
			return nil, consts.ErrForbidden
		}
	case consts.RoleTeacher:
		if a.TeacherID != identity.Id() {
			return nil, consts.ErrForbidden
		}
	}

	sub, err := s.SubmissionMapper.FindByStudentAndAssignment(ctx, req.StudentId, req.AssignmentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &classroom.GetSubmissionResp{Submission: s.expand(ctx, sub)}, nil
}

// MySubmissions lists the calling student's own submissions.
func (s *SubmissionService) MySubmissions(ctx context.Context) (*classroom.ListSubmissionsResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}
	if identity.Role != consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	subs, total, err := s.SubmissionMapper.FindByStudent(ctx, identity.Id())
	if err != nil {
		log.Error("list own submissions failed: %v", err)
		return nil, consts.ErrNotFound
	}

	resp := &classroom.ListSubmissionsResp{Submissions: make([]*classroom.SubmissionInfo, 0, len(subs))}
	for _, sub := range subs {
		resp.Submissions = append(resp.Submissions, s.expand(ctx, sub))
	}
	resp.Total = total
	return resp, nil
}

// UpdateSubmission edits a submission. The owning student may change the
// description; marks and remarks are reserved for the assignment's teacher.
func (s *SubmissionService) UpdateSubmission(ctx context.Context, req *classroom.UpdateSubmissionReq) (*classroom.UpdateSubmissionResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err := s.checkAccess(ctx, identity, sub); err != nil {
		return nil, err
	}

	if req.Marks != nil || req.Remarks != nil {
		if identity.Role != consts.RoleTeacher {
			return nil, consts.ErrForbidden
		}
		if req.Marks != nil {
			sub.Marks = *req.Marks
		}
		if req.Remarks != nil {
			sub.Remarks = *req.Remarks
		}
	}
	if req.Desc != nil {
		if identity.Role != consts.RoleStudent {
			return nil, consts.ErrForbidden
		}
		sub.Desc = *req.Desc
	}

	if err := s.SubmissionMapper.Update(ctx, sub); err != nil {
		log.Error("update submission failed: %v", err)
		return nil, consts.ErrUpdate
	}

	return &classroom.UpdateSubmissionResp{
		Msg:        "submission updated successfully",
		Submission: submissionInfo(sub),
	}, nil
}

// DeleteSubmission removes a submission. Allowed for the owning student and
// the assignment's teacher.
func (s *SubmissionService) DeleteSubmission(ctx context.Context, req *classroom.DeleteSubmissionReq) (*basic.Response, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if err := s.checkAccess(ctx, identity, sub); err != nil {
		return nil, err
	}

	if err := s.SubmissionMapper.Delete(ctx, req.SubmissionId); err != nil {
		log.Error("delete submission failed: %v", err)
		return nil, consts.ErrDelete
	}
	return util.Succeed("submission deleted successfully")
}

// checkDeadline rejects hand-ins once the assignment's deadline lies strictly
// in the past; at the instant itself work is still accepted.
func checkDeadline(a *assignment.Assignment, now time.Time) error {
	if now.After(a.Deadline) {
		return consts.ErrDeadlinePassed
	}
	return nil
}

// checkAccess admits the owning student and the assignment's teacher.
func (s *SubmissionService) checkAccess(ctx context.Context, identity *Identity, sub *submission.Submission) error {
	if identity.Role == consts.RoleStudent {
		if sub.StudentID != identity.Id() {
			return consts.ErrForbidden
		}
		return nil
	}

	a, err := s.AssignmentMapper.FindOne(ctx, sub.AssignmentID)
	if err != nil {
		return consts.ErrNotFound
	}
	if a.TeacherID != identity.Id() {
		return consts.ErrForbidden
	}
	return nil
}

// expand attaches the student, assignment and document views.
func (s *SubmissionService) expand(ctx context.Context, sub *submission.Submission) *classroom.SubmissionInfo {
	info := submissionInfo(sub)

	if st, err := s.Resolver.StudentMapper.FindOne(ctx, sub.StudentID); err == nil {
		info.Student = userInfoFromStudent(st)
	}
	if a, err := s.AssignmentMapper.FindOne(ctx, sub.AssignmentID); err == nil {
		info.Assignment = assignmentInfo(a)
	}
	if docs, err := s.DocumentMapper.FindBySubmission(ctx, sub.ID.Hex()); err == nil {
		info.Documents = documentInfos(docs)
	}
	return info
}
