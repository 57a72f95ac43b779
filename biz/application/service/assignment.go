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
	"class-hive/biz/infrastructure/repository/team"
	"class-hive/biz/infrastructure/util"
	"class-hive/biz/infrastructure/util/log"
	"class-hive/biz/infrastructure/util/page"

	"github.com/google/wire"
)

type IAssignmentService interface {
	CreateAssignment(ctx context.Context, req *classroom.CreateAssignmentReq) (*classroom.CreateAssignmentResp, error)
	UpdateAssignment(ctx context.Context, req *classroom.UpdateAssignmentReq) (*classroom.UpdateAssignmentResp, error)
	ListAssignments(ctx context.Context, req *basic.PaginationOptions) (*classroom.ListAssignmentsResp, error)
	GetAssignmentsByTeam(ctx context.Context, req *classroom.GetAssignmentsByTeamReq) (*classroom.ListAssignmentsResp, error)
	MyAssignments(ctx context.Context) (*classroom.ListAssignmentsResp, error)
	DeleteAssignment(ctx context.Context, req *classroom.DeleteAssignmentReq) (*basic.Response, error)
}

type AssignmentService struct {
	AssignmentMapper *assignment.MongoMapper
	TeamMapper       *team.MongoMapper
	DocumentMapper   *document.MongoMapper
	Resolver         *IdentityResolver
}

var AssignmentServiceSet = wire.NewSet(
	wire.Struct(new(AssignmentService), "*"),
	wire.Bind(new(IAssignmentService), new(*AssignmentService)),
)

// CreateAssignment posts an assignment to a team the calling teacher owns.
// The deadline is RFC 3339 and may lie in the past; only submissions check it.
func (s *AssignmentService) CreateAssignment(ctx context.Context, req *classroom.CreateAssignmentReq) (*classroom.CreateAssignmentResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}
	if identity.Role != consts.RoleTeacher {
		return nil, consts.ErrForbidden
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		return nil, consts.ErrInvalidParams
	}

	t, err := s.TeamMapper.FindOne(ctx, req.TeamId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if t.TeacherID != identity.Id() {
		return nil, consts.ErrForbidden
	}

	a := &assignment.Assignment{
		Name:      req.Name,
		Desc:      req.Desc,
		Deadline:  deadline,
		TeamID:    t.ID.Hex(),
		TeacherID: identity.Id(),
	}
	if err := s.AssignmentMapper.Insert(ctx, a); err != nil {
		log.Error("create assignment failed: %v", err)
		return nil, consts.ErrCreateAssignment
	}

	return &classroom.CreateAssignmentResp{
		Msg:        "assignment created successfully",
		Assignment: assignmentInfo(a),
	}, nil
}

// UpdateAssignment edits an assignment. Only its teacher may do so.
func (s *AssignmentService) UpdateAssignment(ctx context.Context, req *classroom.UpdateAssignmentReq) (*classroom.UpdateAssignmentResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if identity.Role != consts.RoleTeacher || a.TeacherID != identity.Id() {
		return nil, consts.ErrForbidden
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Desc != nil {
		a.Desc = *req.Desc
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			return nil, consts.ErrInvalidParams
		}
		a.Deadline = deadline
	}

	if err := s.AssignmentMapper.Update(ctx, a); err != nil {
		log.Error("update assignment failed: %v", err)
		return nil, consts.ErrUpdate
	}

	return &classroom.UpdateAssignmentResp{
		Msg:        "assignment updated successfully",
		Assignment: assignmentInfo(a),
	}, nil
}

func (s *AssignmentService) ListAssignments(ctx context.Context, req *basic.PaginationOptions) (*classroom.ListAssignmentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	pageNum, pageSize := page.Parse(req)
	assignments, total, err := s.AssignmentMapper.FindAll(ctx, pageNum, pageSize)
	if err != nil {
		log.Error("list assignments failed: %v", err)
		return nil, consts.ErrNotFound
	}
	return s.listResp(ctx, assignments, total), nil
}

// GetAssignmentsByTeam returns a team's assignments ordered by deadline, each
// with its attached documents.
func (s *AssignmentService) GetAssignmentsByTeam(ctx context.Context, req *classroom.GetAssignmentsByTeamReq) (*classroom.ListAssignmentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if _, err := s.TeamMapper.FindOne(ctx, req.TeamId); err != nil {
		return nil, consts.ErrNotFound
	}

	assignments, total, err := s.AssignmentMapper.FindByTeamID(ctx, req.TeamId)
	if err != nil {
		log.Error("list team assignments failed: %v", err)
		return nil, consts.ErrNotFound
	}
	return s.listResp(ctx, assignments, total), nil
}

// MyAssignments lists the assignments the calling teacher has posted across
// all teams.
func (s *AssignmentService) MyAssignments(ctx context.Context) (*classroom.ListAssignmentsResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}
	if identity.Role != consts.RoleTeacher {
		return nil, consts.ErrForbidden
	}

	assignments, total, err := s.AssignmentMapper.FindByTeacher(ctx, identity.Id())
	if err != nil {
		log.Error("list own assignments failed: %v", err)
		return nil, consts.ErrNotFound
	}
	return s.listResp(ctx, assignments, total), nil
}

// DeleteAssignment removes an assignment. Only its teacher may do so.
func (s *AssignmentService) DeleteAssignment(ctx context.Context, req *classroom.DeleteAssignmentReq) (*basic.Response, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if identity.Role != consts.RoleTeacher || a.TeacherID != identity.Id() {
		return nil, consts.ErrForbidden
	}

	if err := s.AssignmentMapper.Delete(ctx, req.Id); err != nil {
		log.Error("delete assignment failed: %v", err)
		return nil, consts.ErrDelete
	}
	return util.Succeed("assignment deleted successfully")
}

func (s *AssignmentService) listResp(ctx context.Context, assignments []*assignment.Assignment, total int64) *classroom.ListAssignmentsResp {
	resp := &classroom.ListAssignmentsResp{Assignments: make([]*classroom.AssignmentInfo, 0, len(assignments))}
	for _, a := range assignments {
		info := assignmentInfo(a)
		docs, err := s.DocumentMapper.FindByAssignment(ctx, a.ID.Hex())
		if err != nil {
			log.Error("list assignment documents failed: %v", err)
		} else {
			info.Documents = documentInfos(docs)
		}
		resp.Assignments = append(resp.Assignments, info)
	}
	resp.Total = total
	return resp
}
