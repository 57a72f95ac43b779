package service

import (
	"context"
	"errors"
	"fmt"

	"class-hive/biz/adaptor"
	"class-hive/biz/application/dto/basic"
	"class-hive/biz/application/dto/classroom"
	"class-hive/biz/infrastructure/consts"
	"class-hive/biz/infrastructure/lock"
	"class-hive/biz/infrastructure/repository/assignment"
	"class-hive/biz/infrastructure/repository/team"
	"class-hive/biz/infrastructure/util"
	"class-hive/biz/infrastructure/util/log"
	"class-hive/biz/infrastructure/util/page"

	"github.com/google/wire"
)

type ITeamService interface {
	CreateTeam(ctx context.Context, req *classroom.CreateTeamReq) (*classroom.CreateTeamResp, error)
	UpdateTeam(ctx context.Context, req *classroom.UpdateTeamReq) (*classroom.UpdateTeamResp, error)
	GetTeam(ctx context.Context, req *classroom.GetTeamReq) (*classroom.GetTeamResp, error)
	ListTeams(ctx context.Context, req *basic.PaginationOptions) (*classroom.ListTeamsResp, error)
	MyTeams(ctx context.Context) (*classroom.ListTeamsResp, error)
	JoinTeam(ctx context.Context, req *classroom.JoinTeamReq) (*classroom.JoinTeamResp, error)
	AddUser(ctx context.Context, req *classroom.AddUserReq) (*basic.Response, error)
	DeleteTeam(ctx context.Context, req *classroom.GetTeamReq) (*basic.Response, error)
}

type TeamService struct {
	TeamMapper       *team.MongoMapper
	MemberMapper     *team.MemberMongoMapper
	AssignmentMapper *assignment.MongoMapper
	Resolver         *IdentityResolver
}

var TeamServiceSet = wire.NewSet(
	wire.Struct(new(TeamService), "*"),
	wire.Bind(new(ITeamService), new(*TeamService)),
)

// CreateTeam creates a team owned by the calling teacher. The join code must
// be unused.
func (s *TeamService) CreateTeam(ctx context.Context, req *classroom.CreateTeamReq) (*classroom.CreateTeamResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}
	if identity.Role != consts.RoleTeacher {
		return nil, consts.ErrForbidden
	}

	if _, err := s.TeamMapper.FindOneByCode(ctx, req.Code); err == nil {
		return nil, consts.ErrDuplicateCode
	} else if !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrCreateTeam
	}

	t := &team.Team{
		Name:      req.Name,
		Code:      req.Code,
		Desc:      req.Desc,
		TeacherID: identity.Id(),
	}
	if err := s.TeamMapper.Insert(ctx, t); err != nil {
		log.Error("create team failed: %v", err)
		return nil, consts.ErrCreateTeam
	}

	return &classroom.CreateTeamResp{
		Msg:  "team created successfully",
		Team: teamInfo(t),
	}, nil
}

// UpdateTeam edits a team's name or description. Only the owning teacher may
// do so.
func (s *TeamService) UpdateTeam(ctx context.Context, req *classroom.UpdateTeamReq) (*classroom.UpdateTeamResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	t, err := s.TeamMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if identity.Role != consts.RoleTeacher || t.TeacherID != identity.Id() {
		return nil, consts.ErrForbidden
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Desc != nil {
		t.Desc = *req.Desc
	}
	if err := s.TeamMapper.Update(ctx, t); err != nil {
		log.Error("update team failed: %v", err)
		return nil, consts.ErrUpdate
	}

	return &classroom.UpdateTeamResp{
		Msg:  "team updated successfully",
		Team: teamInfo(t),
	}, nil
}

// GetTeam returns the full detail view: the owning teacher, the member list
// and the team's assignments.
func (s *TeamService) GetTeam(ctx context.Context, req *classroom.GetTeamReq) (*classroom.GetTeamResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	t, err := s.TeamMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	detail := &classroom.TeamDetail{
		TeamInfo:    *teamInfo(t),
		Students:    make([]*classroom.UserInfo, 0),
		Assignments: make([]*classroom.AssignmentInfo, 0),
	}

	owner, err := s.Resolver.TeacherMapper.FindOne(ctx, t.TeacherID)
	if err == nil {
		detail.Teacher = userInfoFromTeacher(owner)
	}

	members, _, err := s.MemberMapper.FindByTeamID(ctx, t.ID.Hex())
	if err != nil {
		log.Error("list team members failed: %v", err)
		return nil, consts.ErrNotFound
	}
	for _, m := range members {
		st, err := s.Resolver.StudentMapper.FindOne(ctx, m.StudentID)
		if err != nil {
			log.Error("resolve member %s failed: %v", m.StudentID, err)
			continue
		}
		detail.Students = append(detail.Students, userInfoFromStudent(st))
	}

	assignments, _, err := s.AssignmentMapper.FindByTeamID(ctx, t.ID.Hex())
	if err != nil {
		log.Error("list team assignments failed: %v", err)
		return nil, consts.ErrNotFound
	}
	for _, a := range assignments {
		detail.Assignments = append(detail.Assignments, assignmentInfo(a))
	}

	return &classroom.GetTeamResp{Team: detail}, nil
}

func (s *TeamService) ListTeams(ctx context.Context, req *basic.PaginationOptions) (*classroom.ListTeamsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	pageNum, pageSize := page.Parse(req)
	teams, total, err := s.TeamMapper.FindAll(ctx, pageNum, pageSize)
	if err != nil {
		log.Error("list teams failed: %v", err)
		return nil, consts.ErrNotFound
	}

	return s.listResp(teams, total), nil
}

// MyTeams lists the teams the caller owns (teacher) or belongs to (student).
func (s *TeamService) MyTeams(ctx context.Context) (*classroom.ListTeamsResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	if identity.Role == consts.RoleTeacher {
		teams, total, err := s.TeamMapper.FindByTeacher(ctx, identity.Id())
		if err != nil {
			log.Error("list teacher teams failed: %v", err)
			return nil, consts.ErrNotFound
		}
		return s.listResp(teams, total), nil
	}

	members, _, err := s.MemberMapper.FindByStudentID(ctx, identity.Id())
	if err != nil {
		log.Error("list student memberships failed: %v", err)
		return nil, consts.ErrNotFound
	}

	teams := make([]*team.Team, 0, len(members))
	for _, m := range members {
		t, err := s.TeamMapper.FindOne(ctx, m.TeamID)
		if err != nil {
			log.Error("resolve team %s failed: %v", m.TeamID, err)
			continue
		}
		teams = append(teams, t)
	}
	return s.listResp(teams, int64(len(teams))), nil
}

// JoinTeam enrols the calling student into the team behind a join code. A
// short redis lock serializes concurrent joins for the same student and team
// so the duplicate check cannot race.
func (s *TeamService) JoinTeam(ctx context.Context, req *classroom.JoinTeamReq) (*classroom.JoinTeamResp, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}
	if identity.Role != consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	t, err := s.TeamMapper.FindOneByCode(ctx, req.Code)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	mutex := lock.NewMutex(ctx, fmt.Sprintf("lock:join_team:%s:%s", t.ID.Hex(), identity.Id()), 5, 100)
	if err := mutex.Lock(); err != nil {
		if errors.Is(err, lock.ErrLockHeld) {
			return nil, consts.ErrJoinInFlight
		}
		log.Error("acquire join lock failed: %v", err)
		return nil, consts.ErrJoinTeam
	}
	defer mutex.Unlock()

	if err := enrol(ctx, s.MemberMapper, t.ID.Hex(), identity.Id()); err != nil {
		return nil, err
	}
	if mutex.Expired() {
		log.Error("join lock for team %s expired before enrolment finished", t.ID.Hex())
	}

	return &classroom.JoinTeamResp{
		Msg:  "joined team successfully",
		Team: teamInfo(t),
	}, nil
}

// AddUser lets the owning teacher add a student by sapid.
func (s *TeamService) AddUser(ctx context.Context, req *classroom.AddUserReq) (*basic.Response, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}
	if identity.Role != consts.RoleTeacher {
		return nil, consts.ErrForbidden
	}

	t, err := s.TeamMapper.FindOne(ctx, req.TeamId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if t.TeacherID != identity.Id() {
		return nil, consts.ErrForbidden
	}

	st, err := s.Resolver.StudentMapper.FindOneBySapid(ctx, req.Sapid)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if err := enrol(ctx, s.MemberMapper, t.ID.Hex(), st.ID.Hex()); err != nil {
		return nil, err
	}
	return util.Succeed("student added to team")
}

// DeleteTeam removes a team. Only the owning teacher may do so.
func (s *TeamService) DeleteTeam(ctx context.Context, req *classroom.GetTeamReq) (*basic.Response, error) {
	identity, err := s.Resolver.Resolve(ctx, adaptor.ExtractUserMeta(ctx))
	if err != nil {
		return nil, err
	}

	t, err := s.TeamMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if identity.Role != consts.RoleTeacher || t.TeacherID != identity.Id() {
		return nil, consts.ErrForbidden
	}

	if err := s.TeamMapper.Delete(ctx, req.Id); err != nil {
		log.Error("delete team failed: %v", err)
		return nil, consts.ErrDelete
	}
	return util.Succeed("team deleted successfully")
}

// memberStore is the slice of the membership mapper enrolment needs.
type memberStore interface {
	FindByTeamAndStudent(ctx context.Context, teamID, studentID string) (*team.TeamStudent, error)
	Insert(ctx context.Context, member *team.TeamStudent) error
}

// enrol inserts the membership record unless the student is already in.
func enrol(ctx context.Context, members memberStore, teamID, studentID string) error {
	existing, err := members.FindByTeamAndStudent(ctx, teamID, studentID)
	if err == nil && existing != nil {
		return consts.ErrAlreadyInTeam
	}
	if err != nil && !errors.Is(err, consts.ErrNotFound) {
		return consts.ErrJoinTeam
	}

	member := &team.TeamStudent{
		TeamID:    teamID,
		StudentID: studentID,
	}
	if err := members.Insert(ctx, member); err != nil {
		log.Error("insert team member failed: %v", err)
		return consts.ErrJoinTeam
	}
	return nil
}

func (s *TeamService) listResp(teams []*team.Team, total int64) *classroom.ListTeamsResp {
	resp := &classroom.ListTeamsResp{Teams: make([]*classroom.TeamInfo, 0, len(teams))}
	for _, t := range teams {
		resp.Teams = append(resp.Teams, teamInfo(t))
	}
	resp.Total = total
	return resp
}
