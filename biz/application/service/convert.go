package service

import (
	"class-hive/biz/application/dto/classroom"
	"class-hive/biz/infrastructure/repository/assignment"
	"class-hive/biz/infrastructure/repository/document"
	"class-hive/biz/infrastructure/repository/generation"
	"class-hive/biz/infrastructure/repository/student"
	"class-hive/biz/infrastructure/repository/submission"
	"class-hive/biz/infrastructure/repository/team"
	"class-hive/biz/infrastructure/repository/teacher"

	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

// Conversions from repository models to response DTOs. Matching fields are
// copied by name; ids and timestamps need flattening by hand.

func userInfoFromStudent(s *student.Student) *classroom.UserInfo {
	info := new(classroom.UserInfo)
	_ = copier.Copy(info, s)
	info.Id = s.ID.Hex()
	info.CreateTime = s.CreateTime.Unix()
	return info
}

func userInfoFromTeacher(t *teacher.Teacher) *classroom.UserInfo {
	info := new(classroom.UserInfo)
	_ = copier.Copy(info, t)
	info.Id = t.ID.Hex()
	info.CreateTime = t.CreateTime.Unix()
	return info
}

func teamInfo(t *team.Team) *classroom.TeamInfo {
	info := new(classroom.TeamInfo)
	_ = copier.Copy(info, t)
	info.Id = t.ID.Hex()
	info.TeacherId = t.TeacherID
	info.CreateTime = t.CreateTime.Unix()
	return info
}

func assignmentInfo(a *assignment.Assignment) *classroom.AssignmentInfo {
	info := new(classroom.AssignmentInfo)
	_ = copier.Copy(info, a)
	info.Id = a.ID.Hex()
	info.TeamId = a.TeamID
	info.TeacherId = a.TeacherID
	info.Deadline = a.Deadline.Unix()
	info.CreateTime = a.CreateTime.Unix()
	return info
}

func submissionInfo(s *submission.Submission) *classroom.SubmissionInfo {
	info := new(classroom.SubmissionInfo)
	_ = copier.Copy(info, s)
	info.Id = s.ID.Hex()
	info.StudentId = s.StudentID
	info.AssignmentId = s.AssignmentID
	info.CreateTime = s.CreateTime.Unix()
	info.UpdateTime = s.UpdateTime.Unix()
	return info
}

func documentInfo(d *document.Document) *classroom.DocumentInfo {
	return &classroom.DocumentInfo{
		Id:           d.ID.Hex(),
		Url:          d.URL,
		AssignmentId: d.AssignmentID,
		SubmissionId: d.SubmissionID,
		GenerationId: d.GenerationID,
		CreateTime:   d.CreateTime.Unix(),
	}
}

func documentInfos(docs []*document.Document) []*classroom.DocumentInfo {
	return lo.Map(docs, func(d *document.Document, _ int) *classroom.DocumentInfo {
		return documentInfo(d)
	})
}

func generationInfo(g *generation.QuestionGeneration) *classroom.GenerationInfo {
	info := new(classroom.GenerationInfo)
	_ = copier.Copy(info, g)
	info.Id = g.ID.Hex()
	info.TeacherId = g.TeacherID
	info.CreateTime = g.CreateTime.Unix()
	return info
}
