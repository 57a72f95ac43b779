package service

import (
	"testing"
	"time"

	"class-hive/biz/infrastructure/repository/student"
	"class-hive/biz/infrastructure/repository/submission"
	"class-hive/biz/infrastructure/repository/team"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserInfoFromStudent(t *testing.T) {
	now := time.Now()
	s := &student.Student{
		ID:         primitive.NewObjectID(),
		Sapid:      60004210075,
		Username:   "alice",
		Email:      "alice@example.com",
		Password:   "$2a$10$secret",
		Desc:       "cs undergrad",
		Pfp:        "https://cdn.example.com/pfp/a.png",
		CreateTime: now,
	}

	info := userInfoFromStudent(s)
	if info.Id != s.ID.Hex() {
		t.Errorf("id = %q, want %q", info.Id, s.ID.Hex())
	}
	if info.Sapid != s.Sapid || info.Username != s.Username || info.Email != s.Email {
		t.Errorf("fields not copied: %+v", info)
	}
	if info.Pfp != s.Pfp || info.Desc != s.Desc {
		t.Errorf("profile fields not copied: %+v", info)
	}
	if info.CreateTime != now.Unix() {
		t.Errorf("createTime = %d, want %d", info.CreateTime, now.Unix())
	}
}

func TestTeamInfo(t *testing.T) {
	tm := &team.Team{
		ID:         primitive.NewObjectID(),
		Name:       "Algorithms A",
		Code:       "ALGO-1",
		Desc:       "weekly problem sets",
		TeacherID:  primitive.NewObjectID().Hex(),
		CreateTime: time.Now(),
	}

	info := teamInfo(tm)
	if info.Id != tm.ID.Hex() || info.TeacherId != tm.TeacherID {
		t.Errorf("ids not flattened: %+v", info)
	}
	if info.Name != tm.Name || info.Code != tm.Code {
		t.Errorf("fields not copied: %+v", info)
	}
}

func TestSubmissionInfo(t *testing.T) {
	sub := &submission.Submission{
		ID:           primitive.NewObjectID(),
		StudentID:    primitive.NewObjectID().Hex(),
		AssignmentID: primitive.NewObjectID().Hex(),
		Desc:         "final draft",
		Marks:        87,
		Remarks:      "good work",
		CreateTime:   time.Now(),
		UpdateTime:   time.Now(),
	}

	info := submissionInfo(sub)
	if info.StudentId != sub.StudentID || info.AssignmentId != sub.AssignmentID {
		t.Errorf("parent ids not flattened: %+v", info)
	}
	if info.Marks != 87 || info.Remarks != "good work" {
		t.Errorf("grading fields not copied: %+v", info)
	}
}
