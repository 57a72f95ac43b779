package consts

var PageSize int64 = 10

// database fields
const (
	ID           = "_id"
	Email        = "email"
	Sapid        = "sapid"
	Username     = "username"
	Code         = "code"
	TeamID       = "team_id"
	StudentID    = "student_id"
	TeacherID    = "teacher_id"
	AssignmentID = "assignment_id"
	SubmissionID = "submission_id"
	GenerationID = "generation_id"
	CreateTime   = "create_time"
	Deadline     = "deadline"
)

// roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// http
const (
	Post            = "POST"
	ContentTypeJson = "application/json"
	CharSetUTF8     = "UTF-8"
)

// defaults
const (
	DefaultPaperQuestionCount = 10
	DefaultSeedQuestionCount  = 5
	MaxUploadFiles            = 10
)

// AllowedUploadTypes mirrors the original upload filter: images and pdf only.
var AllowedUploadTypes = []string{
	"image/jpeg",
	"image/png",
	"image/jpg",
	"application/pdf",
}
