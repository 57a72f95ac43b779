package submission

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one piece of submitted work. A student may hold several
// submissions against the same assignment; uniqueness is deliberately not
// enforced here.
type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID    string             `bson:"student_id" json:"studentId"`
	AssignmentID string             `bson:"assignment_id" json:"assignmentId"`
	Desc         string             `bson:"desc" json:"desc"`
	Marks        int64              `bson:"marks" json:"marks"`
	Remarks      string             `bson:"remarks" json:"remarks"`
	CreateTime   time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime   time.Time          `bson:"update_time" json:"updateTime"`
}
