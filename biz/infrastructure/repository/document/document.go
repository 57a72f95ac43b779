package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document stores an uploaded file's URL. Exactly one of the three parent
// references is set; the service layer enforces the union before insert.
type Document struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	URL          string             `bson:"document" json:"url"`
	AssignmentID string             `bson:"assignment_id,omitempty" json:"assignmentId,omitempty"`
	SubmissionID string             `bson:"submission_id,omitempty" json:"submissionId,omitempty"`
	GenerationID string             `bson:"generation_id,omitempty" json:"generationId,omitempty"`
	CreateTime   time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime   time.Time          `bson:"update_time" json:"updateTime"`
}
