package generation

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionGeneration is a named batch owned by a teacher. Output holds the
// serialized generated paper and stays empty until generation completes.
type QuestionGeneration struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	TeacherID  string             `bson:"teacher_id" json:"teacherId"`
	Output     string             `bson:"output,omitempty" json:"output,omitempty"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
