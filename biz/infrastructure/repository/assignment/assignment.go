package assignment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assignment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Desc       string             `bson:"desc" json:"desc"`
	Deadline   time.Time          `bson:"deadline" json:"deadline"`
	TeamID     string             `bson:"team_id" json:"teamId"`
	TeacherID  string             `bson:"teacher_id" json:"teacherId"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
