package team

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamStudent is the membership join record between a team and a student.
type TeamStudent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeamID     string             `bson:"team_id" json:"teamId"`
	StudentID  string             `bson:"student_id" json:"studentId"`
	JoinTime   time.Time          `bson:"join_time" json:"joinTime"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
