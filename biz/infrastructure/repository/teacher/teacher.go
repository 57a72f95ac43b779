package teacher

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Teacher lives in its own collection; a teacher id never resolves against the
// student store even when both hold the same sapid.
type Teacher struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Sapid      int64              `bson:"sapid" json:"sapid"`
	Username   string             `bson:"username" json:"username"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"-"`
	Desc       string             `bson:"desc" json:"desc"`
	Pfp        string             `bson:"pfp,omitempty" json:"pfp,omitempty"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
