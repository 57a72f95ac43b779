package student

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Student struct {
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
