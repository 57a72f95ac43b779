package team

import (
	"context"
	"time"

	"class-hive/biz/infrastructure/config"
	"class-hive/biz/infrastructure/consts"
	"class-hive/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixMemberCacheKey = "cache:team_student"
	MemberCollectionName = "team_student"
)

type MemberMongoMapper struct {
	conn *monc.Model
}

func NewMemberMongoMapper(config *config.Config) *MemberMongoMapper {
	log.Info("NewMemberMongoMapper collection: %s", MemberCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, MemberCollectionName, config.Cache)
	return &MemberMongoMapper{
		conn: conn,
	}
}

func (m *MemberMongoMapper) Insert(ctx context.Context, member *TeamStudent) error {
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
		member.CreateTime = time.Now()
		member.UpdateTime = time.Now()
	}
	if member.JoinTime.IsZero() {
		member.JoinTime = member.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, member)
	return err
}

func (m *MemberMongoMapper) FindByTeamID(ctx context.Context, teamID string) ([]*TeamStudent, int64, error) {
	var members []*TeamStudent
	filter := bson.M{consts.TeamID: teamID}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	err = m.conn.Find(ctx, &members, filter, &options.FindOptions{
		Sort: bson.M{"join_time": -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

func (m *MemberMongoMapper) FindByStudentID(ctx context.Context, studentID string) ([]*TeamStudent, int64, error) {
	var members []*TeamStudent
	filter := bson.M{consts.StudentID: studentID}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	err = m.conn.Find(ctx, &members, filter, &options.FindOptions{
		Sort: bson.M{"join_time": -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

func (m *MemberMongoMapper) FindByTeamAndStudent(ctx context.Context, teamID, studentID string) (*TeamStudent, error) {
	var member TeamStudent
	filter := bson.M{
		consts.TeamID:    teamID,
		consts.StudentID: studentID,
	}

	err := m.conn.FindOneNoCache(ctx, &member, filter)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	return &member, nil
}

func (m *MemberMongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}

	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
