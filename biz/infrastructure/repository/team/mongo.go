package team

import (
	"context"
	"errors"
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
	prefixTeamCacheKey = "cache:team"
	TeamCollectionName = "team"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewTeamMongoMapper collection: %s", TeamCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, TeamCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, team *Team) error {
	if team.ID.IsZero() {
		team.ID = primitive.NewObjectID()
		team.CreateTime = time.Now()
		team.UpdateTime = team.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, team)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, team *Team) error {
	team.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, team.ID, bson.M{"$set": team})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Team, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var t Team
	err = m.conn.FindOneNoCache(ctx, &t, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &t, nil
}

func (m *MongoMapper) FindOneByCode(ctx context.Context, code string) (*Team, error) {
	var t Team
	err := m.conn.FindOneNoCache(ctx, &t, bson.M{
		consts.Code: code,
	})
	switch {
	case err == nil:
		return &t, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindAll(ctx context.Context, page, pageSize int64) ([]*Team, int64, error) {
	var teams []*Team
	filter := bson.M{}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &teams, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

func (m *MongoMapper) FindByTeacher(ctx context.Context, teacherID string) ([]*Team, int64, error) {
	var teams []*Team
	filter := bson.M{consts.TeacherID: teacherID}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	err = m.conn.Find(ctx, &teams, filter, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
