package assignment

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
	prefixAssignmentCacheKey = "cache:assignment"
	AssignmentCollectionName = "assignment"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewAssignmentMongoMapper collection: %s", AssignmentCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, AssignmentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, assignment *Assignment) error {
	if assignment.ID.IsZero() {
		assignment.ID = primitive.NewObjectID()
		assignment.CreateTime = time.Now()
		assignment.UpdateTime = assignment.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, assignment)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, assignment *Assignment) error {
	assignment.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, assignment.ID, bson.M{"$set": assignment})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Assignment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var a Assignment
	err = m.conn.FindOneNoCache(ctx, &a, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &a, nil
}

func (m *MongoMapper) FindAll(ctx context.Context, page, pageSize int64) ([]*Assignment, int64, error) {
	var assignments []*Assignment
	filter := bson.M{}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &assignments, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.Deadline: 1},
	})
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

func (m *MongoMapper) FindByTeamID(ctx context.Context, teamID string) ([]*Assignment, int64, error) {
	var assignments []*Assignment
	filter := bson.M{consts.TeamID: teamID}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	err = m.conn.Find(ctx, &assignments, filter, &options.FindOptions{
		Sort: bson.M{consts.Deadline: 1},
	})
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

func (m *MongoMapper) FindByTeacher(ctx context.Context, teacherID string) ([]*Assignment, int64, error) {
	var assignments []*Assignment
	filter := bson.M{consts.TeacherID: teacherID}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	err = m.conn.Find(ctx, &assignments, filter, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
