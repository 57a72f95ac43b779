package teacher

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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixTeacherCacheKey = "cache:teacher"
	TeacherCollectionName = "teacher"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewTeacherMongoMapper collection: %s", TeacherCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, TeacherCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, teacher *Teacher) error {
	if teacher.ID.IsZero() {
		teacher.ID = primitive.NewObjectID()
		teacher.CreateTime = time.Now()
		teacher.UpdateTime = teacher.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, teacher)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, teacher *Teacher) error {
	teacher.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, teacher.ID, bson.M{"$set": teacher})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Teacher, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var t Teacher
	err = m.conn.FindOneNoCache(ctx, &t, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &t, nil
}

func (m *MongoMapper) FindOneBySapid(ctx context.Context, sapid int64) (*Teacher, error) {
	var t Teacher
	err := m.conn.FindOneNoCache(ctx, &t, bson.M{
		consts.Sapid: sapid,
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

func (m *MongoMapper) FindOneByEmail(ctx context.Context, email string) (*Teacher, error) {
	var t Teacher
	err := m.conn.FindOneNoCache(ctx, &t, bson.M{
		consts.Email: email,
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

func (m *MongoMapper) FindAll(ctx context.Context, page, pageSize int64) ([]*Teacher, int64, error) {
	var teachers []*Teacher
	filter := bson.M{}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &teachers, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return teachers, total, nil
}

func (m *MongoMapper) Search(ctx context.Context, query string, sapid *int64) ([]*Teacher, error) {
	var teachers []*Teacher
	or := []bson.M{
		{consts.Username: bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}},
	}
	if sapid != nil {
		or = append(or, bson.M{consts.Sapid: *sapid})
	}

	err := m.conn.Find(ctx, &teachers, bson.M{"$or": or}, &options.FindOptions{
		Sort: bson.M{consts.Username: 1},
	})
	if err != nil {
		return nil, err
	}
	return teachers, nil
}

func (m *MongoMapper) UpdatePfp(ctx context.Context, id, url string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$set": bson.M{
			"pfp":         url,
			"update_time": time.Now(),
		},
	})
	return err
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return consts.ErrNotFound
	}
	return err
}
