package generation

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
	prefixGenerationCacheKey = "cache:question_generation"
	GenerationCollectionName = "question_generation"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewGenerationMongoMapper collection: %s", GenerationCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, GenerationCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, generation *QuestionGeneration) error {
	if generation.ID.IsZero() {
		generation.ID = primitive.NewObjectID()
		generation.CreateTime = time.Now()
		generation.UpdateTime = generation.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, generation)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, generation *QuestionGeneration) error {
	generation.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, generation.ID, bson.M{"$set": generation})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*QuestionGeneration, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var g QuestionGeneration
	err = m.conn.FindOneNoCache(ctx, &g, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &g, nil
}

func (m *MongoMapper) FindAll(ctx context.Context, page, pageSize int64) ([]*QuestionGeneration, int64, error) {
	var generations []*QuestionGeneration
	filter := bson.M{}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &generations, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return generations, total, nil
}

func (m *MongoMapper) FindByTeacher(ctx context.Context, teacherID string) ([]*QuestionGeneration, int64, error) {
	var generations []*QuestionGeneration
	filter := bson.M{consts.TeacherID: teacherID}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	err = m.conn.Find(ctx, &generations, filter, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return generations, total, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
