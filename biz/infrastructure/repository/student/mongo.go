package student

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
	prefixStudentCacheKey = "cache:student"
	StudentCollectionName = "student"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewStudentMongoMapper collection: %s", StudentCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, StudentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, student *Student) error {
	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
		student.CreateTime = time.Now()
		student.UpdateTime = student.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, student)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, student *Student) error {
	student.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, student.ID, bson.M{"$set": student})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Student
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

func (m *MongoMapper) FindOneBySapid(ctx context.Context, sapid int64) (*Student, error) {
	var s Student
	err := m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.Sapid: sapid,
	})
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindOneByEmail(ctx context.Context, email string) (*Student, error) {
	var s Student
	err := m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.Email: email,
	})
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindAll(ctx context.Context, page, pageSize int64) ([]*Student, int64, error) {
	var students []*Student
	filter := bson.M{}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &students, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// Search matches the username by case-insensitive substring, or the sapid
// exactly when the query parses as a number.
func (m *MongoMapper) Search(ctx context.Context, query string, sapid *int64) ([]*Student, error) {
	var students []*Student
	or := []bson.M{
		{consts.Username: bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}},
	}
	if sapid != nil {
		or = append(or, bson.M{consts.Sapid: *sapid})
	}

	err := m.conn.Find(ctx, &students, bson.M{"$or": or}, &options.FindOptions{
		Sort: bson.M{consts.Username: 1},
	})
	if err != nil {
		return nil, err
	}
	return students, nil
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
