package document

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
	prefixDocumentCacheKey = "cache:document"
	DocumentCollectionName = "document"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewDocumentMongoMapper collection: %s", DocumentCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, DocumentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, document *Document) error {
	if document.ID.IsZero() {
		document.ID = primitive.NewObjectID()
		document.CreateTime = time.Now()
		document.UpdateTime = document.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, document)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var d Document
	err = m.conn.FindOneNoCache(ctx, &d, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &d, nil
}

func (m *MongoMapper) FindAll(ctx context.Context, page, pageSize int64) ([]*Document, int64, error) {
	var documents []*Document
	filter := bson.M{}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &documents, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return documents, total, nil
}

func (m *MongoMapper) FindByAssignment(ctx context.Context, assignmentID string) ([]*Document, error) {
	return m.findByParent(ctx, consts.AssignmentID, assignmentID)
}

func (m *MongoMapper) FindBySubmission(ctx context.Context, submissionID string) ([]*Document, error) {
	return m.findByParent(ctx, consts.SubmissionID, submissionID)
}

func (m *MongoMapper) FindByGeneration(ctx context.Context, generationID string) ([]*Document, error) {
	return m.findByParent(ctx, consts.GenerationID, generationID)
}

func (m *MongoMapper) findByParent(ctx context.Context, field, id string) ([]*Document, error) {
	var documents []*Document
	err := m.conn.Find(ctx, &documents, bson.M{field: id}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
