package submission

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
	prefixSubmissionCacheKey = "cache:submission"
	SubmissionCollectionName = "submission"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewSubmissionMongoMapper collection: %s", SubmissionCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, SubmissionCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, submission *Submission) error {
	if submission.ID.IsZero() {
		submission.ID = primitive.NewObjectID()
		submission.CreateTime = time.Now()
		submission.UpdateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, submission)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, submission *Submission) error {
	submission.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, submission.ID, bson.M{"$set": submission})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Submission
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

func (m *MongoMapper) FindByStudent(ctx context.Context, studentID string) ([]*Submission, int64, error) {
	var submissions []*Submission
	filter := bson.M{consts.StudentID: studentID}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	err = m.conn.Find(ctx, &submissions, filter, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}

func (m *MongoMapper) FindByAssignment(ctx context.Context, assignmentID string) ([]*Submission, int64, error) {
	var submissions []*Submission
	filter := bson.M{consts.AssignmentID: assignmentID}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	err = m.conn.Find(ctx, &submissions, filter, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}

func (m *MongoMapper) FindByStudentAndAssignment(ctx context.Context, studentID, assignmentID string) (*Submission, error) {
	var submission Submission
	filter := bson.M{
		consts.StudentID:    studentID,
		consts.AssignmentID: assignmentID,
	}

	err := m.conn.FindOneNoCache(ctx, &submission, filter)
	switch {
	case err == nil:
		return &submission, nil
	case errors.Is(err, mongo.ErrNoDocuments), errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
