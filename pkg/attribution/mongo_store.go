package attribution

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const DefaultMongoCollection = "attribution_records"

type mongoRecord struct {
	SessionID    string    `bson:"_id"`
	GCLID        string    `bson:"gclid"`
	UploadStatus string    `bson:"upload_status"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// MongoStore keeps one document per session, with the session id as _id.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database, collection string) *MongoStore {
	if collection == "" {
		collection = DefaultMongoCollection
	}
	return &MongoStore{coll: db.Collection(collection)}
}

// EnsureIndexes creates the partial index used to find pending uploads.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: 1}},
		Options: options.Index().
			SetName("pending_created_at").
			SetPartialFilterExpression(bson.D{{Key: "upload_status", Value: string(StatusPending)}}),
	})
	if err != nil {
		return errors.Join(ErrFailedToIndex, err)
	}
	return nil
}

// Upsert runs a single update pipeline with upsert. Every expression in the $set
// stage sees the document as it was before the update, so the status check
// compares against the previous gclid.
func (s *MongoStore) Upsert(ctx context.Context, sessionID string, patch Patch) error {
	if err := patch.validate(sessionID); err != nil {
		return err
	}

	gclid := bson.D{{Key: "$literal", Value: patch.GCLID}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "upload_status", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$eq", Value: bson.A{"$gclid", gclid}}},
				"$upload_status",
				string(StatusPending),
			}}}},
			{Key: "gclid", Value: gclid},
			{Key: "created_at", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$created_at", patch.At}}}},
			{Key: "updated_at", Value: patch.At},
		}}},
	}

	_, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: sessionID}},
		update,
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrFailedToUpsert, err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, sessionID string) (*Record, error) {
	var doc mongoRecord
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: sessionID}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, errors.Join(ErrFailedToGet, err)
	}

	status, err := ParseStatus(doc.UploadStatus)
	if err != nil {
		return nil, errors.Join(ErrMalformedRecord, err)
	}
	return &Record{
		SessionID:    doc.SessionID,
		GCLID:        doc.GCLID,
		UploadStatus: status,
		CreatedAt:    doc.CreatedAt.UTC(),
		UpdatedAt:    doc.UpdatedAt.UTC(),
	}, nil
}
