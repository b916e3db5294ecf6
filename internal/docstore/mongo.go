package docstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/auralog/auralog/internal/model"
)

const (
	journalsCollection = "journals"
	profilesCollection = "users"
)

// Connect opens a Mongo client and verifies connectivity.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(cctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// MongoEntries implements Entries on a Mongo collection.
type MongoEntries struct {
	col *mongo.Collection
}

var _ Entries = (*MongoEntries)(nil)

func NewMongoEntries(db *mongo.Database) *MongoEntries {
	return &MongoEntries{col: db.Collection(journalsCollection)}
}

func (s *MongoEntries) Insert(ctx context.Context, e *model.JournalEntry) error {
	_, err := s.col.InsertOne(ctx, e)
	return err
}

func (s *MongoEntries) FindByIDs(ctx context.Context, ids []string) (map[string]*model.JournalEntry, error) {
	out := make(map[string]*model.JournalEntry, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	for cur.Next(ctx) {
		var e model.JournalEntry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out[e.EntryID] = &e
	}
	return out, cur.Err()
}

// MongoProfiles implements Profiles on a Mongo collection.
type MongoProfiles struct {
	col *mongo.Collection
}

var _ Profiles = (*MongoProfiles)(nil)

func NewMongoProfiles(db *mongo.Database) *MongoProfiles {
	return &MongoProfiles{col: db.Collection(profilesCollection)}
}

func (s *MongoProfiles) Replace(ctx context.Context, p *model.Profile) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": p.UserID}, p, opts)
	return err
}

func (s *MongoProfiles) Get(ctx context.Context, userID string) (*model.Profile, error) {
	var p model.Profile
	err := s.col.FindOne(ctx, bson.M{"_id": userID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
