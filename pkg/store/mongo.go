package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vibpath/vibot/pkg/config"
	"github.com/vibpath/vibot/pkg/domain"
)

// ErrNotFound indicates no preference document exists for the user
var ErrNotFound = errors.New("preference not found")

// Mongo is the MongoDB-backed preference store
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// preferenceDoc is the stored document shape. AIReplyEnabled is a pointer
// so documents missing the field decode as the enabled default.
type preferenceDoc struct {
	UserID         string    `bson:"userId"`
	AIReplyEnabled *bool     `bson:"aiReplyEnabled"`
	LastUpdated    time.Time `bson:"lastUpdated"`
}

func (d preferenceDoc) toPreference() domain.Preference {
	enabled := true
	if d.AIReplyEnabled != nil {
		enabled = *d.AIReplyEnabled
	}
	return domain.Preference{UserID: d.UserID, AIReplyEnabled: enabled, UpdatedAt: d.LastUpdated}
}

// NewMongo creates the preference store and ensures the unique user index.
// An unreachable server is not fatal, the bot starts degraded and every
// read falls back to the default preference until the store comes back.
func NewMongo(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(5 * time.Second).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	m := &Mongo{client: client, coll: coll}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		lgr.Printf("[WARN] mongodb unreachable, starting degraded: %v", err)
		return m, nil
	}

	// one document per user
	_, err = coll.Indexes().CreateOne(pingCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		lgr.Printf("[WARN] create userId index: %v", err)
	}

	return m, nil
}

// Get returns the stored preference, ErrNotFound when absent
func (m *Mongo) Get(ctx context.Context, userID string) (domain.Preference, error) {
	var doc preferenceDoc
	err := m.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Preference{}, ErrNotFound
	}
	if err != nil {
		return domain.Preference{}, fmt.Errorf("find preference: %w", err)
	}
	return doc.toPreference(), nil
}

// Set upserts the preference for a user
func (m *Mongo) Set(ctx context.Context, userID string, enabled bool) error {
	_, err := m.coll.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"aiReplyEnabled": enabled, "lastUpdated": time.Now().UTC()}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert preference: %w", err)
	}
	return nil
}

// Delete removes the stored preference and reports how many documents went away
func (m *Mongo) Delete(ctx context.Context, userID string) (int64, error) {
	res, err := m.coll.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, fmt.Errorf("delete preference: %w", err)
	}
	return res.DeletedCount, nil
}

// List returns all stored preferences ordered by user ID
func (m *Mongo) List(ctx context.Context) ([]domain.Preference, error) {
	cursor, err := m.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "userId", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []preferenceDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}

	prefs := make([]domain.Preference, 0, len(docs))
	for _, doc := range docs {
		prefs = append(prefs, doc.toPreference())
	}
	return prefs, nil
}

// Close disconnects from MongoDB
func (m *Mongo) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	return nil
}

// IsUnavailable reports whether the error means the store cannot be
// reached rather than a bad request
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	return mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded)
}
