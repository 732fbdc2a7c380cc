package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/webnexa/api/app/models"
)

const (
	inquiriesCollection = "inquiries"
	portfolioCollection = "portfolio"
	adminsCollection    = "admins"
)

// Mongo is the production Store backed by the MongoDB driver.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo opens a client, verifies the connection, and creates the
// indexes the app relies on (unique admin usernames, sort indexes).
func ConnectMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	opts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store: mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("store: mongo ping: %w", err)
	}

	m := &Mongo{client: client, db: client.Database(dbName)}
	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	_, err := m.db.Collection(adminsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("store: admins username index: %w", err)
	}

	_, err = m.db.Collection(inquiriesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "submittedAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("store: inquiries submittedAt index: %w", err)
	}

	_, err = m.db.Collection(portfolioCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("store: portfolio createdAt index: %w", err)
	}
	return nil
}

// Collection exposes a raw collection handle; the mongo slog handler uses
// this to share the app's connection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *Mongo) Inquiries() InquiryStore {
	return &mongoInquiries{col: m.db.Collection(inquiriesCollection)}
}

func (m *Mongo) Portfolio() PortfolioStore {
	return &mongoPortfolio{col: m.db.Collection(portfolioCollection)}
}

func (m *Mongo) Admins() AdminStore {
	return &mongoAdmins{col: m.db.Collection(adminsCollection)}
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ─── Inquiries ────────────────────────────────────────────────────────────────

type mongoInquiries struct {
	col *mongo.Collection
}

func (s *mongoInquiries) Insert(ctx context.Context, inq *models.Inquiry) error {
	res, err := s.col.InsertOne(ctx, inq)
	if err != nil {
		return fmt.Errorf("store: insert inquiry: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		inq.ID = oid
	}
	return nil
}

func (s *mongoInquiries) List(ctx context.Context) ([]models.Inquiry, error) {
	cur, err := s.col.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("store: list inquiries: %w", err)
	}

	out := []models.Inquiry{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("store: decode inquiries: %w", err)
	}
	return out, nil
}

func (s *mongoInquiries) UpdateStatus(ctx context.Context, id, status string) (*models.Inquiry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id behaves like a missing document.
		return nil, nil
	}

	var updated models.Inquiry
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: update inquiry status: %w", err)
	}
	return &updated, nil
}

func (s *mongoInquiries) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("store: delete inquiry: %w", err)
	}
	return nil
}

// ─── Portfolio ────────────────────────────────────────────────────────────────

type mongoPortfolio struct {
	col *mongo.Collection
}

func (s *mongoPortfolio) Insert(ctx context.Context, doc map[string]interface{}) (string, error) {
	res, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("store: insert portfolio entry: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

func (s *mongoPortfolio) List(ctx context.Context) ([]map[string]interface{}, error) {
	cur, err := s.col.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("store: list portfolio: %w", err)
	}

	raw := []bson.M{}
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("store: decode portfolio: %w", err)
	}

	out := make([]map[string]interface{}, len(raw))
	for i, doc := range raw {
		if oid, ok := doc["_id"].(primitive.ObjectID); ok {
			doc["_id"] = oid.Hex()
		}
		out[i] = doc
	}
	return out, nil
}

// ─── Admins ───────────────────────────────────────────────────────────────────

type mongoAdmins struct {
	col *mongo.Collection
}

func (s *mongoAdmins) Insert(ctx context.Context, acc *models.AdminAccount) error {
	res, err := s.col.InsertOne(ctx, acc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("store: insert admin: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		acc.ID = oid
	}
	return nil
}

func (s *mongoAdmins) FindByID(ctx context.Context, id string) (*models.AdminAccount, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var acc models.AdminAccount
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&acc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find admin by id: %w", err)
	}
	return &acc, nil
}

func (s *mongoAdmins) FindByUsername(ctx context.Context, username string) (*models.AdminAccount, error) {
	var acc models.AdminAccount
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&acc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find admin by username: %w", err)
	}
	return &acc, nil
}

func (s *mongoAdmins) Count(ctx context.Context) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("store: count admins: %w", err)
	}
	return n, nil
}
