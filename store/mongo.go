package store

import (
	"context"
	"errors"
	"fmt"

	"bistro-api/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names of the restaurant database.
const (
	CollectionUsers    = "users"
	CollectionMenu     = "menu"
	CollectionReviews  = "reviews"
	CollectionCart     = "cart"
	CollectionPayments = "payments"
)

// MongoStore keeps every resource in its own MongoDB collection. The client
// pools connections internally and is shared by all requests.
type MongoStore struct {
	client   *mongo.Client
	users    *mongo.Collection
	menu     *mongo.Collection
	reviews  *mongo.Collection
	cart     *mongo.Collection
	payments *mongo.Collection
}

// OpenMongo connects with the stable server API v1, pings the deployment and
// ensures a unique index on users.email.
func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	logrus.WithField("database", database).Info("pinged deployment, connected to MongoDB")

	db := client.Database(database)
	s := &MongoStore{
		client:   client,
		users:    db.Collection(CollectionUsers),
		menu:     db.Collection(CollectionMenu),
		reviews:  db.Collection(CollectionReviews),
		cart:     db.Collection(CollectionCart),
		payments: db.Collection(CollectionPayments),
	}

	// Existing data may already hold duplicate emails; the handler's
	// lookup-before-insert still applies without the index.
	_, err = s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logrus.WithError(err).Warn("could not create unique index on users.email")
	}

	return s, nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

func (s *MongoStore) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	return findAll[models.MenuItem](ctx, s.menu, bson.D{})
}

func (s *MongoStore) CreateMenuItem(ctx context.Context, item *models.MenuItem) (models.InsertResult, error) {
	item.ID = ""
	return insertOne(ctx, s.menu, item)
}

func (s *MongoStore) DeleteMenuItem(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteOne(ctx, s.menu, id)
}

func (s *MongoStore) ListReviews(ctx context.Context) ([]models.Review, error) {
	return findAll[models.Review](ctx, s.reviews, bson.D{})
}

func (s *MongoStore) ListCartByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	return findAll[models.CartItem](ctx, s.cart, bson.M{"email": email})
}

func (s *MongoStore) CreateCartItem(ctx context.Context, item *models.CartItem) (models.InsertResult, error) {
	item.ID = ""
	return insertOne(ctx, s.cart, item)
}

func (s *MongoStore) DeleteCartItem(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteOne(ctx, s.cart, id)
}

func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, s.users, bson.D{})
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) (models.InsertResult, error) {
	user.ID = ""
	return insertOne(ctx, s.users, user)
}

func (s *MongoStore) PromoteToAdmin(ctx context.Context, id string) (models.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    hexID(res.UpsertedID),
	}, nil
}

func (s *MongoStore) CreatePayment(ctx context.Context, payment *models.Payment) (models.InsertResult, error) {
	payment.ID = ""
	return insertOne(ctx, s.payments, payment)
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any) ([]T, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc any) (models.InsertResult, error) {
	res, err := coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return models.InsertResult{}, ErrDuplicate
	}
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: hexID(res.InsertedID)}, nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, id string) (models.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func hexID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}
