package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles the users collection.
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates its indexes.
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("users")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "subject", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	return &Repository{collection: collection}
}

// Upsert creates or refreshes the record for an identity-provider subject at
// sign-in time and returns the stored user.
func (r *Repository) Upsert(ctx context.Context, subject, email, name, image string) (*User, error) {
	now := time.Now()

	update := bson.M{
		"$set": bson.M{
			"email":     email,
			"name":      name,
			"image":     image,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"subject":   subject,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"subject": subject}, update, opts).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetBySubject resolves an identity-provider subject to the internal record.
// A miss returns (nil, nil); callers decide whether that is fatal.
func (r *Repository) GetBySubject(ctx context.Context, subject string) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"subject": subject}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByID finds a user by internal id.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByIDs batch-fetches users, preserving no particular order. Unknown ids
// are simply absent from the result.
func (r *Repository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]User, error) {
	if len(ids) == 0 {
		return []User{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Search lists directory users, optionally filtered by a case-insensitive
// name/email match, sorted by name.
func (r *Repository) Search(ctx context.Context, query string, offset, limit int) ([]User, int64, error) {
	filter := bson.M{}
	if query != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": query, "$options": "i"}},
			{"email": bson.M{"$regex": query, "$options": "i"}},
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	if users == nil {
		users = []User{}
	}
	return users, total, nil
}

// UpdateProfile updates display fields of a user.
func (r *Repository) UpdateProfile(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}
