package lists

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrItemNotFound is returned when an item patch matches no item, which can
// happen when the item is removed between the service's existence check and
// the update.
var ErrItemNotFound = errors.New("item not found")

// Repository is the Mongo-backed list store. Mutations are single targeted
// update operations; concurrent edits to the same field are last-write-wins,
// which is the documented model for this service.
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates its indexes.
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("lists")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "channelId", Value: 1}, {Key: "createdBy", Value: 1}}},
		{Keys: bson.D{{Key: "createdBy", Value: 1}}},
		{Keys: bson.D{{Key: "sharedWith", Value: 1}}},
	})

	return &Repository{collection: collection}
}

// Insert persists a new list, assigning identity and timestamps.
func (r *Repository) Insert(ctx context.Context, list *List) error {
	now := time.Now()
	list.CreatedAt = now
	list.UpdatedAt = now
	if list.Items == nil {
		list.Items = []ListItem{}
	}
	if list.SharedWith == nil {
		list.SharedWith = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, list)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		list.ID = oid
	}
	return nil
}

// FindByID returns the aggregate, or (nil, nil) when absent.
func (r *Repository) FindByID(ctx context.Context, id primitive.ObjectID) (*List, error) {
	var list List
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

// Find returns the caller's lists for the given filter, excluding archived
// ones, most recently modified first.
func (r *Repository) Find(ctx context.Context, q Query) ([]List, error) {
	filter := bson.M{"isArchived": false}

	switch q.Filter {
	case FilterCreated:
		filter["createdBy"] = q.UserID
	case FilterShared:
		filter["sharedWith"] = q.UserID
	default:
		filter["$or"] = []bson.M{
			{"createdBy": q.UserID},
			{"sharedWith": q.UserID},
		}
	}

	if q.ChannelID != "" {
		filter["channelId"] = q.ChannelID
	}

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lists []List
	if err := cursor.All(ctx, &lists); err != nil {
		return nil, err
	}
	if lists == nil {
		lists = []List{}
	}
	return lists, nil
}

// UpdateMetadata applies the whitelisted metadata fields present in the
// patch.
func (r *Repository) UpdateMetadata(ctx context.Context, id primitive.ObjectID, p MetadataPatch) error {
	set := bson.M{"updatedAt": time.Now()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Color != nil {
		set["color"] = *p.Color
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// Archive soft-deletes a list; every query excludes archived lists.
func (r *Repository) Archive(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"isArchived": true, "updatedAt": time.Now()},
	})
	return err
}

// Delete removes the aggregate and all embedded items permanently.
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// AppendItem persists a new item at the end of the list, assigning its order
// from the current item count.
func (r *Repository) AppendItem(ctx context.Context, listID primitive.ObjectID, item *ListItem) error {
	var doc struct {
		Items []struct {
			ID primitive.ObjectID `bson:"_id"`
		} `bson:"items"`
	}
	opts := options.FindOne().SetProjection(bson.M{"items._id": 1})
	if err := r.collection.FindOne(ctx, bson.M{"_id": listID}, opts).Decode(&doc); err != nil {
		return err
	}

	now := time.Now()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	item.Order = len(doc.Items)
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": listID}, bson.M{
		"$push": bson.M{"items": item},
		"$set":  bson.M{"updatedAt": now},
	})
	return err
}

// UpdateItem applies the whitelisted item fields present in the patch via a
// positional update.
func (r *Repository) UpdateItem(ctx context.Context, listID, itemID primitive.ObjectID, p ItemPatch) error {
	now := time.Now()
	set := bson.M{"items.$.updatedAt": now, "updatedAt": now}
	if p.Text != nil {
		set["items.$.text"] = *p.Text
	}
	if p.Completed != nil {
		set["items.$.completed"] = *p.Completed
	}
	if p.SetAssignedTo {
		set["items.$.assignedTo"] = p.AssignedTo
	}
	if p.SetDueDate {
		set["items.$.dueDate"] = p.DueDate
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": listID, "items._id": itemID},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

// RemoveItem pulls an item from the list. Removing an absent item is a
// no-op; remaining items keep their order values, gaps included.
func (r *Repository) RemoveItem(ctx context.Context, listID, itemID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": listID}, bson.M{
		"$pull": bson.M{"items": bson.M{"_id": itemID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	return err
}

// AddSharedUsers grows the sharedWith set. $addToSet keeps the collection a
// set, so re-sharing with an existing collaborator changes nothing.
func (r *Repository) AddSharedUsers(ctx context.Context, listID primitive.ObjectID, userIDs []primitive.ObjectID) error {
	if len(userIDs) == 0 {
		return nil
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": listID}, bson.M{
		"$addToSet": bson.M{"sharedWith": bson.M{"$each": userIDs}},
		"$set":      bson.M{"updatedAt": time.Now()},
	})
	return err
}
