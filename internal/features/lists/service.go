package lists

import (
	"context"
	stderrors "errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/huddleapp/huddle/internal/features/auth"
	"github.com/huddleapp/huddle/pkg/errors"
)

// Store is the persistence contract the service orchestrates against.
type Store interface {
	Insert(ctx context.Context, list *List) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*List, error)
	Find(ctx context.Context, q Query) ([]List, error)
	UpdateMetadata(ctx context.Context, id primitive.ObjectID, p MetadataPatch) error
	Archive(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AppendItem(ctx context.Context, listID primitive.ObjectID, item *ListItem) error
	UpdateItem(ctx context.Context, listID, itemID primitive.ObjectID, p ItemPatch) error
	RemoveItem(ctx context.Context, listID, itemID primitive.ObjectID) error
	AddSharedUsers(ctx context.Context, listID primitive.ObjectID, userIDs []primitive.ObjectID) error
}

// Directory resolves identity-provider subjects and renders user summaries.
type Directory interface {
	// FindBySubject returns (nil, nil) when the subject has no record.
	FindBySubject(ctx context.Context, subject string) (*auth.User, error)
	// Summaries batch-resolves internal ids to display summaries; unknown
	// ids are absent from the map.
	Summaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]auth.UserSummary, error)
}

// Service runs the same pipeline for every operation: resolve the caller's
// internal record (fail closed), fetch the target list where applicable,
// check access, perform the store operation, and return the fully resolved
// aggregate. It holds no state of its own.
type Service struct {
	store     Store
	directory Directory
}

func NewService(store Store, directory Directory) *Service {
	return &Service{store: store, directory: directory}
}

func (s *Service) caller(ctx context.Context, subject string) (*auth.User, error) {
	user, err := s.directory.FindBySubject(ctx, subject)
	if err != nil {
		return nil, errors.Internal("Failed to resolve user", err)
	}
	if user == nil {
		return nil, errors.NotFound("User not found")
	}
	return user, nil
}

func (s *Service) fetch(ctx context.Context, listID string) (*List, error) {
	id, err := primitive.ObjectIDFromHex(listID)
	if err != nil {
		// A malformed id can never name an existing list.
		return nil, errors.NotFound("List not found")
	}

	list, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal("Failed to fetch list", err)
	}
	if list == nil {
		return nil, errors.NotFound("List not found")
	}
	return list, nil
}

// Create validates and persists a new list owned by the caller.
func (s *Service) Create(ctx context.Context, subject string, req CreateListRequest) (*ListView, error) {
	if err := ValidateCreateListRequest(&req); err != nil {
		return nil, err
	}

	user, err := s.caller(ctx, subject)
	if err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = DefaultColor
	}

	list := &List{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ChannelID:   req.ChannelID,
		ChannelName: req.ChannelName,
		CreatedBy:   user.ID,
		Items:       []ListItem{},
		SharedWith:  []primitive.ObjectID{},
		Color:       color,
	}

	if err := s.store.Insert(ctx, list); err != nil {
		return nil, errors.Internal("Failed to create list", err)
	}

	return s.reload(ctx, list.ID, "Failed to create list")
}

// List returns the caller's lists for the given filter, optionally narrowed
// to one channel. Unknown filter values behave as "all".
func (s *Service) List(ctx context.Context, subject, filter, channelID string) ([]ListView, error) {
	user, err := s.caller(ctx, subject)
	if err != nil {
		return nil, err
	}

	if filter != FilterCreated && filter != FilterShared {
		filter = FilterAll
	}

	found, err := s.store.Find(ctx, Query{Filter: filter, UserID: user.ID, ChannelID: channelID})
	if err != nil {
		return nil, errors.Internal("Failed to fetch lists", err)
	}

	return s.renderAll(ctx, found)
}

// Get returns one list the caller has read access to.
func (s *Service) Get(ctx context.Context, subject, listID string) (*ListView, error) {
	user, err := s.caller(ctx, subject)
	if err != nil {
		return nil, err
	}

	list, err := s.fetch(ctx, listID)
	if err != nil {
		return nil, err
	}

	if !list.CanRead(user.ID) {
		return nil, errors.Forbidden("You don't have access to this list")
	}

	return s.render(ctx, list)
}

// UpdateMetadata changes name/description/color; creator only.
func (s *Service) UpdateMetadata(ctx context.Context, subject, listID string, req UpdateListRequest) (*ListView, error) {
	if err := ValidateUpdateListRequest(&req); err != nil {
		return nil, err
	}

	user, err := s.caller(ctx, subject)
	if err != nil {
		return nil, err
	}

	list, err := s.fetch(ctx, listID)
	if err != nil {
		return nil, err
	}

	if !list.IsOwnedBy(user.ID) {
		return nil, errors.Forbidden("Only the list creator can update list details")
	}

	p := MetadataPatch{Name: req.Name, Description: req.Description, Color: req.Color}
	if !p.IsZero() {
		if err := s.store.UpdateMetadata(ctx, list.ID, p); err != nil {
			return nil, errors.Internal("Failed to update list", err)
		}
	}

	return s.reload(ctx, list.ID, "Failed to update list")
}

// Archive soft-deletes a list; creator only.
func (s *Service) Archive(ctx context.Context, subject, listID string) (*ListView, error) {
	user, err := s.caller(ctx, subject)
	if err != nil {
		return nil, err
	}

	list, err := s.fetch(ctx, listID)
	if err != nil {
		return nil, err
	}

	if !list.IsOwnedBy(user.ID) {
		return nil, errors.Forbidden("Only the list creator can archive this list")
	}

	if err := s.store.Archive(ctx, list.ID); err != nil {
		return nil, errors.Internal("Failed to archive list", err)
	}

	return s.reload(ctx, list.ID, "Failed to archive list")
}

// Delete removes a list and its items permanently; creator only.
func (s *Service) Delete(ctx context.Context, subject, listID string) error {
	user, err := s.caller(ctx, subject)
	if err != nil {
		return err
	}

	list, err := s.fetch(ctx, listID)
	if err != nil {
		return err
	}

	if !list.IsOwnedBy(user.ID) {
		return errors.Forbidden("Only the list creator can delete this list")
	}

	if err := s.store.Delete(ctx, list.ID); err != nil {
		return errors.Internal("Failed to delete list", err)
	}
	return nil
}

// Share grants read access to the given users; creator only. Ids already in
// the set and the creator's own id are skipped, never duplicated.
func (s *Service) Share(ctx context.Context, subject, listID string, userIDs []string) (*ListView, error) {
	if len(userIDs) == 0 {
		return nil, errors.Validation("userIds is required")
	}

	user, err := s.caller(ctx, subject)
	if err != nil {
		return nil, err
	}

	list, err := s.fetch(ctx, listID)
	if err != nil {
		return nil, err
	}

	if !list.IsOwnedBy(user.ID) {
		return nil, errors.Forbidden("Only the list creator can share this list")
	}

	var targets []primitive.ObjectID
	for _, raw := range userIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, errors.Validation("Invalid user id")
		}
		if id == list.CreatedBy || list.IsSharedWith(id) {
			continue
		}
		targets = append(targets, id)
	}

	if err := s.store.AddSharedUsers(ctx, list.ID, targets); err != nil {
		return nil, errors.Internal("Failed to share list", err)
	}

	return s.reload(ctx, list.ID, "Failed to share list")
}

// AddItem appends a task row; any caller with read access may add items.
func (s *Service) AddItem(ctx context.Context, subject, listID string, req AddItemRequest) (*ListView, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, errors.Validation("Item text is required")
	}

	user, err := s.caller(ctx, subject)
	if err != nil {
		return nil, err
	}

	list, err := s.fetch(ctx, listID)
	if err != nil {
		return nil, err
	}

	if !list.CanRead(user.ID) {
		return nil, errors.Forbidden("You don't have access to this list")
	}

	item := &ListItem{
		Text:      req.Text,
		Completed: false,
		CreatedBy: user.ID,
		DueDate:   req.DueDate,
	}
	if req.AssignedTo != "" {
		assignee, err := primitive.ObjectIDFromHex(req.AssignedTo)
		if err != nil {
			return nil, errors.Validation("Invalid user id")
		}
		item.AssignedTo = &assignee
	}

	if err := s.store.AppendItem(ctx, list.ID, item); err != nil {
		return nil, errors.Internal("Failed to add item", err)
	}

	return s.reload(ctx, list.ID, "Failed to add item")
}

// UpdateItem patches a task row; requires read access, and both the list and
// the item must exist.
func (s *Service) UpdateItem(ctx context.Context, subject, listID, itemID string, req UpdateItemRequest) (*ListView, error) {
	user, err := s.caller(ctx, subject)
	if err != nil {
		return nil, err
	}

	list, err := s.fetch(ctx, listID)
	if err != nil {
		return nil, err
	}

	if !list.CanRead(user.ID) {
		return nil, errors.Forbidden("You don't have access to this list")
	}

	itemOID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, errors.NotFound("Item not found")
	}
	if !hasItem(list, itemOID) {
		return nil, errors.NotFound("Item not found")
	}

	p := ItemPatch{Text: req.Text, Completed: req.Completed}
	if req.AssignedTo.Defined {
		p.SetAssignedTo = true
		if raw, ok := req.AssignedTo.Get(); ok {
			assignee, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				return nil, errors.Validation("Invalid user id")
			}
			p.AssignedTo = &assignee
		}
	}
	if req.DueDate.Defined {
		p.SetDueDate = true
		if due, ok := req.DueDate.Get(); ok {
			p.DueDate = &due
		}
	}

	if !p.IsZero() {
		if err := s.store.UpdateItem(ctx, list.ID, itemOID, p); err != nil {
			if stderrors.Is(err, ErrItemNotFound) {
				return nil, errors.NotFound("Item not found")
			}
			return nil, errors.Internal("Failed to update item", err)
		}
	}

	return s.reload(ctx, list.ID, "Failed to update item")
}

// RemoveItem deletes a task row; requires read access. Removing an id that
// is not in the list succeeds and returns the unchanged list.
func (s *Service) RemoveItem(ctx context.Context, subject, listID, itemID string) (*ListView, error) {
	user, err := s.caller(ctx, subject)
	if err != nil {
		return nil, err
	}

	list, err := s.fetch(ctx, listID)
	if err != nil {
		return nil, err
	}

	if !list.CanRead(user.ID) {
		return nil, errors.Forbidden("You don't have access to this list")
	}

	if itemOID, err := primitive.ObjectIDFromHex(itemID); err == nil {
		if err := s.store.RemoveItem(ctx, list.ID, itemOID); err != nil {
			return nil, errors.Internal("Failed to delete item", err)
		}
	}

	return s.reload(ctx, list.ID, "Failed to delete item")
}

func hasItem(list *List, itemID primitive.ObjectID) bool {
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			return true
		}
	}
	return false
}

// reload re-fetches a mutated aggregate so the caller always receives the
// complete stored state, never the pre-mutation snapshot.
func (s *Service) reload(ctx context.Context, id primitive.ObjectID, failMessage string) (*ListView, error) {
	list, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Internal(failMessage, err)
	}
	if list == nil {
		return nil, errors.NotFound("List not found")
	}
	return s.render(ctx, list)
}
