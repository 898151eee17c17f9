package lists

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/huddleapp/huddle/internal/features/auth"
	"github.com/huddleapp/huddle/internal/pkg/patch"
)

// DefaultColor matches the workspace accent color applied to new lists.
const DefaultColor = "#1264a3"

// Query filters for the list index.
const (
	FilterAll     = "all"
	FilterCreated = "created"
	FilterShared  = "shared"
)

// ListItem is a task row embedded in its parent list. Order is assigned at
// insertion and never compacted; deletions leave gaps.
type ListItem struct {
	ID         primitive.ObjectID  `bson:"_id" json:"id"`
	Text       string              `bson:"text" json:"text"`
	Completed  bool                `bson:"completed" json:"completed"`
	AssignedTo *primitive.ObjectID `bson:"assignedTo" json:"assignedTo"`
	CreatedBy  primitive.ObjectID  `bson:"createdBy" json:"createdBy"`
	DueDate    *time.Time          `bson:"dueDate" json:"dueDate"`
	Order      int                 `bson:"order" json:"order"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// List is a channel-scoped to-do list owned by its creator and readable by
// the users it has been shared with.
type List struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	ChannelID   string               `bson:"channelId" json:"channelId"`
	ChannelName string               `bson:"channelName" json:"channelName"`
	CreatedBy   primitive.ObjectID   `bson:"createdBy" json:"createdBy"`
	Items       []ListItem           `bson:"items" json:"items"`
	SharedWith  []primitive.ObjectID `bson:"sharedWith" json:"sharedWith"`
	IsArchived  bool                 `bson:"isArchived" json:"isArchived"`
	Color       string               `bson:"color" json:"color"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Query narrows the list index to one caller's lists.
type Query struct {
	Filter    string
	UserID    primitive.ObjectID
	ChannelID string
}

// Request DTOs

type CreateListRequest struct {
	Name        string `json:"name" example:"Sprint Tasks"`
	Description string `json:"description"`
	ChannelID   string `json:"channelId" example:"C1"`
	ChannelName string `json:"channelName" example:"general"`
	Color       string `json:"color" example:"#1264a3"`
}

// UpdateListRequest carries the only metadata fields that may change after
// creation; absent fields are left untouched.
type UpdateListRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type ShareListRequest struct {
	UserIDs []string `json:"userIds"`
}

type AddItemRequest struct {
	Text       string     `json:"text" example:"Write tests"`
	AssignedTo string     `json:"assignedTo"`
	DueDate    *time.Time `json:"dueDate"`
}

// UpdateItemRequest distinguishes absent fields (untouched) from explicit
// nulls (cleared) on the nullable ones.
type UpdateItemRequest struct {
	Text       *string                `json:"text"`
	Completed  *bool                  `json:"completed"`
	AssignedTo patch.Field[string]    `json:"assignedTo"`
	DueDate    patch.Field[time.Time] `json:"dueDate"`
}

// Store patches

// MetadataPatch is the whitelist of list fields mutable after creation.
type MetadataPatch struct {
	Name        *string
	Description *string
	Color       *string
}

// IsZero reports whether the patch changes nothing.
func (p MetadataPatch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.Color == nil
}

// ItemPatch is the whitelist of item fields mutable after insertion. The
// Set* flags mark nullable fields that were explicitly provided, so a nil
// value clears rather than skips.
type ItemPatch struct {
	Text          *string
	Completed     *bool
	SetAssignedTo bool
	AssignedTo    *primitive.ObjectID
	SetDueDate    bool
	DueDate       *time.Time
}

// IsZero reports whether the patch changes nothing.
func (p ItemPatch) IsZero() bool {
	return p.Text == nil && p.Completed == nil && !p.SetAssignedTo && !p.SetDueDate
}

// Rendered views

// ItemView is an item with its user references resolved for display.
type ItemView struct {
	ID         primitive.ObjectID `json:"id"`
	Text       string             `json:"text"`
	Completed  bool               `json:"completed"`
	AssignedTo *auth.UserSummary  `json:"assignedTo"`
	CreatedBy  auth.UserSummary   `json:"createdBy"`
	DueDate    *time.Time         `json:"dueDate"`
	Order      int                `json:"order"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// ListView is the complete renderable aggregate every operation returns.
type ListView struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ChannelID   string             `json:"channelId"`
	ChannelName string             `json:"channelName"`
	CreatedBy   auth.UserSummary   `json:"createdBy"`
	SharedWith  []auth.UserSummary `json:"sharedWith"`
	Items       []ItemView         `json:"items"`
	IsArchived  bool               `json:"isArchived"`
	Color       string             `json:"color"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
