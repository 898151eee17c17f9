package lists

import "go.mongodb.org/mongo-driver/bson/primitive"

// IsOwnedBy reports whether userID is the list's creator. Only the creator
// may change metadata, archive, delete, or share the list.
func (l *List) IsOwnedBy(userID primitive.ObjectID) bool {
	return l.CreatedBy == userID
}

// IsSharedWith reports whether userID is a collaborator on the list.
func (l *List) IsSharedWith(userID primitive.ObjectID) bool {
	for _, id := range l.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}

// CanRead reports whether userID may see the list or mutate its items.
func (l *List) CanRead(userID primitive.ObjectID) bool {
	return l.IsOwnedBy(userID) || l.IsSharedWith(userID)
}
