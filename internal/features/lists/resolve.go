package lists

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/huddleapp/huddle/internal/features/auth"
	"github.com/huddleapp/huddle/pkg/errors"
)

// render resolves one aggregate's user references to display summaries.
func (s *Service) render(ctx context.Context, list *List) (*ListView, error) {
	views, err := s.renderAll(ctx, []List{*list})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// renderAll resolves user references for a batch of lists with a single
// directory call.
func (s *Service) renderAll(ctx context.Context, found []List) ([]ListView, error) {
	ids := collectUserIDs(found)

	summaries, err := s.directory.Summaries(ctx, ids)
	if err != nil {
		return nil, errors.Internal("Failed to resolve users", err)
	}

	views := make([]ListView, 0, len(found))
	for i := range found {
		views = append(views, buildView(&found[i], summaries))
	}
	return views, nil
}

func collectUserIDs(found []List) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool)
	var ids []primitive.ObjectID

	add := func(id primitive.ObjectID) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for i := range found {
		list := &found[i]
		add(list.CreatedBy)
		for _, id := range list.SharedWith {
			add(id)
		}
		for j := range list.Items {
			add(list.Items[j].CreatedBy)
			if list.Items[j].AssignedTo != nil {
				add(*list.Items[j].AssignedTo)
			}
		}
	}
	return ids
}

func buildView(list *List, summaries map[primitive.ObjectID]auth.UserSummary) ListView {
	view := ListView{
		ID:          list.ID,
		Name:        list.Name,
		Description: list.Description,
		ChannelID:   list.ChannelID,
		ChannelName: list.ChannelName,
		CreatedBy:   summaryOrStub(summaries, list.CreatedBy),
		SharedWith:  []auth.UserSummary{},
		Items:       []ItemView{},
		IsArchived:  list.IsArchived,
		Color:       list.Color,
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}

	for _, id := range list.SharedWith {
		// Dangling references are dropped rather than rendered empty.
		if summary, ok := summaries[id]; ok {
			view.SharedWith = append(view.SharedWith, summary)
		}
	}

	for i := range list.Items {
		item := &list.Items[i]
		itemView := ItemView{
			ID:        item.ID,
			Text:      item.Text,
			Completed: item.Completed,
			CreatedBy: summaryOrStub(summaries, item.CreatedBy),
			DueDate:   item.DueDate,
			Order:     item.Order,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		}
		if item.AssignedTo != nil {
			if summary, ok := summaries[*item.AssignedTo]; ok {
				itemView.AssignedTo = &summary
			}
		}
		view.Items = append(view.Items, itemView)
	}

	return view
}

// summaryOrStub keeps the creator reference visible even if the user record
// has since disappeared.
func summaryOrStub(summaries map[primitive.ObjectID]auth.UserSummary, id primitive.ObjectID) auth.UserSummary {
	if summary, ok := summaries[id]; ok {
		return summary
	}
	return auth.UserSummary{ID: id}
}
