package lists

import (
	"regexp"
	"strings"

	"github.com/huddleapp/huddle/pkg/errors"
)

var colorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateCreateListRequest checks the required fields for list creation.
func ValidateCreateListRequest(req *CreateListRequest) error {
	if strings.TrimSpace(req.Name) == "" || req.ChannelID == "" || req.ChannelName == "" {
		return errors.Validation("Name, channelId, and channelName are required")
	}
	if req.Color != "" && !colorRegex.MatchString(req.Color) {
		return errors.Validation("Color must be a hex value like #1264a3")
	}
	return nil
}

// ValidateUpdateListRequest checks the metadata fields that are present.
func ValidateUpdateListRequest(req *UpdateListRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return errors.Validation("Name cannot be empty")
	}
	if req.Color != nil && !colorRegex.MatchString(*req.Color) {
		return errors.Validation("Color must be a hex value like #1264a3")
	}
	return nil
}
