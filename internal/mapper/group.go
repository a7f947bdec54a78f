package mapper

import (
	"fmt"
	"strings"

	"github.com/iudanet/gophbook/internal/models"
	"github.com/iudanet/gophbook/pkg/api"
)

// Символы, недопустимые в имени локального списка.
var listNameReplacer = strings.NewReplacer(
	"<", "_",
	">", "_",
	";", "_",
	",", "_",
	`"`, "_",
)

// SanitizeGroupName replaces every character a local list name cannot hold with '_'.
func SanitizeGroupName(name string) string {
	return listNameReplacer.Replace(name)
}

// GroupToLocal copies the group name into the list, sanitized. Members are not touched.
func GroupToLocal(item *models.Item, group *api.ContactGroup) (*models.Item, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: local list is nil", ErrInvalidArgument)
	}
	if group == nil {
		return nil, fmt.Errorf("%w: remote group is nil", ErrInvalidArgument)
	}
	item.IsMailList = true
	item.List.Name = SanitizeGroupName(group.Name)
	return item, nil
}

// GroupToRemote copies the list name into the group.
func GroupToRemote(item *models.Item, group *api.ContactGroup) (*api.ContactGroup, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: local list is nil", ErrInvalidArgument)
	}
	if group == nil {
		return nil, fmt.Errorf("%w: remote group is nil", ErrInvalidArgument)
	}
	group.Name = item.List.Name
	return group, nil
}
