package sync

import (
	"context"
	"errors"
	"fmt"

	httpClient "github.com/iudanet/gophbook/internal/client/api"
	"github.com/iudanet/gophbook/internal/mapper"
	"github.com/iudanet/gophbook/internal/models"
	"github.com/iudanet/gophbook/pkg/api"
)

// syncGroups reconciles contact groups and returns the resource names of every group
// that exists remotely after the pass (fetched or just created).
func (s *service) syncGroups(ctx context.Context, c *Counters) (resourceSet, error) {
	groups, err := s.apiClient.ListContactGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact groups: %w", err)
	}

	remote, err := s.applyRemoteGroups(ctx, groups, c)
	if err != nil {
		return nil, err
	}

	justAdded, err := s.pushAddedGroups(ctx, c)
	if err != nil {
		return nil, err
	}

	if err := s.pushModifiedGroups(ctx, c); err != nil {
		return nil, err
	}

	if err := s.sweepGroups(ctx, remote, justAdded, c); err != nil {
		return nil, err
	}

	for name := range justAdded {
		remote.add(name)
	}
	return remote, nil
}

// applyRemoteGroups is the remote-authoritative pass.
func (s *service) applyRemoteGroups(ctx context.Context, groups []*api.ContactGroup, c *Counters) (resourceSet, error) {
	deletedList, err := s.book.DeletedItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read deleted items: %w", err)
	}
	deleted := newResourceSet(deletedList...)
	includeSystem := s.apiClient.IncludeSystemContactGroups()

	remote := newResourceSet()
	for _, group := range groups {
		if group.IsSystem() && !includeSystem {
			s.trace("Skipping system group", "resource", group.ResourceName)
			c.Skipped++
			continue
		}
		remote.add(group.ResourceName)

		local, found, err := s.lookup(ctx, group.ResourceName)
		if err != nil {
			return nil, err
		}

		switch {
		case !found && deleted.has(group.ResourceName):
			// Системную группу удалить нельзя, а в режиме чтения каталог не меняется:
			// в обоих случаях группа возвращается локально
			if s.opts.ReadOnly || group.IsSystem() {
				if err := s.addLocalGroup(ctx, group, c); err != nil {
					return nil, err
				}
				break
			}
			if err := s.apiClient.DeleteContactGroup(ctx, group.ResourceName); err != nil {
				return nil, fmt.Errorf("failed to delete group %s: %w", group.ResourceName, err)
			}
			s.trace("Deleted group remotely", "resource", group.ResourceName)
			c.DeletedRemotely++
			if err := s.book.RemoveFromChangeLog(ctx, group.ResourceName); err != nil {
				return nil, err
			}

		case !found:
			if err := s.addLocalGroup(ctx, group, c); err != nil {
				return nil, err
			}

		case !local.IsMailList:
			s.logger.Warn("Group resource is bound to a contact, skipping", "resource", group.ResourceName)
			c.Skipped++

		case local.ETag != group.ETag || s.opts.ReadOnly:
			if _, err := mapper.GroupToLocal(local, group); err != nil {
				return nil, err
			}
			local.ETag = group.ETag
			if err := s.book.ModifyItem(ctx, local, true); err != nil {
				return nil, fmt.Errorf("failed to update local group %s: %w", group.ResourceName, err)
			}
			if err := s.book.RemoveFromChangeLog(ctx, group.ResourceName); err != nil {
				return nil, err
			}
			s.trace("Updated group locally", "resource", group.ResourceName, "etag", group.ETag)
			c.UpdatedLocally++
		}
	}

	return remote, nil
}

func (s *service) addLocalGroup(ctx context.Context, group *api.ContactGroup, c *Counters) error {
	list := s.book.NewList()
	if _, err := mapper.GroupToLocal(list, group); err != nil {
		return err
	}
	list.ResourceName = group.ResourceName
	list.ETag = group.ETag

	if err := s.book.AddItem(ctx, list, true); err != nil {
		return fmt.Errorf("failed to add local group %s: %w", group.ResourceName, err)
	}
	if err := s.book.RemoveFromChangeLog(ctx, group.ResourceName); err != nil {
		return err
	}

	s.trace("Added group locally", "resource", group.ResourceName, "name", list.List.Name)
	c.AddedLocally++
	return nil
}

// pushAddedGroups creates locally added groups remotely and returns their new resource names.
func (s *service) pushAddedGroups(ctx context.Context, c *Counters) (resourceSet, error) {
	added, err := s.book.AddedItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read added items: %w", err)
	}

	justAdded := newResourceSet()
	for _, name := range added {
		list, found, err := s.lookup(ctx, name)
		if err != nil {
			return nil, err
		}
		if !found || !list.IsMailList {
			continue
		}

		if !s.opts.ReadOnly {
			payload, err := mapper.GroupToRemote(list, &api.ContactGroup{})
			if err != nil {
				return nil, err
			}
			created, err := s.apiClient.CreateContactGroup(ctx, payload)
			if err != nil {
				return nil, fmt.Errorf("failed to create group %q: %w", list.List.Name, err)
			}

			if _, err := mapper.GroupToLocal(list, created); err != nil {
				return nil, err
			}
			list.ResourceName = created.ResourceName
			list.ETag = created.ETag
			if err := s.book.ModifyItem(ctx, list, true); err != nil {
				return nil, fmt.Errorf("failed to bind created group %s: %w", created.ResourceName, err)
			}
			justAdded.add(created.ResourceName)
			s.trace("Created group remotely", "resource", created.ResourceName, "name", list.List.Name)
			c.AddedRemotely++
		}

		if err := s.book.RemoveFromChangeLog(ctx, name); err != nil {
			return nil, err
		}
	}

	return justAdded, nil
}

// pushModifiedGroups sends locally renamed groups; a group gone upstream is deleted locally.
func (s *service) pushModifiedGroups(ctx context.Context, c *Counters) error {
	modified, err := s.book.ModifiedItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to read modified items: %w", err)
	}

	for _, name := range modified {
		list, found, err := s.lookup(ctx, name)
		if err != nil {
			return err
		}
		if !found || !list.IsMailList {
			continue
		}

		if !s.opts.ReadOnly {
			if err := s.pushModifiedGroup(ctx, list, c); err != nil {
				return err
			}
		}

		if err := s.book.RemoveFromChangeLog(ctx, name); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) pushModifiedGroup(ctx context.Context, list *models.Item, c *Counters) error {
	// Без etag группу обновить нельзя: так выглядят системные группы
	if list.ETag == "" {
		s.logger.Warn("Skipping modified group without etag", "resource", list.ResourceName, "name", list.List.Name)
		c.Skipped++
		return nil
	}

	payload, err := mapper.GroupToRemote(list, &api.ContactGroup{ResourceName: list.ResourceName, ETag: list.ETag})
	if err != nil {
		return err
	}

	updated, err := s.apiClient.UpdateContactGroup(ctx, payload)
	switch {
	case errors.Is(err, httpClient.ErrNotFound):
		if err := s.book.DeleteItem(ctx, list, true); err != nil {
			return fmt.Errorf("failed to delete vanished group %s: %w", list.ResourceName, err)
		}
		s.trace("Group vanished upstream, deleted locally", "resource", list.ResourceName)
		c.DeletedLocally++
		return nil
	case err != nil:
		return fmt.Errorf("failed to update group %s: %w", list.ResourceName, err)
	}

	if _, err := mapper.GroupToLocal(list, updated); err != nil {
		return err
	}
	list.ETag = updated.ETag
	if err := s.book.ModifyItem(ctx, list, true); err != nil {
		return fmt.Errorf("failed to store etag of group %s: %w", list.ResourceName, err)
	}
	s.trace("Updated group remotely", "resource", list.ResourceName, "etag", updated.ETag)
	c.UpdatedRemotely++
	return nil
}

// sweepGroups deletes local groups that are absent remotely and were not just created.
func (s *service) sweepGroups(ctx context.Context, remote, justAdded resourceSet, c *Counters) error {
	items, err := s.book.AllItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to list local items: %w", err)
	}

	for _, item := range items {
		if !item.IsMailList || remote.has(item.ResourceName) || justAdded.has(item.ResourceName) {
			continue
		}
		if err := s.book.DeleteItem(ctx, item, true); err != nil {
			return fmt.Errorf("failed to delete local group %s: %w", item.ResourceName, err)
		}
		s.trace("Group absent remotely, deleted locally", "resource", item.ResourceName)
		c.DeletedLocally++
	}

	return nil
}
