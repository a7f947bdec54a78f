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

// syncContacts reconciles contacts and returns the membership index built on the way.
func (s *service) syncContacts(ctx context.Context, c *Counters) (*MembershipIndex, error) {
	people, err := s.apiClient.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	index := NewMembershipIndex()

	remote, err := s.applyRemoteContacts(ctx, people, index, c)
	if err != nil {
		return nil, err
	}

	justAdded, err := s.pushAddedContacts(ctx, index, c)
	if err != nil {
		return nil, err
	}

	if err := s.pushModifiedContacts(ctx, index, c); err != nil {
		return nil, err
	}

	if err := s.sweepContacts(ctx, remote, justAdded, c); err != nil {
		return nil, err
	}

	return index, nil
}

// applyRemoteContacts is the remote-authoritative pass.
func (s *service) applyRemoteContacts(ctx context.Context, people []*api.Person, index *MembershipIndex, c *Counters) (resourceSet, error) {
	deletedList, err := s.book.DeletedItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read deleted items: %w", err)
	}
	deleted := newResourceSet(deletedList...)

	remote := newResourceSet()
	for _, person := range people {
		remote.add(person.ResourceName)

		local, found, err := s.lookup(ctx, person.ResourceName)
		if err != nil {
			return nil, err
		}

		switch {
		case !found && deleted.has(person.ResourceName):
			if s.opts.ReadOnly {
				// Каталог не меняется, контакт возвращается локально
				if err := s.addLocalContact(ctx, person, c); err != nil {
					return nil, err
				}
				index.Fold(person.ResourceName, person.GroupResourceNames())
				break
			}
			if err := s.apiClient.DeleteContact(ctx, person.ResourceName); err != nil {
				return nil, fmt.Errorf("failed to delete contact %s: %w", person.ResourceName, err)
			}
			s.trace("Deleted contact remotely", "resource", person.ResourceName)
			c.DeletedRemotely++
			if err := s.book.RemoveFromChangeLog(ctx, person.ResourceName); err != nil {
				return nil, err
			}

		case !found:
			if err := s.addLocalContact(ctx, person, c); err != nil {
				return nil, err
			}
			index.Fold(person.ResourceName, person.GroupResourceNames())

		case local.IsMailList:
			s.logger.Warn("Contact resource is bound to a group, skipping", "resource", person.ResourceName)
			c.Skipped++

		case local.ETag != person.ETag || s.opts.ReadOnly:
			if _, err := mapper.ContactToLocal(local, person, s.mapperOptions()); err != nil {
				return nil, err
			}
			local.ETag = person.ETag
			if err := s.book.ModifyItem(ctx, local, true); err != nil {
				return nil, fmt.Errorf("failed to update local contact %s: %w", person.ResourceName, err)
			}
			if err := s.book.RemoveFromChangeLog(ctx, person.ResourceName); err != nil {
				return nil, err
			}
			s.trace("Updated contact locally", "resource", person.ResourceName, "etag", person.ETag)
			c.UpdatedLocally++
			index.Fold(person.ResourceName, person.GroupResourceNames())

		default:
			index.Fold(person.ResourceName, person.GroupResourceNames())
		}
	}

	return remote, nil
}

func (s *service) addLocalContact(ctx context.Context, person *api.Person, c *Counters) error {
	card := s.book.NewCard()
	if _, err := mapper.ContactToLocal(card, person, s.mapperOptions()); err != nil {
		return err
	}
	card.ResourceName = person.ResourceName
	card.ETag = person.ETag

	if err := s.book.AddItem(ctx, card, true); err != nil {
		return fmt.Errorf("failed to add local contact %s: %w", person.ResourceName, err)
	}
	if err := s.book.RemoveFromChangeLog(ctx, person.ResourceName); err != nil {
		return err
	}

	s.trace("Added contact locally", "resource", person.ResourceName, "name", card.Name())
	c.AddedLocally++
	return nil
}

// pushAddedContacts creates locally added contacts remotely and returns their new resource names.
func (s *service) pushAddedContacts(ctx context.Context, index *MembershipIndex, c *Counters) (resourceSet, error) {
	added, err := s.book.AddedItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read added items: %w", err)
	}

	justAdded := newResourceSet()
	for _, name := range added {
		card, found, err := s.lookup(ctx, name)
		if err != nil {
			return nil, err
		}
		// Журнал может вернуть группу среди контактов
		if !found || card.IsMailList {
			continue
		}

		if !s.opts.ReadOnly {
			payload, err := mapper.ContactToRemote(card, &api.Person{}, s.mapperOptions())
			if err != nil {
				return nil, err
			}
			created, err := s.apiClient.CreateContact(ctx, payload)
			if err != nil {
				return nil, fmt.Errorf("failed to create contact %q: %w", card.Name(), err)
			}

			// Каталог может нормализовать поля, локальная копия берется из ответа
			if _, err := mapper.ContactToLocal(card, created, s.mapperOptions()); err != nil {
				return nil, err
			}
			card.ResourceName = created.ResourceName
			card.ETag = created.ETag
			if err := s.book.ModifyItem(ctx, card, true); err != nil {
				return nil, fmt.Errorf("failed to bind created contact %s: %w", created.ResourceName, err)
			}
			justAdded.add(created.ResourceName)
			index.Fold(created.ResourceName, created.GroupResourceNames())
			s.trace("Created contact remotely", "resource", created.ResourceName, "name", card.Name())
			c.AddedRemotely++
		}

		if err := s.book.RemoveFromChangeLog(ctx, name); err != nil {
			return nil, err
		}
	}

	return justAdded, nil
}

// pushModifiedContacts sends locally edited contacts; a contact gone upstream is deleted locally.
func (s *service) pushModifiedContacts(ctx context.Context, index *MembershipIndex, c *Counters) error {
	modified, err := s.book.ModifiedItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to read modified items: %w", err)
	}

	for _, name := range modified {
		card, found, err := s.lookup(ctx, name)
		if err != nil {
			return err
		}
		if !found || card.IsMailList {
			continue
		}

		if !s.opts.ReadOnly {
			if err := s.pushModifiedContact(ctx, card, index, c); err != nil {
				return err
			}
		}

		if err := s.book.RemoveFromChangeLog(ctx, name); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) pushModifiedContact(ctx context.Context, card *models.Item, index *MembershipIndex, c *Counters) error {
	payload, err := mapper.ContactToRemote(card, &api.Person{ResourceName: card.ResourceName, ETag: card.ETag}, s.mapperOptions())
	if err != nil {
		return err
	}

	updated, err := s.apiClient.UpdateContact(ctx, payload)
	switch {
	case errors.Is(err, httpClient.ErrNotFound):
		if err := s.book.DeleteItem(ctx, card, true); err != nil {
			return fmt.Errorf("failed to delete vanished contact %s: %w", card.ResourceName, err)
		}
		index.Remove(card.ResourceName)
		s.trace("Contact vanished upstream, deleted locally", "resource", card.ResourceName)
		c.DeletedLocally++
		return nil
	case err != nil:
		return fmt.Errorf("failed to update contact %s: %w", card.ResourceName, err)
	}

	if _, err := mapper.ContactToLocal(card, updated, s.mapperOptions()); err != nil {
		return err
	}
	card.ETag = updated.ETag
	if err := s.book.ModifyItem(ctx, card, true); err != nil {
		return fmt.Errorf("failed to store etag of contact %s: %w", card.ResourceName, err)
	}
	index.Fold(card.ResourceName, updated.GroupResourceNames())
	s.trace("Updated contact remotely", "resource", card.ResourceName, "etag", updated.ETag)
	c.UpdatedRemotely++
	return nil
}

// sweepContacts deletes local contacts that are absent remotely and were not just created.
func (s *service) sweepContacts(ctx context.Context, remote, justAdded resourceSet, c *Counters) error {
	items, err := s.book.AllItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to list local items: %w", err)
	}

	for _, item := range items {
		if item.IsMailList || remote.has(item.ResourceName) || justAdded.has(item.ResourceName) {
			continue
		}
		if err := s.book.DeleteItem(ctx, item, true); err != nil {
			return fmt.Errorf("failed to delete local contact %s: %w", item.ResourceName, err)
		}
		s.trace("Contact absent remotely, deleted locally", "resource", item.ResourceName)
		c.DeletedLocally++
	}

	return nil
}
