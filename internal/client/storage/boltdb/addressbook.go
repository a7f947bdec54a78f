package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/gophbook/internal/client/storage"
	"github.com/iudanet/gophbook/internal/models"
)

// ProvisionalPrefix marks resource names of items that were never pushed to the directory.
const ProvisionalPrefix = "local/"

// NewCard returns an unsaved contact with a fresh local ID
func (s *Storage) NewCard() *models.Item {
	return &models.Item{ID: uuid.NewString()}
}

// NewList returns an unsaved group with a fresh local ID
func (s *Storage) NewList() *models.Item {
	return &models.Item{ID: uuid.NewString(), IsMailList: true}
}

// AddItem stores a new item and binds its resource name
func (s *Storage) AddItem(ctx context.Context, item *models.Item, silent bool) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.ResourceName == "" {
		item.ResourceName = ProvisionalPrefix + item.ID
	}
	item.UpdatedAt = s.now()

	err := s.update(func(tx *bbolt.Tx) error {
		items := tx.Bucket(bucketItems)
		if items.Get([]byte(item.ID)) != nil {
			return fmt.Errorf("item %s already exists", item.ID)
		}
		if err := bindResource(tx, item.ResourceName, item.ID); err != nil {
			return err
		}
		if err := putItem(items, item); err != nil {
			return err
		}
		if silent {
			return nil
		}
		return putChange(tx, item.ResourceName, models.ChangeAdded)
	})
	if err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	return nil
}

// ModifyItem replaces a stored item
func (s *Storage) ModifyItem(ctx context.Context, item *models.Item, silent bool) error {
	if item.ResourceName == "" {
		item.ResourceName = ProvisionalPrefix + item.ID
	}
	item.UpdatedAt = s.now()

	err := s.update(func(tx *bbolt.Tx) error {
		items := tx.Bucket(bucketItems)
		existing, err := getItem(items, item.ID)
		if err != nil {
			return err
		}

		// Ресурс сменился: переносим индекс
		if existing.ResourceName != item.ResourceName {
			if err := bindResource(tx, item.ResourceName, item.ID); err != nil {
				return err
			}
			if err := unbindResource(tx, existing.ResourceName, item.ID); err != nil {
				return err
			}
		}

		if err := putItem(items, item); err != nil {
			return err
		}
		if silent {
			return nil
		}

		// Добавленная с прошлой синхронизации запись остается добавленной
		if getChange(tx, item.ResourceName) == models.ChangeAdded {
			return nil
		}
		return putChange(tx, item.ResourceName, models.ChangeModified)
	})
	if err != nil {
		return fmt.Errorf("failed to modify item: %w", err)
	}

	return nil
}

// DeleteItem removes an item; a deleted card is also dropped from every list
func (s *Storage) DeleteItem(ctx context.Context, item *models.Item, silent bool) error {
	err := s.update(func(tx *bbolt.Tx) error {
		items := tx.Bucket(bucketItems)
		existing, err := getItem(items, item.ID)
		if err != nil {
			return err
		}

		if err := items.Delete([]byte(existing.ID)); err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}
		if err := unbindResource(tx, existing.ResourceName, existing.ID); err != nil {
			return err
		}
		if !existing.IsMailList {
			if err := dropMember(items, existing.ID); err != nil {
				return err
			}
		}

		if silent {
			return nil
		}

		// Запись, не дошедшая до каталога, просто исчезает из журнала
		if getChange(tx, existing.ResourceName) == models.ChangeAdded {
			return tx.Bucket(bucketChangeLog).Delete([]byte(existing.ResourceName))
		}
		return putChange(tx, existing.ResourceName, models.ChangeDeleted)
	})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

// ItemByResourceName resolves an item by its resource name
func (s *Storage) ItemByResourceName(ctx context.Context, resourceName string) (*models.Item, error) {
	var item *models.Item

	err := s.view(func(tx *bbolt.Tx) error {
		id := tx.Bucket(bucketResources).Get([]byte(resourceName))
		if id == nil {
			return storage.ErrItemNotFound
		}

		var err error
		item, err = getItem(tx.Bucket(bucketItems), string(id))
		return err
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// ItemByID resolves an item by its local ID
func (s *Storage) ItemByID(ctx context.Context, id string) (*models.Item, error) {
	var item *models.Item

	err := s.view(func(tx *bbolt.Tx) error {
		var err error
		item, err = getItem(tx.Bucket(bucketItems), id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// AllItems returns every card and list
func (s *Storage) AllItems(ctx context.Context) ([]*models.Item, error) {
	var items []*models.Item

	err := s.view(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketItems).ForEach(func(k, v []byte) error {
			var item models.Item
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal item: %w", err)
			}
			items = append(items, &item)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get all items: %w", err)
	}

	return items, nil
}

func putItem(bucket *bbolt.Bucket, item *models.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}
	if err := bucket.Put([]byte(item.ID), data); err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	return nil
}

func getItem(bucket *bbolt.Bucket, id string) (*models.Item, error) {
	data := bucket.Get([]byte(id))
	if data == nil {
		return nil, storage.ErrItemNotFound
	}

	item := &models.Item{}
	if err := json.Unmarshal(data, item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	return item, nil
}

// bindResource связывает имя ресурса с ID, имя должно быть свободно или уже принадлежать ID
func bindResource(tx *bbolt.Tx, resourceName, id string) error {
	bucket := tx.Bucket(bucketResources)
	if owner := bucket.Get([]byte(resourceName)); owner != nil && string(owner) != id {
		return fmt.Errorf("%w: %s", storage.ErrDuplicateResource, resourceName)
	}
	if err := bucket.Put([]byte(resourceName), []byte(id)); err != nil {
		return fmt.Errorf("failed to bind resource: %w", err)
	}
	return nil
}

func unbindResource(tx *bbolt.Tx, resourceName, id string) error {
	bucket := tx.Bucket(bucketResources)
	if owner := bucket.Get([]byte(resourceName)); owner == nil || string(owner) != id {
		return nil
	}
	if err := bucket.Delete([]byte(resourceName)); err != nil {
		return fmt.Errorf("failed to unbind resource: %w", err)
	}
	return nil
}

// dropMember убирает карточку из всех списков
func dropMember(items *bbolt.Bucket, cardID string) error {
	var changed []*models.Item

	err := items.ForEach(func(k, v []byte) error {
		var list models.Item
		if err := json.Unmarshal(v, &list); err != nil {
			return fmt.Errorf("failed to unmarshal item: %w", err)
		}
		if !list.IsMailList || !list.HasMember(cardID) {
			return nil
		}

		members := list.List.Members[:0]
		for _, m := range list.List.Members {
			if m != cardID {
				members = append(members, m)
			}
		}
		list.List.Members = members
		changed = append(changed, &list)
		return nil
	})
	if err != nil {
		return err
	}

	// Изменять bucket внутри ForEach нельзя
	for _, list := range changed {
		if err := putItem(items, list); err != nil {
			return err
		}
	}
	return nil
}
