package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophbook/internal/models"
)

// AddedItems returns resource names recorded as added
func (s *Storage) AddedItems(ctx context.Context) ([]string, error) {
	return s.changesOfKind(models.ChangeAdded)
}

// ModifiedItems returns resource names recorded as modified
func (s *Storage) ModifiedItems(ctx context.Context) ([]string, error) {
	return s.changesOfKind(models.ChangeModified)
}

// DeletedItems returns resource names recorded as deleted
func (s *Storage) DeletedItems(ctx context.Context) ([]string, error) {
	return s.changesOfKind(models.ChangeDeleted)
}

// ChangeLog returns every entry ordered by resource name
func (s *Storage) ChangeLog(ctx context.Context) ([]models.ChangeLogEntry, error) {
	var entries []models.ChangeLogEntry

	err := s.view(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketChangeLog).ForEach(func(k, v []byte) error {
			entries = append(entries, models.ChangeLogEntry{
				ResourceName: string(k),
				Kind:         models.ChangeKind(v),
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read change log: %w", err)
	}

	return entries, nil
}

// RemoveFromChangeLog drops the entry of the resource name
func (s *Storage) RemoveFromChangeLog(ctx context.Context, resourceName string) error {
	err := s.update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketChangeLog).Delete([]byte(resourceName))
	})
	if err != nil {
		return fmt.Errorf("failed to remove change log entry: %w", err)
	}

	return nil
}

// ClearChangeLog drops every entry
func (s *Storage) ClearChangeLog(ctx context.Context) error {
	err := s.update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketChangeLog); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}

		if _, err := tx.CreateBucket(bucketChangeLog); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}

func (s *Storage) changesOfKind(kind models.ChangeKind) ([]string, error) {
	var names []string

	err := s.view(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketChangeLog).ForEach(func(k, v []byte) error {
			if models.ChangeKind(v) == kind {
				names = append(names, string(k))
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s changes: %w", kind, err)
	}

	return names, nil
}

func getChange(tx *bbolt.Tx, resourceName string) models.ChangeKind {
	return models.ChangeKind(tx.Bucket(bucketChangeLog).Get([]byte(resourceName)))
}

func putChange(tx *bbolt.Tx, resourceName string, kind models.ChangeKind) error {
	if err := tx.Bucket(bucketChangeLog).Put([]byte(resourceName), []byte(kind)); err != nil {
		return fmt.Errorf("failed to record %s change: %w", kind, err)
	}
	return nil
}
