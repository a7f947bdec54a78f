package book

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/iudanet/gophbook/internal/client/storage"
	"github.com/iudanet/gophbook/internal/mapper"
	"github.com/iudanet/gophbook/internal/models"
)

var (
	ErrNotContact     = errors.New("item is not a contact")
	ErrNotGroup       = errors.New("item is not a group")
	ErrEmptyGroupName = errors.New("group name cannot be empty")
	ErrEmptyContact   = errors.New("contact must have a name or an email")
)

//go:generate moq -out service_mock.go . Service

// Service выполняет локальные правки адресной книги.
// Все правки попадают в журнал изменений и отправляются в каталог при следующей синхронизации.
type Service interface {
	AddContact(ctx context.Context, card models.Card) (*models.Item, error)
	UpdateContact(ctx context.Context, resourceName string, card models.Card) (*models.Item, error)
	AddGroup(ctx context.Context, name string) (*models.Item, error)
	RenameGroup(ctx context.Context, resourceName, name string) (*models.Item, error)
	DeleteItem(ctx context.Context, resourceName string) error

	Get(ctx context.Context, resourceName string) (*models.Item, error)
	// Members возвращает карточки группы в порядке состава
	Members(ctx context.Context, resourceName string) ([]*models.Item, error)
	ListContacts(ctx context.Context) ([]*models.Item, error)
	ListGroups(ctx context.Context) ([]*models.Item, error)

	PendingChanges(ctx context.Context) ([]models.ChangeLogEntry, error)
	// DiscardChanges очищает журнал; неотправленные новые записи будут удалены следующей синхронизацией
	DiscardChanges(ctx context.Context) error
}

type service struct {
	book storage.AddressBook
}

func NewService(book storage.AddressBook) Service {
	return &service{book: book}
}

func (s *service) AddContact(ctx context.Context, card models.Card) (*models.Item, error) {
	if isEmptyCard(card) {
		return nil, ErrEmptyContact
	}

	item := s.book.NewCard()
	item.Card = card
	if err := s.book.AddItem(ctx, item, false); err != nil {
		return nil, fmt.Errorf("failed to add contact: %w", err)
	}
	return item, nil
}

func (s *service) UpdateContact(ctx context.Context, resourceName string, card models.Card) (*models.Item, error) {
	if isEmptyCard(card) {
		return nil, ErrEmptyContact
	}

	item, err := s.Get(ctx, resourceName)
	if err != nil {
		return nil, err
	}
	if item.IsMailList {
		return nil, fmt.Errorf("%s: %w", resourceName, ErrNotContact)
	}

	item.Card = card
	if err := s.book.ModifyItem(ctx, item, false); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return item, nil
}

func (s *service) AddGroup(ctx context.Context, name string) (*models.Item, error) {
	name = mapper.SanitizeGroupName(strings.TrimSpace(name))
	if name == "" {
		return nil, ErrEmptyGroupName
	}

	item := s.book.NewList()
	item.List.Name = name
	if err := s.book.AddItem(ctx, item, false); err != nil {
		return nil, fmt.Errorf("failed to add group: %w", err)
	}
	return item, nil
}

func (s *service) RenameGroup(ctx context.Context, resourceName, name string) (*models.Item, error) {
	name = mapper.SanitizeGroupName(strings.TrimSpace(name))
	if name == "" {
		return nil, ErrEmptyGroupName
	}

	item, err := s.Get(ctx, resourceName)
	if err != nil {
		return nil, err
	}
	if !item.IsMailList {
		return nil, fmt.Errorf("%s: %w", resourceName, ErrNotGroup)
	}
	if item.List.Name == name {
		return item, nil
	}

	item.List.Name = name
	if err := s.book.ModifyItem(ctx, item, false); err != nil {
		return nil, fmt.Errorf("failed to rename group: %w", err)
	}
	return item, nil
}

func (s *service) DeleteItem(ctx context.Context, resourceName string) error {
	item, err := s.Get(ctx, resourceName)
	if err != nil {
		return err
	}
	if err := s.book.DeleteItem(ctx, item, false); err != nil {
		return fmt.Errorf("failed to delete %s: %w", resourceName, err)
	}
	return nil
}

func (s *service) Get(ctx context.Context, resourceName string) (*models.Item, error) {
	item, err := s.book.ItemByResourceName(ctx, resourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", resourceName, err)
	}
	return item, nil
}

func (s *service) Members(ctx context.Context, resourceName string) ([]*models.Item, error) {
	group, err := s.Get(ctx, resourceName)
	if err != nil {
		return nil, err
	}
	if !group.IsMailList {
		return nil, fmt.Errorf("%s: %w", resourceName, ErrNotGroup)
	}

	members := make([]*models.Item, 0, len(group.List.Members))
	for _, id := range group.List.Members {
		card, err := s.book.ItemByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrItemNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get member %s: %w", id, err)
		}
		members = append(members, card)
	}
	return members, nil
}

func (s *service) ListContacts(ctx context.Context) ([]*models.Item, error) {
	return s.list(ctx, false)
}

func (s *service) ListGroups(ctx context.Context) ([]*models.Item, error) {
	return s.list(ctx, true)
}

func (s *service) list(ctx context.Context, lists bool) ([]*models.Item, error) {
	items, err := s.book.AllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	result := make([]*models.Item, 0, len(items))
	for _, item := range items {
		if item.IsMailList == lists {
			result = append(result, item)
		}
	}
	slices.SortStableFunc(result, func(a, b *models.Item) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name())),
			cmp.Compare(a.ResourceName, b.ResourceName),
		)
	})
	return result, nil
}

func (s *service) PendingChanges(ctx context.Context) ([]models.ChangeLogEntry, error) {
	entries, err := s.book.ChangeLog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read change log: %w", err)
	}
	return entries, nil
}

func (s *service) DiscardChanges(ctx context.Context) error {
	if err := s.book.ClearChangeLog(ctx); err != nil {
		return fmt.Errorf("failed to clear change log: %w", err)
	}
	return nil
}

func isEmptyCard(card models.Card) bool {
	return card.FirstName == "" && card.LastName == "" && card.DisplayName == "" &&
		card.NickName == "" && card.PrimaryEmail == "" && card.SecondEmail == ""
}
