package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpClient "github.com/iudanet/gophbook/internal/client/api"
	"github.com/iudanet/gophbook/internal/client/storage"
	"github.com/iudanet/gophbook/internal/mapper"
	"github.com/iudanet/gophbook/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для sync.Service
type Service interface {
	// Sync выполняет полную синхронизацию адресной книги с каталогом
	Sync(ctx context.Context) (*SyncResult, error)

	// GetPendingSyncCount возвращает количество записей журнала, ожидающих синхронизации
	GetPendingSyncCount(ctx context.Context) (int, error)
}

// Options управляют одним запуском синхронизации
type Options struct {
	// UseFakeEmailAddresses fabricates a placeholder address for contacts without one
	UseFakeEmailAddresses bool
	// ReadOnly refreshes everything from the directory and never mutates it
	ReadOnly bool
	// Verbose logs every reconciliation decision
	Verbose bool
}

// service reconciles the local address book with the directory.
// Runs must be serialized by the caller.
type service struct {
	apiClient httpClient.ClientAPI
	book      storage.AddressBook
	logger    *slog.Logger
	now       func() time.Time
	opts      Options
}

// NewService creates a new sync service
func NewService(apiClient httpClient.ClientAPI, book storage.AddressBook, opts Options, logger *slog.Logger) (Service, error) {
	if apiClient == nil {
		return nil, fmt.Errorf("%w: directory client is nil", mapper.ErrInvalidArgument)
	}
	if book == nil {
		return nil, fmt.Errorf("%w: address book is nil", mapper.ErrInvalidArgument)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		apiClient: apiClient,
		book:      book,
		logger:    logger,
		now:       time.Now,
		opts:      opts,
	}, nil
}

// Counters считает решения одной фазы синхронизации
type Counters struct {
	AddedLocally    int // созданы локально по данным каталога
	UpdatedLocally  int // перезаписаны локально по данным каталога
	DeletedLocally  int // удалены локально
	AddedRemotely   int // созданы в каталоге
	UpdatedRemotely int // обновлены в каталоге
	DeletedRemotely int // удалены в каталоге
	Skipped         int // пропущены (системные группы, группы без etag)
}

// SyncResult contains sync operation results
type SyncResult struct {
	Groups          Counters
	Contacts        Counters
	Memberships     int  // количество списков с обновленным составом
	RepairedEntries int  // количество удаленных осиротевших записей журнала
	ReadOnly        bool // запуск был только на чтение
}

// Sync reconciles groups, then contacts, then materializes group membership and
// finally drops change log entries whose items no longer exist. An error aborts the
// remainder of the run; work already committed is not rolled back.
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	s.logger.Info("Starting synchronization", "read_only", s.opts.ReadOnly)

	result := &SyncResult{ReadOnly: s.opts.ReadOnly}

	groups, err := s.syncGroups(ctx, &result.Groups)
	if err != nil {
		return nil, fmt.Errorf("group reconciliation failed: %w", err)
	}

	index, err := s.syncContacts(ctx, &result.Contacts)
	if err != nil {
		return nil, fmt.Errorf("contact reconciliation failed: %w", err)
	}

	// Состав групп известен только после обработки всех контактов
	result.Memberships, err = s.materializeMembers(ctx, groups, index)
	if err != nil {
		return nil, fmt.Errorf("membership materialization failed: %w", err)
	}

	result.RepairedEntries, err = s.repairChangeLog(ctx)
	if err != nil {
		return nil, fmt.Errorf("change log repair failed: %w", err)
	}

	s.logger.Info("Synchronization completed",
		"groups", result.Groups,
		"contacts", result.Contacts,
		"memberships", result.Memberships,
		"repaired", result.RepairedEntries)

	return result, nil
}

// GetPendingSyncCount возвращает количество записей журнала, ожидающих синхронизации
func (s *service) GetPendingSyncCount(ctx context.Context) (int, error) {
	entries, err := s.book.ChangeLog(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get pending entries: %w", err)
	}

	return len(entries), nil
}

func (s *service) mapperOptions() mapper.Options {
	return mapper.Options{
		UseFakeEmailAddresses: s.opts.UseFakeEmailAddresses,
		Now:                   s.now,
	}
}

// lookup resolves a local item by resource name; found is false if nothing is bound to it.
func (s *service) lookup(ctx context.Context, resourceName string) (*models.Item, bool, error) {
	item, err := s.book.ItemByResourceName(ctx, resourceName)
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to resolve %s: %w", resourceName, err)
	}
	return item, true, nil
}

// resourceSet is the set of resource names seen during one run.
type resourceSet map[string]struct{}

func newResourceSet(names ...string) resourceSet {
	set := make(resourceSet, len(names))
	for _, n := range names {
		set.add(n)
	}
	return set
}

func (r resourceSet) add(name string) { r[name] = struct{}{} }

func (r resourceSet) has(name string) bool {
	_, ok := r[name]
	return ok
}

// trace logs a single reconciliation decision when verbose logging is enabled.
func (s *service) trace(msg string, args ...any) {
	if s.opts.Verbose {
		s.logger.Debug(msg, args...)
	}
}
