package cli

import (
	"time"

	"github.com/iudanet/gophbook/internal/client/auth"
	"github.com/iudanet/gophbook/internal/client/book"
	"github.com/iudanet/gophbook/internal/client/iocli"
	"github.com/iudanet/gophbook/internal/client/storage"
	"github.com/iudanet/gophbook/internal/client/sync"
)

// Session настраивает HTTP клиент каталога перед синхронизацией
type Session interface {
	SetAccessToken(token string)
	SetIncludeSystemContactGroups(include bool)
}

type Cli struct {
	io          iocli.IO
	session     Session
	authService auth.Service
	bookService book.Service
	syncService sync.Service
	settings    storage.SettingsStorage
	now         func() time.Time
	syncOptions sync.Options
}

// Deps собирает зависимости команд
type Deps struct {
	Session     Session
	AuthService auth.Service
	BookService book.Service
	SyncService sync.Service
	Settings    storage.SettingsStorage
	SyncOptions sync.Options
}

func New(io iocli.IO, deps Deps) *Cli {
	return &Cli{
		io:          io,
		session:     deps.Session,
		authService: deps.AuthService,
		bookService: deps.BookService,
		syncService: deps.SyncService,
		settings:    deps.Settings,
		syncOptions: deps.SyncOptions,
		now:         time.Now,
	}
}

// PrintUsage выводит справку по командам
func PrintUsage(io iocli.IO) {
	_ = render(io, usageTemplate, nil)
}
