// Package store is the document-store boundary. Handlers and services only
// see the interfaces below; the driver behind them is chosen by config
// (STORE_DRIVER): "mongo" for production, "memory" for tests and local dev.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/webnexa/api/app/models"
	"github.com/webnexa/api/config"
)

var (
	// ErrNotFound is returned by lookups that matched no document.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicateUsername is returned when an admin insert violates the
	// unique username constraint.
	ErrDuplicateUsername = errors.New("store: username already exists")
)

// InquiryStore persists contact-form submissions.
type InquiryStore interface {
	// Insert stores a new inquiry and assigns its ID.
	Insert(ctx context.Context, inq *models.Inquiry) error

	// List returns every inquiry, most recent submission first.
	List(ctx context.Context) ([]models.Inquiry, error)

	// UpdateStatus sets the status of the inquiry with the given id and
	// returns the updated document. A missing or malformed id yields
	// (nil, nil) — callers report success with a null record.
	UpdateStatus(ctx context.Context, id, status string) (*models.Inquiry, error)

	// Delete removes the inquiry with the given id. Removing a missing id
	// is not an error.
	Delete(ctx context.Context, id string) error
}

// PortfolioStore persists showcased client entries as schemaless documents.
type PortfolioStore interface {
	// Insert stores doc as-is and returns the assigned id. The caller is
	// responsible for the createdAt field.
	Insert(ctx context.Context, doc map[string]interface{}) (string, error)

	// List returns every entry, most recently created first.
	List(ctx context.Context) ([]map[string]interface{}, error)
}

// AdminStore persists admin accounts.
type AdminStore interface {
	// Insert stores a new account and assigns its ID.
	// Returns ErrDuplicateUsername without mutation when the username is taken.
	Insert(ctx context.Context, acc *models.AdminAccount) error

	// FindByID returns the account with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.AdminAccount, error)

	// FindByUsername returns the account with the given username, or ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*models.AdminAccount, error)

	// Count returns the number of admin accounts.
	Count(ctx context.Context) (int64, error)
}

// Store bundles the three collections behind one connection.
type Store interface {
	Inquiries() InquiryStore
	Portfolio() PortfolioStore
	Admins() AdminStore
	Close(ctx context.Context) error
}

// Connect opens the store configured by STORE_DRIVER.
func Connect(ctx context.Context) (Store, error) {
	switch driver := config.StoreDriver(); driver {
	case "mongo":
		return ConnectMongo(ctx, config.MongoURI(), config.MongoDB())
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unsupported STORE_DRIVER %q (supported: mongo, memory)", driver)
	}
}
