package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/webnexa/api/app/models"
)

// Memory is an in-process Store with the same semantics as the mongo driver:
// unique admin usernames, newest-first listings, idempotent deletes. It backs
// tests and STORE_DRIVER=memory local runs.
type Memory struct {
	mu        sync.RWMutex
	inquiries []models.Inquiry
	portfolio []map[string]interface{}
	admins    []models.AdminAccount
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Inquiries() InquiryStore   { return (*memInquiries)(m) }
func (m *Memory) Portfolio() PortfolioStore { return (*memPortfolio)(m) }
func (m *Memory) Admins() AdminStore        { return (*memAdmins)(m) }

func (m *Memory) Close(_ context.Context) error { return nil }

// ─── Inquiries ────────────────────────────────────────────────────────────────

type memInquiries Memory

func (s *memInquiries) Insert(_ context.Context, inq *models.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inq.ID = primitive.NewObjectID()
	s.inquiries = append(s.inquiries, *inq)
	return nil
}

func (s *memInquiries) List(_ context.Context) ([]models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Inquiry, len(s.inquiries))
	copy(out, s.inquiries)

	// Newest submission first; ties keep insertion order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

func (s *memInquiries) UpdateStatus(_ context.Context, id, status string) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inquiries {
		if s.inquiries[i].ID.Hex() == id {
			s.inquiries[i].Status = status
			updated := s.inquiries[i]
			return &updated, nil
		}
	}
	return nil, nil
}

func (s *memInquiries) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inquiries {
		if s.inquiries[i].ID.Hex() == id {
			s.inquiries = append(s.inquiries[:i], s.inquiries[i+1:]...)
			return nil
		}
	}
	return nil
}

// ─── Portfolio ────────────────────────────────────────────────────────────────

type memPortfolio Memory

func (s *memPortfolio) Insert(_ context.Context, doc map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make(map[string]interface{}, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}
	id := primitive.NewObjectID().Hex()
	stored["_id"] = id

	s.portfolio = append(s.portfolio, stored)
	return id, nil
}

func (s *memPortfolio) List(_ context.Context) ([]map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]map[string]interface{}, len(s.portfolio))
	copy(out, s.portfolio)

	sort.SliceStable(out, func(i, j int) bool {
		return docCreatedAt(out[i]).After(docCreatedAt(out[j]))
	})
	return out, nil
}

func docCreatedAt(doc map[string]interface{}) time.Time {
	if t, ok := doc["createdAt"].(time.Time); ok {
		return t
	}
	return time.Time{}
}

// ─── Admins ───────────────────────────────────────────────────────────────────

type memAdmins Memory

func (s *memAdmins) Insert(_ context.Context, acc *models.AdminAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.admins {
		if s.admins[i].Username == acc.Username {
			return ErrDuplicateUsername
		}
	}

	acc.ID = primitive.NewObjectID()
	s.admins = append(s.admins, *acc)
	return nil
}

func (s *memAdmins) FindByID(_ context.Context, id string) (*models.AdminAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.admins {
		if s.admins[i].ID.Hex() == id {
			acc := s.admins[i]
			return &acc, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memAdmins) FindByUsername(_ context.Context, username string) (*models.AdminAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.admins {
		if s.admins[i].Username == username {
			acc := s.admins[i]
			return &acc, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memAdmins) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.admins)), nil
}
