package memory

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/prospectdesk/prospector/internal/entity"
	"github.com/prospectdesk/prospector/internal/usecase"
)

var ErrContactNotFound = errors.New("contact not found")

// ContactStore holds the active session's records in import order. The
// store is replaced wholesale on re-import; there is no single-record
// delete. The mutex only guards against concurrent HTTP handlers, the
// session itself is single-user.
type ContactStore struct {
	mu       sync.RWMutex
	contacts []*entity.Contact
	byID     map[string]*entity.Contact
}

func NewContactStore() *ContactStore {
	return &ContactStore{byID: make(map[string]*entity.Contact)}
}

func (s *ContactStore) Replace(contacts []*entity.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = contacts
	s.byID = make(map[string]*entity.Contact, len(contacts))
	for _, c := range contacts {
		s.byID[c.ID] = c
	}
}

// All returns value copies in canonical order, so callers can iterate
// without holding the store open.
func (s *ContactStore) All() []entity.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]entity.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		res = append(res, *c)
	}
	return res
}

func (s *ContactStore) Get(id string) (entity.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	if !ok {
		return entity.Contact{}, ErrContactNotFound
	}
	return *c, nil
}

func (s *ContactStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts)
}

// UpdateField mutates one field by its exported column name. Status must
// be one of the four recognized outcomes (or empty) and Attempts a
// non-negative integer; everything else is stored verbatim.
func (s *ContactStore) UpdateField(id, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[id]
	if !ok {
		return ErrContactNotFound
	}

	switch field {
	case entity.ColName:
		c.Name = value
	case entity.ColPhone:
		c.Phone = value
	case entity.ColEmail:
		c.Email = value
	case entity.ColCompany:
		c.Company = value
	case entity.ColTitle:
		c.Title = value
	case entity.ColState:
		c.State = value
	case entity.ColStatus:
		status, ok := entity.ParseStatus(strings.TrimSpace(value))
		if !ok {
			return &usecase.ValidationError{
				Field:   entity.ColStatus,
				Message: "must be Voicemail, Yes, No, Call back later, or empty",
			}
		}
		c.Status = status
	case entity.ColMeetingDateTime:
		c.MeetingDateTime = value
	case entity.ColCallbackDateTime:
		c.CallbackDateTime = value
	case entity.ColLastCallDateTime:
		c.LastCallDateTime = value
	case entity.ColAttempts:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return &usecase.ValidationError{
				Field:   entity.ColAttempts,
				Message: "must be a non-negative integer",
			}
		}
		c.Attempts = n
	case entity.ColNotes:
		c.Notes = value
	default:
		return &usecase.ValidationError{Field: field, Message: "unknown field"}
	}
	return nil
}

// IncrementAttempts bumps the counter for every listed record and reports
// how many were found.
func (s *ContactStore) IncrementAttempts(ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := 0
	for _, id := range ids {
		if c, ok := s.byID[id]; ok {
			c.Attempts++
			updated++
		}
	}
	return updated
}
