// Package testutil provides in-memory implementations of the domain
// repositories and file store for application layer tests.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/ticketdesk/ticketdesk/internal/domain/draft"
	"github.com/ticketdesk/ticketdesk/internal/domain/ticket"
	"github.com/ticketdesk/ticketdesk/internal/domain/user"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
)

// MockTransactor runs fn directly. It does not roll back; set Err to make
// RunInTransaction fail before fn is called.
type MockTransactor struct {
	Err   error
	Calls int
}

func (m *MockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx)
}

// MockTicketRepository is an in-memory ticket.Repository.
type MockTicketRepository struct {
	mu      sync.Mutex
	tickets map[uint]*ticket.Ticket
	nextID  uint

	CreateErr error
	UpdateErr error
	DeleteErr error
	GetErr    error
	ListErr   error

	LastFilter ticket.ListFilter
}

func NewMockTicketRepository() *MockTicketRepository {
	return &MockTicketRepository{tickets: make(map[uint]*ticket.Ticket)}
}

func (m *MockTicketRepository) Create(_ context.Context, t *ticket.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	if err := t.SetID(m.nextID); err != nil {
		return err
	}
	m.tickets[t.ID()] = t
	return nil
}

func (m *MockTicketRepository) Update(_ context.Context, t *ticket.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.tickets[t.ID()] = t
	return nil
}

func (m *MockTicketRepository) Delete(_ context.Context, ticketID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.tickets, ticketID)
	return nil
}

func (m *MockTicketRepository) GetByID(_ context.Context, ticketID uint) (*ticket.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.tickets[ticketID], nil
}

func (m *MockTicketRepository) GetByUUID(_ context.Context, uuid string) (*ticket.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, t := range m.tickets {
		if t.UUID() == uuid {
			return t, nil
		}
	}
	return nil, nil
}

// List orders by id only; sort semantics are covered by the GORM repository tests.
func (m *MockTicketRepository) List(_ context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastFilter = filter
	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}

	all := make([]*ticket.Ticket, 0, len(m.tickets))
	for _, t := range m.tickets {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })

	total := int64(len(all))
	if filter.Offset >= len(all) {
		return []*ticket.Ticket{}, total, nil
	}
	all = all[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(all) {
		all = all[:filter.Limit]
	}
	return all, total, nil
}

func (m *MockTicketRepository) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.tickets)), nil
}

// MockDraftRepository is an in-memory draft.Repository.
type MockDraftRepository struct {
	mu     sync.Mutex
	drafts map[uint]*draft.Draft
	nextID uint

	CreateErr error
	GetErr    error
}

func NewMockDraftRepository() *MockDraftRepository {
	return &MockDraftRepository{drafts: make(map[uint]*draft.Draft)}
}

func (m *MockDraftRepository) Create(_ context.Context, d *draft.Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	if err := d.SetID(m.nextID); err != nil {
		return err
	}
	m.drafts[d.ID()] = d
	return nil
}

func (m *MockDraftRepository) GetLatestByUserID(_ context.Context, userID uint) (*draft.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	var latest *draft.Draft
	for _, d := range m.drafts {
		if d.UserID() != userID {
			continue
		}
		if latest == nil || d.SavedAt().After(latest.SavedAt()) ||
			(d.SavedAt().Equal(latest.SavedAt()) && d.ID() > latest.ID()) {
			latest = d
		}
	}
	return latest, nil
}

func (m *MockDraftRepository) ListIDsByUserID(_ context.Context, userID uint) ([]uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []uint
	for id, d := range m.drafts {
		if d.UserID() == userID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *MockDraftRepository) DeleteByIDs(_ context.Context, draftIDs []uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range draftIDs {
		delete(m.drafts, id)
	}
	return nil
}

func (m *MockDraftRepository) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.drafts)), nil
}

// MockVoiceNoteRepository is an in-memory voicenote.Repository.
type MockVoiceNoteRepository struct {
	mu     sync.Mutex
	notes  map[uint]*voicenote.VoiceNote
	nextID uint

	CreateErr error
	CountErr  error
}

func NewMockVoiceNoteRepository() *MockVoiceNoteRepository {
	return &MockVoiceNoteRepository{notes: make(map[uint]*voicenote.VoiceNote)}
}

// All returns every stored note ordered by id.
func (m *MockVoiceNoteRepository) All() []*voicenote.VoiceNote {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter(func(*voicenote.VoiceNote) bool { return true }, false)
}

func (m *MockVoiceNoteRepository) filter(keep func(*voicenote.VoiceNote) bool, newestFirst bool) []*voicenote.VoiceNote {
	out := []*voicenote.VoiceNote{}
	for _, n := range m.notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if newestFirst {
			if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
				return out[i].CreatedAt().After(out[j].CreatedAt())
			}
			return out[i].ID() > out[j].ID()
		}
		return out[i].ID() < out[j].ID()
	})
	return out
}

func ownedByTicket(ticketID uint) func(*voicenote.VoiceNote) bool {
	return func(n *voicenote.VoiceNote) bool {
		return n.TicketID() != nil && *n.TicketID() == ticketID
	}
}

func ownedByDraft(draftID uint) func(*voicenote.VoiceNote) bool {
	return func(n *voicenote.VoiceNote) bool {
		return n.DraftID() != nil && *n.DraftID() == draftID
	}
}

func (m *MockVoiceNoteRepository) Create(_ context.Context, note *voicenote.VoiceNote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	if err := note.SetID(m.nextID); err != nil {
		return err
	}
	m.notes[note.ID()] = note
	return nil
}

func (m *MockVoiceNoteRepository) UpdateOwner(_ context.Context, note *voicenote.VoiceNote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes[note.ID()] = note
	return nil
}

func (m *MockVoiceNoteRepository) GetByID(_ context.Context, noteID uint) (*voicenote.VoiceNote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notes[noteID], nil
}

func (m *MockVoiceNoteRepository) FindStandaloneByFilename(_ context.Context, filename string) (*voicenote.VoiceNote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := m.filter(func(n *voicenote.VoiceNote) bool {
		return n.IsStandalone() && n.Filename() == filename
	}, false)
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (m *MockVoiceNoteRepository) FindLatestByFilename(_ context.Context, filename string) (*voicenote.VoiceNote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := m.filter(func(n *voicenote.VoiceNote) bool { return n.Filename() == filename }, true)
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (m *MockVoiceNoteRepository) ListByTicketID(_ context.Context, ticketID uint) ([]*voicenote.VoiceNote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter(ownedByTicket(ticketID), true), nil
}

func (m *MockVoiceNoteRepository) ListByTicketIDs(_ context.Context, ticketIDs []uint) (map[uint][]*voicenote.VoiceNote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[uint][]*voicenote.VoiceNote)
	for _, id := range ticketIDs {
		if notes := m.filter(ownedByTicket(id), true); len(notes) > 0 {
			out[id] = notes
		}
	}
	return out, nil
}

func (m *MockVoiceNoteRepository) ListByDraftID(_ context.Context, draftID uint) ([]*voicenote.VoiceNote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter(ownedByDraft(draftID), true), nil
}

func (m *MockVoiceNoteRepository) deleteWhere(keep func(*voicenote.VoiceNote) bool) []string {
	var names []string
	for _, n := range m.filter(keep, false) {
		names = append(names, n.Filename())
		delete(m.notes, n.ID())
	}
	return names
}

func (m *MockVoiceNoteRepository) DeleteByTicketID(_ context.Context, ticketID uint) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteWhere(ownedByTicket(ticketID)), nil
}

func (m *MockVoiceNoteRepository) DeleteByDraftID(_ context.Context, draftID uint) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteWhere(ownedByDraft(draftID)), nil
}

func (m *MockVoiceNoteRepository) DeleteStandaloneByFilename(_ context.Context, filename string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := m.deleteWhere(func(n *voicenote.VoiceNote) bool {
		return n.IsStandalone() && n.Filename() == filename
	})
	return int64(len(names)), nil
}

func (m *MockVoiceNoteRepository) CountByFilename(_ context.Context, filename string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return int64(len(m.filter(func(n *voicenote.VoiceNote) bool { return n.Filename() == filename }, false))), nil
}

func (m *MockVoiceNoteRepository) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return int64(len(m.notes)), nil
}

func (m *MockVoiceNoteRepository) CountStandalone(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.filter(func(n *voicenote.VoiceNote) bool { return n.IsStandalone() }, false))), nil
}

// MockFileStore keeps file contents in a map.
type MockFileStore struct {
	mu    sync.Mutex
	Files map[string][]byte

	WriteErr  error
	DeleteErr error
	ExistsErr error
}

func NewMockFileStore() *MockFileStore {
	return &MockFileStore{Files: make(map[string][]byte)}
}

func (m *MockFileStore) Write(_ context.Context, filename string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return "", m.WriteErr
	}
	m.Files[filename] = append([]byte(nil), data...)
	return "uploads/" + filename, nil
}

func (m *MockFileStore) Delete(_ context.Context, filename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.Files[filename]; !ok {
		return voicenote.ErrFileNotFound
	}
	delete(m.Files, filename)
	return nil
}

func (m *MockFileStore) Exists(_ context.Context, filename string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	_, ok := m.Files[filename]
	return ok, nil
}

func (m *MockFileStore) Has(filename string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Files[filename]
	return ok
}

// MockUserRepository is an in-memory user.Repository.
type MockUserRepository struct {
	mu     sync.Mutex
	users  map[uint]*user.User
	nextID uint

	CreateErr error
	GetErr    error
	// BeforeCreate runs inside Create, used to simulate a concurrent insert.
	BeforeCreate func()
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uint]*user.User)}
}

func (m *MockUserRepository) Create(_ context.Context, u *user.User) error {
	if m.BeforeCreate != nil {
		m.BeforeCreate()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.users[u.ID()] = u
	return nil
}

// Put stores u as if it had been created elsewhere.
func (m *MockUserRepository) Put(u *user.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID() == 0 {
		m.nextID++
		_ = u.SetID(m.nextID)
	}
	m.users[u.ID()] = u
}

func (m *MockUserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, u := range m.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) GetByID(_ context.Context, userID uint) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.users[userID], nil
}

func (m *MockUserRepository) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

var (
	_ ticket.Repository    = (*MockTicketRepository)(nil)
	_ draft.Repository     = (*MockDraftRepository)(nil)
	_ voicenote.Repository = (*MockVoiceNoteRepository)(nil)
	_ voicenote.FileStore  = (*MockFileStore)(nil)
	_ user.Repository      = (*MockUserRepository)(nil)
)
