package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ZenKakzi/scholar-book-flow/internal/logger"
	"github.com/ZenKakzi/scholar-book-flow/internal/models"
	"github.com/ZenKakzi/scholar-book-flow/internal/storage"
)

var (
	ErrBookNotFound    = errors.New("book not found")
	ErrBookUnavailable = errors.New("book is not available for borrowing")
	ErrAlreadyBorrowed = errors.New("book already borrowed by this user")
	ErrRecordNotFound  = errors.New("borrow record not found")
)

const (
	dateFormat = "2006-01-02"

	// Borrowing period: due date = borrowed date + 14 days.
	borrowDays = 14
)

// Store is the single source of truth for the book catalogue and the
// borrow ledger. Availability is never stored: it is recomputed from the
// ledger and the admin override flag on every read.
type Store struct {
	mu      sync.Mutex
	books   []models.Book
	records []models.BorrowRecord

	storage storage.Storage
	logger  logger.Logger
	now     func() time.Time

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// New restores both lists from storage. Each key is restored independently:
// a missing or malformed payload falls back to the built-in seed for that
// list only and is never fatal.
func New(ctx context.Context, st storage.Storage, logger logger.Logger) *Store {
	s := &Store{
		storage: st,
		logger:  logger,
		now:     time.Now,
		subs:    make(map[int]func()),
	}

	s.books = s.restoreBooks(ctx)
	s.records = s.reconcile(s.restoreRecords(ctx))

	return s
}

func (s *Store) restoreBooks(ctx context.Context) []models.Book {
	payload, err := s.storage.Get(ctx, storage.KeyBooks)

	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Warn(fmt.Sprintf("error reading stored books: %v", err), "service", "catalog")
		}
		return seedBooks()
	}

	var books []models.Book

	if err := json.Unmarshal([]byte(payload), &books); err != nil {
		s.logger.Warn(fmt.Sprintf("error parsing stored books, falling back to seed: %v", err), "service", "catalog")
		return seedBooks()
	}

	return books
}

func (s *Store) restoreRecords(ctx context.Context) []models.BorrowRecord {
	payload, err := s.storage.Get(ctx, storage.KeyBorrowedBooks)

	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Warn(fmt.Sprintf("error reading stored borrow records: %v", err), "service", "catalog")
		}
		return seedRecords()
	}

	var records []models.BorrowRecord

	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		s.logger.Warn(fmt.Sprintf("error parsing stored borrow records, falling back to seed: %v", err), "service", "catalog")
		return seedRecords()
	}

	return records
}

// reconcile drops restored active records that reference a book no longer
// in the catalogue, so a stale checkout can never outlive its book.
func (s *Store) reconcile(records []models.BorrowRecord) []models.BorrowRecord {
	known := make(map[string]bool, len(s.books))
	for _, b := range s.books {
		known[b.Id] = true
	}

	kept := records[:0]
	for _, r := range records {
		if r.Status == models.StatusActive && !known[r.BookId] {
			s.logger.Warn("dropping active borrow record for missing book", "record_id", r.Id, "book_id", r.BookId)
			continue
		}
		kept = append(kept, r)
	}

	return kept
}

// booksWithAvailability derives the availability projection. Callers must
// hold the lock.
func (s *Store) booksWithAvailability() []models.Book {
	active := make(map[string]bool)

	for _, r := range s.records {
		if r.Status == models.StatusActive {
			active[r.BookId] = true
		}
	}

	books := make([]models.Book, len(s.books))

	for i, b := range s.books {
		b.Available = !active[b.Id] && !b.AdminUnavailable
		books[i] = b
	}

	return books
}

// persist writes both lists through to storage. Callers must hold the lock.
// A failed write is logged but does not roll back the in-memory mutation.
func (s *Store) persist(ctx context.Context) {
	books, err := json.Marshal(s.books)

	if err != nil {
		s.logger.Error(fmt.Sprintf("error marshalling books: %v", err), "service", "catalog")
		return
	}

	if err := s.storage.Set(ctx, storage.KeyBooks, string(books)); err != nil {
		s.logger.Error(fmt.Sprintf("error persisting books: %v", err), "service", "catalog")
	}

	records, err := json.Marshal(s.records)

	if err != nil {
		s.logger.Error(fmt.Sprintf("error marshalling borrow records: %v", err), "service", "catalog")
		return
	}

	if err := s.storage.Set(ctx, storage.KeyBorrowedBooks, string(records)); err != nil {
		s.logger.Error(fmt.Sprintf("error persisting borrow records: %v", err), "service", "catalog")
	}
}

// Subscribe registers fn to run after every successful mutation and returns
// the matching unsubscribe func. Subscribers run outside the store lock.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Books returns the catalogue with derived availability.
func (s *Store) Books(ctx context.Context) []models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.booksWithAvailability()
}

// Book returns one catalogue entry with derived availability.
func (s *Store) Book(ctx context.Context, id string) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.booksWithAvailability() {
		if b.Id == id {
			return &b, nil
		}
	}

	return nil, ErrBookNotFound
}

// Search runs a linear case-insensitive match over title, author and isbn.
func (s *Store) Search(ctx context.Context, query string) []models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))

	if query == "" {
		return s.booksWithAvailability()
	}

	var matched []models.Book

	for _, b := range s.booksWithAvailability() {
		if strings.Contains(strings.ToLower(b.Title), query) ||
			strings.Contains(strings.ToLower(b.Author), query) ||
			strings.Contains(strings.ToLower(b.Isbn), query) {
			matched = append(matched, b)
		}
	}

	return matched
}

func (s *Store) BorrowRecords(ctx context.Context) []models.BorrowRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]models.BorrowRecord, len(s.records))
	copy(records, s.records)

	return records
}

// BorrowRecordsByEmail returns one student's slice of the ledger.
func (s *Store) BorrowRecordsByEmail(ctx context.Context, email string) []models.BorrowRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []models.BorrowRecord

	for _, r := range s.records {
		if r.StudentEmail == email {
			records = append(records, r)
		}
	}

	return records
}

// Stats returns the dashboard counters.
func (s *Store) Stats(ctx context.Context) models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.Stats{TotalBooks: len(s.books)}

	for _, b := range s.booksWithAvailability() {
		if b.Available {
			stats.AvailableBooks++
		}
	}

	for _, r := range s.records {
		switch r.Status {
		case models.StatusActive:
			stats.ActiveBorrows++
		case models.StatusReturned:
			stats.ReturnedBooks++
		}
	}

	return stats
}

// BorrowBook checks the book out to the given user. The due date is the
// borrow date plus fourteen days; the book title is snapshot into the
// record so later edits to the book do not rewrite history.
func (s *Store) BorrowBook(ctx context.Context, bookId string, userEmail string, userName string) (*models.BorrowRecord, error) {
	s.mu.Lock()

	var book *models.Book

	for i := range s.books {
		if s.books[i].Id == bookId {
			book = &s.books[i]
			break
		}
	}

	if book == nil {
		s.mu.Unlock()
		return nil, ErrBookNotFound
	}

	for _, r := range s.records {
		if r.BookId == bookId && r.StudentEmail == userEmail && r.Status == models.StatusActive {
			s.mu.Unlock()
			return nil, ErrAlreadyBorrowed
		}
	}

	for _, b := range s.booksWithAvailability() {
		if b.Id == bookId && !b.Available {
			s.mu.Unlock()
			return nil, ErrBookUnavailable
		}
	}

	today := s.now()

	record := models.BorrowRecord{
		Id:           uuid.NewString(),
		StudentName:  userName,
		StudentEmail: userEmail,
		BookId:       book.Id,
		BookTitle:    book.Title,
		BorrowedDate: today.Format(dateFormat),
		DueDate:      today.AddDate(0, 0, borrowDays).Format(dateFormat),
		Status:       models.StatusActive,
	}

	s.records = append(s.records, record)
	s.persist(ctx)
	s.mu.Unlock()

	s.notify()

	return &record, nil
}

// ReturnBook flips the record to returned. Returning an already-returned
// record re-applies the same status and is harmless.
func (s *Store) ReturnBook(ctx context.Context, recordId string) error {
	s.mu.Lock()

	found := false

	for i := range s.records {
		if s.records[i].Id == recordId {
			s.records[i].Status = models.StatusReturned
			found = true
			break
		}
	}

	if !found {
		s.mu.Unlock()
		return ErrRecordNotFound
	}

	s.persist(ctx)
	s.mu.Unlock()

	s.notify()

	return nil
}

// AddBook appends a new catalogue entry under a fresh id.
func (s *Store) AddBook(ctx context.Context, book models.Book) (*models.Book, error) {
	book.Id = uuid.NewString()
	book.Available = false

	s.mu.Lock()
	s.books = append(s.books, book)
	s.persist(ctx)
	s.mu.Unlock()

	s.notify()

	return &book, nil
}

// UpdateBook replaces the catalogue entry with the same id.
func (s *Store) UpdateBook(ctx context.Context, book models.Book) error {
	s.mu.Lock()

	found := false

	for i := range s.books {
		if s.books[i].Id == book.Id {
			s.books[i] = book
			found = true
			break
		}
	}

	if !found {
		s.mu.Unlock()
		return ErrBookNotFound
	}

	s.persist(ctx)
	s.mu.Unlock()

	s.notify()

	return nil
}

// DeleteBook removes the book and cascades over the ledger: every record
// referencing it, active or returned, goes with it.
func (s *Store) DeleteBook(ctx context.Context, bookId string) error {
	s.mu.Lock()

	found := false
	books := s.books[:0]

	for _, b := range s.books {
		if b.Id == bookId {
			found = true
			continue
		}
		books = append(books, b)
	}

	if !found {
		s.mu.Unlock()
		return ErrBookNotFound
	}

	s.books = books

	records := s.records[:0]
	for _, r := range s.records {
		if r.BookId == bookId {
			continue
		}
		records = append(records, r)
	}
	s.records = records

	s.persist(ctx)
	s.mu.Unlock()

	s.notify()

	return nil
}

// UpsertBorrowRecord is the administrator's direct ledger edit: replace by
// id when the record exists, append otherwise. The referenced book must
// exist, and an active record may not duplicate another active checkout of
// the same book.
func (s *Store) UpsertBorrowRecord(ctx context.Context, record models.BorrowRecord) (*models.BorrowRecord, error) {
	s.mu.Lock()

	var book *models.Book

	for i := range s.books {
		if s.books[i].Id == record.BookId {
			book = &s.books[i]
			break
		}
	}

	if book == nil {
		s.mu.Unlock()
		return nil, ErrBookNotFound
	}

	if record.Status == models.StatusActive {
		for _, r := range s.records {
			if r.BookId == record.BookId && r.Status == models.StatusActive && r.Id != record.Id {
				s.mu.Unlock()
				return nil, ErrAlreadyBorrowed
			}
		}
	}

	if record.Id == "" {
		record.Id = uuid.NewString()
	}

	// The ledger stores the catalogue's title, not whatever the admin typed.
	record.BookTitle = book.Title

	today := s.now()

	if record.BorrowedDate == "" {
		record.BorrowedDate = today.Format(dateFormat)
	}

	if record.DueDate == "" {
		record.DueDate = today.AddDate(0, 0, borrowDays).Format(dateFormat)
	}

	replaced := false

	for i := range s.records {
		if s.records[i].Id == record.Id {
			s.records[i] = record
			replaced = true
			break
		}
	}

	if !replaced {
		s.records = append(s.records, record)
	}

	s.persist(ctx)
	s.mu.Unlock()

	s.notify()

	return &record, nil
}

// DeleteBorrowRecord removes one ledger entry. No cascade: the book stays.
func (s *Store) DeleteBorrowRecord(ctx context.Context, recordId string) error {
	s.mu.Lock()

	found := false
	records := s.records[:0]

	for _, r := range s.records {
		if r.Id == recordId {
			found = true
			continue
		}
		records = append(records, r)
	}

	if !found {
		s.mu.Unlock()
		return ErrRecordNotFound
	}

	s.records = records
	s.persist(ctx)
	s.mu.Unlock()

	s.notify()

	return nil
}
