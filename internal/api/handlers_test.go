package api

import (
	"context"

	"github.com/ZenKakzi/scholar-book-flow/internal/models"
)

type testLogger struct{}

func (l *testLogger) Info(msg string, args ...any)  {}
func (l *testLogger) Warn(msg string, args ...any)  {}
func (l *testLogger) Error(msg string, args ...any) {}

type testCatalog struct {
	booksFunc                func(ctx context.Context) []models.Book
	bookFunc                 func(ctx context.Context, id string) (*models.Book, error)
	searchFunc               func(ctx context.Context, query string) []models.Book
	borrowRecordsFunc        func(ctx context.Context) []models.BorrowRecord
	borrowRecordsByEmailFunc func(ctx context.Context, email string) []models.BorrowRecord
	statsFunc                func(ctx context.Context) models.Stats
	borrowBookFunc           func(ctx context.Context, bookId string, userEmail string, userName string) (*models.BorrowRecord, error)
	returnBookFunc           func(ctx context.Context, recordId string) error
	addBookFunc              func(ctx context.Context, book models.Book) (*models.Book, error)
	updateBookFunc           func(ctx context.Context, book models.Book) error
	deleteBookFunc           func(ctx context.Context, bookId string) error
	upsertBorrowRecordFunc   func(ctx context.Context, record models.BorrowRecord) (*models.BorrowRecord, error)
	deleteBorrowRecordFunc   func(ctx context.Context, recordId string) error
}

func (c *testCatalog) Books(ctx context.Context) []models.Book {
	if c.booksFunc != nil {
		return c.booksFunc(ctx)
	}
	return []models.Book{}
}

func (c *testCatalog) Book(ctx context.Context, id string) (*models.Book, error) {
	if c.bookFunc != nil {
		return c.bookFunc(ctx, id)
	}
	return &models.Book{Id: id}, nil
}

func (c *testCatalog) Search(ctx context.Context, query string) []models.Book {
	if c.searchFunc != nil {
		return c.searchFunc(ctx, query)
	}
	return []models.Book{}
}

func (c *testCatalog) BorrowRecords(ctx context.Context) []models.BorrowRecord {
	if c.borrowRecordsFunc != nil {
		return c.borrowRecordsFunc(ctx)
	}
	return []models.BorrowRecord{}
}

func (c *testCatalog) BorrowRecordsByEmail(ctx context.Context, email string) []models.BorrowRecord {
	if c.borrowRecordsByEmailFunc != nil {
		return c.borrowRecordsByEmailFunc(ctx, email)
	}
	return []models.BorrowRecord{}
}

func (c *testCatalog) Stats(ctx context.Context) models.Stats {
	if c.statsFunc != nil {
		return c.statsFunc(ctx)
	}
	return models.Stats{}
}

func (c *testCatalog) BorrowBook(ctx context.Context, bookId string, userEmail string, userName string) (*models.BorrowRecord, error) {
	if c.borrowBookFunc != nil {
		return c.borrowBookFunc(ctx, bookId, userEmail, userName)
	}
	return &models.BorrowRecord{Id: "record-id", BookId: bookId}, nil
}

func (c *testCatalog) ReturnBook(ctx context.Context, recordId string) error {
	if c.returnBookFunc != nil {
		return c.returnBookFunc(ctx, recordId)
	}
	return nil
}

func (c *testCatalog) AddBook(ctx context.Context, book models.Book) (*models.Book, error) {
	if c.addBookFunc != nil {
		return c.addBookFunc(ctx, book)
	}
	book.Id = "book-id"
	return &book, nil
}

func (c *testCatalog) UpdateBook(ctx context.Context, book models.Book) error {
	if c.updateBookFunc != nil {
		return c.updateBookFunc(ctx, book)
	}
	return nil
}

func (c *testCatalog) DeleteBook(ctx context.Context, bookId string) error {
	if c.deleteBookFunc != nil {
		return c.deleteBookFunc(ctx, bookId)
	}
	return nil
}

func (c *testCatalog) UpsertBorrowRecord(ctx context.Context, record models.BorrowRecord) (*models.BorrowRecord, error) {
	if c.upsertBorrowRecordFunc != nil {
		return c.upsertBorrowRecordFunc(ctx, record)
	}
	return &record, nil
}

func (c *testCatalog) DeleteBorrowRecord(ctx context.Context, recordId string) error {
	if c.deleteBorrowRecordFunc != nil {
		return c.deleteBorrowRecordFunc(ctx, recordId)
	}
	return nil
}

type testSessions struct {
	loginFunc    func(ctx context.Context, email string, password string) (*models.User, error)
	logoutFunc   func(ctx context.Context) error
	userByIdFunc func(id string) (*models.User, error)
}

func (s *testSessions) Login(ctx context.Context, email string, password string) (*models.User, error) {
	if s.loginFunc != nil {
		return s.loginFunc(ctx, email, password)
	}
	return &models.User{Id: "1", Email: email, Role: models.RoleStudent}, nil
}

func (s *testSessions) Logout(ctx context.Context) error {
	if s.logoutFunc != nil {
		return s.logoutFunc(ctx)
	}
	return nil
}

func (s *testSessions) UserById(id string) (*models.User, error) {
	if s.userByIdFunc != nil {
		return s.userByIdFunc(id)
	}
	return &models.User{Id: id, Role: models.RoleStudent}, nil
}
