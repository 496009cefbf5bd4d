package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ZenKakzi/scholar-book-flow/internal/catalog"
	"github.com/ZenKakzi/scholar-book-flow/internal/config"
	"github.com/ZenKakzi/scholar-book-flow/internal/models"
)

func newTestApi(c *testCatalog, s *testSessions) *Api {
	return &Api{
		logger:   &testLogger{},
		catalog:  c,
		sessions: s,
		config:   &config.Config{Jwt_secret: "secret"},
	}
}

func withURLParam(req *http.Request, key string, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func withUser(req *http.Request, user *models.User) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), "user", user))
}

func TestHandleGetBooks(t *testing.T) {
	a := newTestApi(&testCatalog{
		booksFunc: func(ctx context.Context) []models.Book {
			return []models.Book{
				{Id: "1", Title: "The Shining", Available: true},
				{Id: "2", Title: "It", Available: false},
			}
		},
	}, &testSessions{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
	rr := httptest.NewRecorder()

	a.HandleGetBooks(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rr.Code)
	}

	var res models.HandleGetBooksResponse

	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}

	if len(res.Books) != 2 || res.Books[1].Available {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestHandleSearchBooks(t *testing.T) {
	var gotQuery string

	a := newTestApi(&testCatalog{
		searchFunc: func(ctx context.Context, query string) []models.Book {
			gotQuery = query
			return []models.Book{{Id: "5", Title: "The Shining"}}
		},
	}, &testSessions{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/search?q=shining", nil)
	rr := httptest.NewRecorder()

	a.HandleSearchBooks(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rr.Code)
	}

	if gotQuery != "shining" {
		t.Fatalf("expected query to be passed through, got %s", gotQuery)
	}
}

func TestHandleGetBook(t *testing.T) {
	tests := []struct {
		name         string
		bookId       string
		bookFunc     func(ctx context.Context, id string) (*models.Book, error)
		expectedCode int
	}{
		{
			name:   "should return 404 if the book does not exist",
			bookId: "no-such-book",
			bookFunc: func(ctx context.Context, id string) (*models.Book, error) {
				return nil, catalog.ErrBookNotFound
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "should return 200 with the book",
			bookId: "1",
			bookFunc: func(ctx context.Context, id string) (*models.Book, error) {
				return &models.Book{Id: id, Title: "The Shining", Available: true}, nil
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApi(&testCatalog{bookFunc: tt.bookFunc}, &testSessions{})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/books/"+tt.bookId, nil)
			req = withURLParam(req, "bookId", tt.bookId)
			rr := httptest.NewRecorder()

			a.HandleGetBook(rr, req)

			if rr.Code != tt.expectedCode {
				t.Fatalf("expected %d, got %d", tt.expectedCode, rr.Code)
			}
		})
	}
}

func TestHandleAddBook(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		addBookFunc  func(ctx context.Context, book models.Book) (*models.Book, error)
		expectedCode int
	}{
		{
			name:         "should return 400 if json could not be decoded",
			body:         &struct{ Title int }{Title: 1},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "should return 400 if fields could not be validated",
			body: &models.HandleAddBookParams{
				Title: "The Shining",
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "should return 500 if something went wrong while adding the book",
			body: &models.HandleAddBookParams{
				Title:  "The Shining",
				Author: "Stephen King",
			},
			addBookFunc: func(ctx context.Context, book models.Book) (*models.Book, error) {
				return nil, errors.New("something went wrong")
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "should return 201 with the created book",
			body: &models.HandleAddBookParams{
				Title:  "The Shining",
				Author: "Stephen King",
			},
			expectedCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApi(&testCatalog{addBookFunc: tt.addBookFunc}, &testSessions{})

			data, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/books", bytes.NewBuffer(data))
			rr := httptest.NewRecorder()

			a.HandleAddBook(rr, req)

			if rr.Code != tt.expectedCode {
				t.Fatalf("expected %d, got %d", tt.expectedCode, rr.Code)
			}
		})
	}
}

func TestHandleUpdateBook(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		updateBookFunc func(ctx context.Context, book models.Book) error
		expectedCode   int
	}{
		{
			name:         "should return 400 if fields could not be validated",
			body:         &models.HandleUpdateBookParams{Title: "The Shining"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "should return 404 if the book does not exist",
			body: &models.HandleUpdateBookParams{
				Title:  "The Shining",
				Author: "Stephen King",
			},
			updateBookFunc: func(ctx context.Context, book models.Book) error {
				return catalog.ErrBookNotFound
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "should return 204 on success",
			body: &models.HandleUpdateBookParams{
				Title:            "The Shining",
				Author:           "Stephen King",
				AdminUnavailable: true,
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApi(&testCatalog{updateBookFunc: tt.updateBookFunc}, &testSessions{})

			data, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPut, "/api/v1/books/1", bytes.NewBuffer(data))
			req = withURLParam(req, "bookId", "1")
			rr := httptest.NewRecorder()

			a.HandleUpdateBook(rr, req)

			if rr.Code != tt.expectedCode {
				t.Fatalf("expected %d, got %d", tt.expectedCode, rr.Code)
			}
		})
	}
}

func TestHandleDeleteBook(t *testing.T) {
	tests := []struct {
		name           string
		deleteBookFunc func(ctx context.Context, bookId string) error
		expectedCode   int
	}{
		{
			name: "should return 404 if the book does not exist",
			deleteBookFunc: func(ctx context.Context, bookId string) error {
				return catalog.ErrBookNotFound
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "should return 204 on success",
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApi(&testCatalog{deleteBookFunc: tt.deleteBookFunc}, &testSessions{})

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/books/1", nil)
			req = withURLParam(req, "bookId", "1")
			rr := httptest.NewRecorder()

			a.HandleDeleteBook(rr, req)

			if rr.Code != tt.expectedCode {
				t.Fatalf("expected %d, got %d", tt.expectedCode, rr.Code)
			}
		})
	}
}

func TestHandleBorrowBook(t *testing.T) {
	tests := []struct {
		name           string
		user           *models.User
		borrowBookFunc func(ctx context.Context, bookId string, userEmail string, userName string) (*models.BorrowRecord, error)
		expectedCode   int
	}{
		{
			name:         "should return 401 if no user is on the context",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "should return 404 if the book does not exist",
			user: &models.User{Email: "student1@example.com", Name: "John Smith"},
			borrowBookFunc: func(ctx context.Context, bookId string, userEmail string, userName string) (*models.BorrowRecord, error) {
				return nil, catalog.ErrBookNotFound
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "should return 409 if the book is not available",
			user: &models.User{Email: "student1@example.com", Name: "John Smith"},
			borrowBookFunc: func(ctx context.Context, bookId string, userEmail string, userName string) (*models.BorrowRecord, error) {
				return nil, catalog.ErrBookUnavailable
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "should return 409 if the user already borrowed the book",
			user: &models.User{Email: "student1@example.com", Name: "John Smith"},
			borrowBookFunc: func(ctx context.Context, bookId string, userEmail string, userName string) (*models.BorrowRecord, error) {
				return nil, catalog.ErrAlreadyBorrowed
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "should return 201 with the borrow record",
			user: &models.User{Email: "student1@example.com", Name: "John Smith"},
			borrowBookFunc: func(ctx context.Context, bookId string, userEmail string, userName string) (*models.BorrowRecord, error) {
				return &models.BorrowRecord{Id: "record-id", BookId: bookId, StudentEmail: userEmail, Status: models.StatusActive}, nil
			},
			expectedCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApi(&testCatalog{borrowBookFunc: tt.borrowBookFunc}, &testSessions{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/books/1/borrow", nil)
			req = withURLParam(req, "bookId", "1")

			if tt.user != nil {
				req = withUser(req, tt.user)
			}

			rr := httptest.NewRecorder()

			a.HandleBorrowBook(rr, req)

			if rr.Code != tt.expectedCode {
				t.Fatalf("expected %d, got %d", tt.expectedCode, rr.Code)
			}
		})
	}
}

func TestHandleGetStats(t *testing.T) {
	a := newTestApi(&testCatalog{
		statsFunc: func(ctx context.Context) models.Stats {
			return models.Stats{TotalBooks: 12, AvailableBooks: 10, ActiveBorrows: 2}
		},
	}, &testSessions{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rr := httptest.NewRecorder()

	a.HandleGetStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rr.Code)
	}

	var stats models.Stats

	if err := json.Unmarshal(rr.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}

	if stats.TotalBooks != 12 || stats.ActiveBorrows != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
