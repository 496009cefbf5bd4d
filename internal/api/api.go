package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ZenKakzi/scholar-book-flow/internal/config"
	"github.com/ZenKakzi/scholar-book-flow/internal/logger"
	"github.com/ZenKakzi/scholar-book-flow/internal/models"
)

var validate = validator.New()

// Catalog is the slice of the catalogue store the handlers consume.
type Catalog interface {
	Books(ctx context.Context) []models.Book
	Book(ctx context.Context, id string) (*models.Book, error)
	Search(ctx context.Context, query string) []models.Book
	BorrowRecords(ctx context.Context) []models.BorrowRecord
	BorrowRecordsByEmail(ctx context.Context, email string) []models.BorrowRecord
	Stats(ctx context.Context) models.Stats
	BorrowBook(ctx context.Context, bookId string, userEmail string, userName string) (*models.BorrowRecord, error)
	ReturnBook(ctx context.Context, recordId string) error
	AddBook(ctx context.Context, book models.Book) (*models.Book, error)
	UpdateBook(ctx context.Context, book models.Book) error
	DeleteBook(ctx context.Context, bookId string) error
	UpsertBorrowRecord(ctx context.Context, record models.BorrowRecord) (*models.BorrowRecord, error)
	DeleteBorrowRecord(ctx context.Context, recordId string) error
}

// Sessions is the slice of the session store the handlers consume.
type Sessions interface {
	Login(ctx context.Context, email string, password string) (*models.User, error)
	Logout(ctx context.Context) error
	UserById(id string) (*models.User, error)
}

type Api struct {
	router   *chi.Mux
	logger   logger.Logger
	catalog  Catalog
	sessions Sessions
	config   *config.Config
}

func New(
	router *chi.Mux,
	logger logger.Logger,
	catalog Catalog,
	sessions Sessions,
	config *config.Config,
) *Api {
	return &Api{
		router:   router,
		logger:   logger,
		catalog:  catalog,
		sessions: sessions,
		config:   config,
	}
}

func (a *Api) RegisterRoutes() {
	a.router.Route("/api/v1", func(r chi.Router) {
		r.Use(a.LoggingMiddleware)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", a.HandleLogin)
			r.Post("/logout", a.HandleLogout)
		})

		r.Group(func(r chi.Router) {
			r.Use(a.Authenticate)

			r.Route("/books", func(r chi.Router) {
				r.Get("/", a.HandleGetBooks)
				r.Get("/search", a.HandleSearchBooks)
				r.With(a.RequireRole(models.RoleAdmin)).Post("/", a.HandleAddBook)

				r.Route("/{bookId}", func(r chi.Router) {
					r.Get("/", a.HandleGetBook)
					r.With(a.RequireRole(models.RoleAdmin)).Put("/", a.HandleUpdateBook)
					r.With(a.RequireRole(models.RoleAdmin)).Delete("/", a.HandleDeleteBook)
					r.Post("/borrow", a.HandleBorrowBook)
				})
			})

			r.Route("/records", func(r chi.Router) {
				r.Get("/", a.HandleGetRecords)
				r.With(a.RequireRole(models.RoleAdmin)).Post("/", a.HandleUpsertRecord)
				r.Post("/{recordId}/return", a.HandleReturnBook)
				r.With(a.RequireRole(models.RoleAdmin)).Delete("/{recordId}", a.HandleDeleteRecord)
			})

			r.Get("/stats", a.HandleGetStats)
		})
	})
}
