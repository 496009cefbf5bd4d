package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ZenKakzi/scholar-book-flow/internal/catalog"
	"github.com/ZenKakzi/scholar-book-flow/internal/models"
)

func (a *Api) HandleGetBooks(w http.ResponseWriter, r *http.Request) {
	respondWithSuccess(w, http.StatusOK, &models.HandleGetBooksResponse{
		Books: a.catalog.Books(r.Context()),
	})
}

func (a *Api) HandleSearchBooks(w http.ResponseWriter, r *http.Request) {
	books := a.catalog.Search(r.Context(), r.URL.Query().Get("q"))

	respondWithSuccess(w, http.StatusOK, &models.HandleGetBooksResponse{Books: books})
}

func (a *Api) HandleGetBook(w http.ResponseWriter, r *http.Request) {
	book, err := a.catalog.Book(r.Context(), chi.URLParam(r, "bookId"))

	if err != nil {
		if err == catalog.ErrBookNotFound {
			a.logger.Warn(err.Error(), "service", "HandleGetBook")
			respondWithError(w, http.StatusNotFound, err)
			return
		}

		a.logger.Error(err.Error(), "service", "HandleGetBook")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusOK, book)
}

func (a *Api) HandleAddBook(w http.ResponseWriter, r *http.Request) {
	var params models.HandleAddBookParams

	if err := decodeJson(r, &params); err != nil {
		a.logger.Warn(fmt.Sprintf("error decoding json: %v", err), "service", "HandleAddBook")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("error decoding json: %v", err))
		return
	}

	if err := validate.Struct(&params); err != nil {
		a.logger.Warn(fmt.Sprintf("validation error: %v", err), "service", "HandleAddBook")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("validation error: %v", err))
		return
	}

	book, err := a.catalog.AddBook(r.Context(), models.Book{
		Title:            params.Title,
		Author:           params.Author,
		Publisher:        params.Publisher,
		Isbn:             params.Isbn,
		CoverImage:       params.CoverImage,
		AdminUnavailable: params.AdminUnavailable,
	})

	if err != nil {
		a.logger.Error(err.Error(), "service", "HandleAddBook")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	respondWithSuccess(w, http.StatusCreated, book)
}

func (a *Api) HandleUpdateBook(w http.ResponseWriter, r *http.Request) {
	var params models.HandleUpdateBookParams

	if err := decodeJson(r, &params); err != nil {
		a.logger.Warn(fmt.Sprintf("error decoding json: %v", err), "service", "HandleUpdateBook")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("error decoding json: %v", err))
		return
	}

	if err := validate.Struct(&params); err != nil {
		a.logger.Warn(fmt.Sprintf("validation error: %v", err), "service", "HandleUpdateBook")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("validation error: %v", err))
		return
	}

	err := a.catalog.UpdateBook(r.Context(), models.Book{
		Id:               chi.URLParam(r, "bookId"),
		Title:            params.Title,
		Author:           params.Author,
		Publisher:        params.Publisher,
		Isbn:             params.Isbn,
		CoverImage:       params.CoverImage,
		AdminUnavailable: params.AdminUnavailable,
	})

	if err != nil {
		if err == catalog.ErrBookNotFound {
			a.logger.Warn(err.Error(), "service", "HandleUpdateBook")
			respondWithError(w, http.StatusNotFound, err)
			return
		}

		a.logger.Error(err.Error(), "service", "HandleUpdateBook")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) HandleDeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := a.catalog.DeleteBook(r.Context(), chi.URLParam(r, "bookId")); err != nil {
		if err == catalog.ErrBookNotFound {
			a.logger.Warn(err.Error(), "service", "HandleDeleteBook")
			respondWithError(w, http.StatusNotFound, err)
			return
		}

		a.logger.Error(err.Error(), "service", "HandleDeleteBook")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleBorrowBook checks the book out to the authenticated user. The
// acting identity comes from the session, never from the request body.
func (a *Api) HandleBorrowBook(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value("user").(*models.User)

	if !ok {
		a.logger.Warn("no user on request context", "service", "HandleBorrowBook")
		respondWithError(w, http.StatusUnauthorized, fmt.Errorf("not authenticated"))
		return
	}

	record, err := a.catalog.BorrowBook(r.Context(), chi.URLParam(r, "bookId"), user.Email, user.Name)

	if err != nil {
		switch err {
		case catalog.ErrBookNotFound:
			a.logger.Warn(err.Error(), "service", "HandleBorrowBook")
			respondWithError(w, http.StatusNotFound, err)
		case catalog.ErrBookUnavailable, catalog.ErrAlreadyBorrowed:
			a.logger.Warn(err.Error(), "service", "HandleBorrowBook")
			respondWithError(w, http.StatusConflict, err)
		default:
			a.logger.Error(err.Error(), "service", "HandleBorrowBook")
			respondWithError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respondWithSuccess(w, http.StatusCreated, &models.HandleBorrowResponse{Record: record})
}

func (a *Api) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	respondWithSuccess(w, http.StatusOK, a.catalog.Stats(r.Context()))
}
