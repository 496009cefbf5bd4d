package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ZenKakzi/scholar-book-flow/internal/catalog"
	"github.com/ZenKakzi/scholar-book-flow/internal/models"
)

// HandleGetRecords returns the full ledger to an administrator and only the
// caller's own records to a student.
func (a *Api) HandleGetRecords(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value("user").(*models.User)

	if !ok {
		a.logger.Warn("no user on request context", "service", "HandleGetRecords")
		respondWithError(w, http.StatusUnauthorized, fmt.Errorf("not authenticated"))
		return
	}

	var records []models.BorrowRecord

	if user.Role == models.RoleAdmin {
		records = a.catalog.BorrowRecords(r.Context())
	} else {
		records = a.catalog.BorrowRecordsByEmail(r.Context(), user.Email)
	}

	respondWithSuccess(w, http.StatusOK, &models.HandleGetRecordsResponse{Records: records})
}

func (a *Api) HandleReturnBook(w http.ResponseWriter, r *http.Request) {
	if err := a.catalog.ReturnBook(r.Context(), chi.URLParam(r, "recordId")); err != nil {
		if err == catalog.ErrRecordNotFound {
			a.logger.Warn(err.Error(), "service", "HandleReturnBook")
			respondWithError(w, http.StatusNotFound, err)
			return
		}

		a.logger.Error(err.Error(), "service", "HandleReturnBook")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUpsertRecord is the administrator's direct ledger edit.
func (a *Api) HandleUpsertRecord(w http.ResponseWriter, r *http.Request) {
	var params models.HandleUpsertRecordParams

	if err := decodeJson(r, &params); err != nil {
		a.logger.Warn(fmt.Sprintf("error decoding json: %v", err), "service", "HandleUpsertRecord")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("error decoding json: %v", err))
		return
	}

	if err := validate.Struct(&params); err != nil {
		a.logger.Warn(fmt.Sprintf("validation error: %v", err), "service", "HandleUpsertRecord")
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("validation error: %v", err))
		return
	}

	record, err := a.catalog.UpsertBorrowRecord(r.Context(), models.BorrowRecord{
		Id:           params.Id,
		StudentName:  params.StudentName,
		StudentEmail: params.StudentEmail,
		BookId:       params.BookId,
		BorrowedDate: params.BorrowedDate,
		DueDate:      params.DueDate,
		Status:       params.Status,
	})

	if err != nil {
		switch err {
		case catalog.ErrBookNotFound:
			a.logger.Warn(err.Error(), "service", "HandleUpsertRecord")
			respondWithError(w, http.StatusNotFound, err)
		case catalog.ErrAlreadyBorrowed:
			a.logger.Warn(err.Error(), "service", "HandleUpsertRecord")
			respondWithError(w, http.StatusConflict, err)
		default:
			a.logger.Error(err.Error(), "service", "HandleUpsertRecord")
			respondWithError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respondWithSuccess(w, http.StatusOK, record)
}

func (a *Api) HandleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := a.catalog.DeleteBorrowRecord(r.Context(), chi.URLParam(r, "recordId")); err != nil {
		if err == catalog.ErrRecordNotFound {
			a.logger.Warn(err.Error(), "service", "HandleDeleteRecord")
			respondWithError(w, http.StatusNotFound, err)
			return
		}

		a.logger.Error(err.Error(), "service", "HandleDeleteRecord")
		respondWithError(w, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
