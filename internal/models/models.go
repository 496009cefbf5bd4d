package models

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

const (
	StatusActive   = "active"
	StatusReturned = "returned"
)

// User is a roster entry. The roster is static: the application never
// creates, edits or deletes users.
type User struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// Book is a catalogue entry. Available is derived from the borrow ledger
// and AdminUnavailable on every read; the stored value is never trusted.
type Book struct {
	Id               string `json:"id"`
	Title            string `json:"title"`
	Author           string `json:"author"`
	Publisher        string `json:"publisher"`
	Isbn             string `json:"isbn"`
	CoverImage       string `json:"coverImage"`
	AdminUnavailable bool   `json:"adminUnavailable"`
	Available        bool   `json:"available"`
}

// BorrowRecord is a ledger entry. StudentName, StudentEmail and BookTitle
// are snapshots taken at borrow time, not live references.
type BorrowRecord struct {
	Id           string `json:"id"`
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	BookId       string `json:"bookId"`
	BookTitle    string `json:"bookTitle"`
	BorrowedDate string `json:"borrowedDate"`
	DueDate      string `json:"dueDate"`
	Status       string `json:"status"`
}

// Stats are the counters shown on the dashboards.
type Stats struct {
	TotalBooks     int `json:"total_books"`
	AvailableBooks int `json:"available_books"`
	ActiveBorrows  int `json:"active_borrows"`
	ReturnedBooks  int `json:"returned_books"`
}

type HandleLoginParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type HandleLoginResponse struct {
	User     *User  `json:"user"`
	Redirect string `json:"redirect"`
}

type HandleAddBookParams struct {
	Title            string `json:"title" validate:"required"`
	Author           string `json:"author" validate:"required"`
	Publisher        string `json:"publisher"`
	Isbn             string `json:"isbn"`
	CoverImage       string `json:"coverImage"`
	AdminUnavailable bool   `json:"adminUnavailable"`
}

type HandleUpdateBookParams struct {
	Title            string `json:"title" validate:"required"`
	Author           string `json:"author" validate:"required"`
	Publisher        string `json:"publisher"`
	Isbn             string `json:"isbn"`
	CoverImage       string `json:"coverImage"`
	AdminUnavailable bool   `json:"adminUnavailable"`
}

type HandleUpsertRecordParams struct {
	Id           string `json:"id"`
	StudentName  string `json:"studentName" validate:"required"`
	StudentEmail string `json:"studentEmail" validate:"required,email"`
	BookId       string `json:"bookId" validate:"required"`
	BorrowedDate string `json:"borrowedDate"`
	DueDate      string `json:"dueDate"`
	Status       string `json:"status" validate:"required,oneof=active returned"`
}

type HandleGetBooksResponse struct {
	Books []Book `json:"books"`
}

type HandleGetRecordsResponse struct {
	Records []BorrowRecord `json:"records"`
}

type HandleBorrowResponse struct {
	Record *BorrowRecord `json:"record"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
