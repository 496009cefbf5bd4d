package catalog

import (
	"github.com/ZenKakzi/scholar-book-flow/internal/models"
)

// seedBooks is the built-in catalogue used on first run and whenever the
// persisted book list cannot be restored.
func seedBooks() []models.Book {
	return []models.Book{
		{
			Id:         "1",
			Title:      "Harry Potter and the Philosopher's Stone",
			Author:     "J.K. Rowling",
			Publisher:  "Bloomsbury",
			Isbn:       "978-0-7475-3269-9",
			CoverImage: "/images/harry-potter.png",
		},
		{
			Id:         "2",
			Title:      "The Origin of Species",
			Author:     "Charles Darwin",
			Publisher:  "John Murray",
			Isbn:       "978-0-6848-3728-0",
			CoverImage: "/images/species.png",
		},
		{
			Id:         "3",
			Title:      "Last Words",
			Author:     "George Carlin",
			Publisher:  "Free Press",
			Isbn:       "978-1-4391-7295-7",
			CoverImage: "/images/last-words.png",
		},
		{
			Id:         "4",
			Title:      "The Bright Edge of the World",
			Author:     "Eowyn Ivey",
			Publisher:  "Little, Brown and Company",
			Isbn:       "978-0-316-24285-1",
			CoverImage: "/images/The-Bright-Edge-of-the-World.png",
		},
		{
			Id:         "5",
			Title:      "The Shining",
			Author:     "Stephen King",
			Publisher:  "Doubleday",
			Isbn:       "978-0-385-12167-5",
			CoverImage: "/images/the-shining.png",
		},
		{
			Id:         "6",
			Title:      "It",
			Author:     "Stephen King",
			Publisher:  "Viking",
			Isbn:       "978-0-670-81302-5",
			CoverImage: "/images/it.png",
		},
		{
			Id:         "7",
			Title:      "The Stand",
			Author:     "Stephen King",
			Publisher:  "Doubleday",
			Isbn:       "978-0-385-12168-2",
			CoverImage: "/images/the-stand.png",
		},
		{
			Id:         "8",
			Title:      "Pet Sematary",
			Author:     "Stephen King",
			Publisher:  "Doubleday",
			Isbn:       "978-0-385-12874-2",
			CoverImage: "/images/pet-sematary.png",
		},
		{
			Id:         "9",
			Title:      "Carrie",
			Author:     "Stephen King",
			Publisher:  "Doubleday",
			Isbn:       "978-0-385-08695-0",
			CoverImage: "/images/carrie.png",
		},
		{
			Id:         "10",
			Title:      "Misery",
			Author:     "Stephen King",
			Publisher:  "Viking",
			Isbn:       "978-0-670-81364-3",
			CoverImage: "/images/misery.png",
		},
		{
			Id:         "11",
			Title:      "The Green Mile",
			Author:     "Stephen King",
			Publisher:  "Signet Books",
			Isbn:       "978-0-451-19336-4",
			CoverImage: "/images/the-green-mile.png",
		},
		{
			Id:         "12",
			Title:      "11/22/63",
			Author:     "Stephen King",
			Publisher:  "Scribner",
			Isbn:       "978-1-4516-2728-2",
			CoverImage: "/images/112263.png",
		},
	}
}

// seedRecords is the built-in ledger: empty, so a fresh install starts with
// every book available.
func seedRecords() []models.BorrowRecord {
	return []models.BorrowRecord{}
}
