package session

import (
	"github.com/ZenKakzi/scholar-book-flow/internal/models"
)

// defaultRoster is the static user list credentials are checked against.
// Passwords are plaintext on purpose: there is no real account system, the
// roster simulates one.
func defaultRoster() []models.User {
	return []models.User{
		{
			Id:       "1",
			Username: "student1",
			Email:    "student1@example.com",
			Password: "password123",
			Role:     models.RoleStudent,
			Name:     "John Smith",
		},
		{
			Id:       "2",
			Username: "admin1",
			Email:    "admin1@example.com",
			Password: "admin123",
			Role:     models.RoleAdmin,
			Name:     "Sarah Johnson",
		},
		{
			Id:       "3",
			Username: "student2",
			Email:    "student2@example.com",
			Password: "password123",
			Role:     models.RoleStudent,
			Name:     "Emily Davis",
		},
	}
}
