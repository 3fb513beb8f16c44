package models

const (
	RoleTeacher = "TEACHER"
	RoleStudent = "STUDENT"
)

type User struct {
	Base
	Name  string `json:"name" gorm:"not null"`
	Email string `json:"email" gorm:"unique;not null"`
	Role  string `json:"role" gorm:"not null"` // TEACHER, STUDENT
}

// IsValidRole reports whether role is one of the roles a user can be created with.
func IsValidRole(role string) bool {
	return role == RoleTeacher || role == RoleStudent
}
