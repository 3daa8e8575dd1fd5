package userservice

import "strings"

// User профиль пользователя из UserService
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	UserType  string `json:"userType"`
	Specialty string `json:"specialty,omitempty"`
}

// FullName имя и фамилия через пробел
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
