package storage

type User struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     string  `json:"role"`

	// Only filled by GetUserByUsername for the login check.
	PasswordHash string `json:"-"`
}
