package usersrepo

import "time"

// User is a persisted account. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

// CreateUser contains fields for creating a new user.
type CreateUser struct {
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}
