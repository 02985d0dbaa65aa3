package authbridge

import "errors"

// RegisterInput is the body of POST /register.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterInput) Validate() error {
	if r.Username == "" || r.Email == "" || r.Password == "" {
		return errors.New("username, email and password are required")
	}
	return nil
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginInput is the body of POST /login. EmailOrUsername is matched against
// both columns.
type LoginInput struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

func (l LoginInput) Validate() error {
	if l.EmailOrUsername == "" || l.Password == "" {
		return errors.New("emailOrUsername and password are required")
	}
	return nil
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
