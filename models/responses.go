package models

// MessageResponse is the body of every error response and of the
// message-only success responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupResponse is returned with HTTP 201 after a successful signup.
// The embedded user never carries the password hash.
type SignupResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// LoginUser is the short user view returned on login.
type LoginUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse is returned with HTTP 200 after a successful login.
type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

// EntryCreatedResponse is returned with HTTP 201 after an entry is saved.
type EntryCreatedResponse struct {
	Message string `json:"message"`
	Entry   Entry  `json:"entry"`
}
