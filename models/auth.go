package models

// Credentials is the request body for both /login and /register.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by /login and /register on success.
type AuthResponse struct {
	Auth  bool   `json:"auth"`
	Token string `json:"token"`
}

// TodoRequest carries the text for todo create and update.
type TodoRequest struct {
	Text string `json:"text"`
}
