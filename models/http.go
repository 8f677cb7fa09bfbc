package models

// LoginRequest is the credential payload accepted by the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the successful login/registration response body.
// TokenType is always "bearer".
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// APIError is the uniform error response body. Code is a stable
// machine-readable category; Message is a human-readable explanation that
// never leaks store implementation details.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Message is a generic informational response body.
type Message struct {
	Message string `json:"message"`
}
