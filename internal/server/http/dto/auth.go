package dto

// AuthRequest describes login/password payload.
type AuthRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ErrorResponse carries a client facing error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
