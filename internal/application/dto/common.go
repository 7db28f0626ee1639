package dto

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
