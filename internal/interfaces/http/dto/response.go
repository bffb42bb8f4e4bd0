package dto

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Message string `json:"message" example:"Article avec l'ID 7 introuvable."`
	Code    string `json:"code" example:"ERR_NOT_FOUND"`
}

// NewErrorResponse creates an error body
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Message: message, Code: code}
}

// MessageResponse is the body of delete and other message-only responses
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a message body
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// IDRequest binds the integer id path parameter
type IDRequest struct {
	ID int `uri:"id" binding:"required,gt=0"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Database  string `json:"database" example:"ok"`
	Version   string `json:"version" example:"1.0.0"`
	GoVersion string `json:"goVersion" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}
