package serverutils

// ErrorBody matches the { "error": { "code", "message" } } contract the
// front-end consumes.
type ErrorBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

func ErrorResponse(code, message string) ErrorEnvelope {
	return ErrorEnvelope{
		Success: false,
		Error:   ErrorBody{Code: code, Message: message},
	}
}
