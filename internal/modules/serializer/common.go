package serializer

// ErrorResponse is the body shape of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Room not found"`
}

// MessageResponse is the body shape of delete confirmations.
type MessageResponse struct {
	Message string `json:"message" example:"Room deleted successfully"`
}

// URLResponse carries a pre-signed download link.
type URLResponse struct {
	URL string `json:"url"`
}

func Err(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}

func Msg(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}
