package response

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope wraps every response body.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// Fail is used for client errors (4xx).
func Fail(msg string) Envelope {
	return Envelope{Status: StatusFail, Message: msg}
}

// Error is used for server errors (5xx).
func Error(msg string) Envelope {
	return Envelope{Status: StatusError, Message: msg}
}
