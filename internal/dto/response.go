package dto

// Envelope is the uniform JSON wrapper used on every response:
// {success, data?, message?, error?}.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMessage builds a success envelope with a message and no data.
func OKMessage(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// Fail builds an error envelope.
func Fail(message, errCode string) Envelope {
	return Envelope{Success: false, Message: message, Error: errCode}
}
