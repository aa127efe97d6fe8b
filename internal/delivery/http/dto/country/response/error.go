package response

// ErrorResponse is the body of every failed request. Details is either a
// string or a field -> message object for validation failures.
type ErrorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category"`
	Details  any    `json:"details,omitempty"`
}
