package api

// MessageSummary is one entry in the inbox listing as the backend returns it.
// Identifiers are opaque and unique within a session; the slice order received
// from the backend is the display order.
type MessageSummary struct {
	ID      string `json:"id"`
	Snippet string `json:"snippet"`
	Sender  string `json:"sender"`
	Starred bool   `json:"starred"`
	Spam    bool   `json:"spam"`
}

// MessageDetail is the full content of a single message, fetched on demand.
// Body is raw HTML exactly as the backend stored it; conversion to terminal
// text happens in the render package, never here.
type MessageDetail struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Sender  string `json:"sender"`
	Date    string `json:"date"`
	Body    string `json:"body"`
}

// sessionResponse is the body of GET /session. The backend dumps its whole
// session dict, so a missing credentials key decodes to false.
type sessionResponse struct {
	Credentials bool `json:"credentials"`
}

// sendRequest is the JSON body of POST /send.
type sendRequest struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// sendResponse carries an error string only when the backend rejected the
// message (a business error, distinct from transport failure).
type sendResponse struct {
	Error string `json:"error"`
}

// confirmResponse is the body of spam/unspam calls.
type confirmResponse struct {
	Message string `json:"message"`
}
