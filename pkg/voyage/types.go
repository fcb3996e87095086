package voyage

// InputType tells the API how the texts will be used in retrieval.
type InputType string

const (
	InputNone     InputType = ""
	InputQuery    InputType = "query"
	InputDocument InputType = "document"
)

// EmbedRequest is the request body for the embeddings API.
type EmbedRequest struct {
	Input     []string  `json:"input"`
	Model     string    `json:"model"`
	InputType InputType `json:"input_type,omitempty"`
}

// EmbedResponse is the response from the embeddings API.
type EmbedResponse struct {
	Object string          `json:"object"` // "list"
	Data   []EmbeddingData `json:"data"`
	Model  string          `json:"model"`
	Usage  UsageInfo       `json:"usage"`
}

// EmbeddingData contains a single embedding vector.
type EmbeddingData struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"` // Position in input array
}

// UsageInfo contains token usage statistics.
type UsageInfo struct {
	TotalTokens int `json:"total_tokens"`
}

// ErrorResponse is the error body returned by the API.
// Voyage answers either {"detail": "..."} or {"error": {"message": "..."}}.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Error  struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (e ErrorResponse) message() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}
	return e.Detail
}
