package dto

// AIQueryRequest defines the payload for the assistant endpoint.
type AIQueryRequest struct {
	Question string `json:"question" binding:"required"`
}

// AIQueryResponse carries the assistant's answer.
type AIQueryResponse struct {
	Answer string `json:"answer"`
}
