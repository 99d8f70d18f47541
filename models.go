package main

// R2Config carries the optional object storage settings. All four fields
// come from the environment together.
type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

// ReviewResult is the structured verdict of a one-shot resume review,
// decoded from the agent's JSON reply.
type ReviewResult struct {
	Strengths   []string `json:"strengths"`
	WeakAreas   []string `json:"weak_areas"`
	Suggestions []string `json:"suggestions"`
	Summary     string   `json:"summary"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

type fetchObjectRequest struct {
	Key string `json:"key"`
}
