package models

// Pagination describes the position of a result page within the full
// matching set. Pages is ceil(Total/limit); a page past the end yields
// an empty result set with Total still accurate.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// PromptPage is the envelope returned by prompt listing endpoints.
type PromptPage struct {
	Prompts    []Prompt   `json:"prompts"`
	Pagination Pagination `json:"pagination"`
}

// AuthResponse is returned by register and login: the signed bearer
// token plus the public view of the account.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// VoteResponse is returned after a successful vote.
type VoteResponse struct {
	Votes int `json:"votes"`
}

// HealthResponse reports process and storage health.
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Database    string `json:"database"`
	Environment string `json:"environment"`
}
