package domain

// PostedTargets - по одному флагу на площадку
type PostedTargets struct {
	X         bool `json:"x"`
	Instagram bool `json:"instagram"`
	Threads   bool `json:"threads"`
}

type PostError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PostResult - итог публикации в соцсети
type PostResult struct {
	Posted PostedTargets `json:"posted"`
	Errors []PostError   `json:"errors"`
}
