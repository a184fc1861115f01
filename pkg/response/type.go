package response

// ErrorResp is the JSON body of every error response. The frontend reads detail.
type ErrorResp struct {
	Detail string `json:"detail"`
}
