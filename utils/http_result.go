package utils

// HttpResult is the reply envelope shared by every endpoint.
type HttpResult struct {
	Code  int         `json:"code"`
	Msg   string      `json:"msg"`
	Data  interface{} `json:"data,omitempty"`
	Total int64       `json:"total,omitempty"`
}
