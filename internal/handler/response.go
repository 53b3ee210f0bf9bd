package handler

// Response is the uniform envelope carried by every endpoint. Failures reuse
// it with Success=false and no Data.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
