package dto

// MessageResponse is returned by endpoints that have nothing else to say.
type MessageResponse struct {
	Message string `json:"message"`
}

type CountResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}
