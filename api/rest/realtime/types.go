package realtime

type EphemeralKeyRequest struct {
	// topic text appended to the tutor prompt; may be empty
	Instructions string `json:"instructions"`
}
