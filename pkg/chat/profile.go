package chat

// UserProfile is the local user's display identity.
type UserProfile struct {
	Name             string `json:"name"`
	TeachingInterest string `json:"teachingInterest"`
}
