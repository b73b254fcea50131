package profile

// ProfileOutput for GET and PUT /profile
type ProfileOutput struct {
	Body Profile
}
