package constants

// Controller registry keys.
const (
	Note = iota
	Slide
	GitHub
	GitLab
	History
	Auth
	Status
)
