package model

// User is one of the fixed identities notes belong to. The valid set is
// injected through config, never hardcoded in the core.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
}
