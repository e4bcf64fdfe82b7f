package config

import (
	"strings"

	"main/model"
	"main/utils"
)

// OwnerSet is the fixed enumeration of identities notes may belong to. It is
// loaded from the environment and injected into every layer that needs it.
type OwnerSet struct {
	users []model.User
}

// LoadOwnerSet reads VALID_USERS (comma-separated "id:name:initials" entries)
// and falls back to the reference deployment's three identities.
func LoadOwnerSet() OwnerSet {
	raw := utils.GetEnvAsString("VALID_USERS", "1:Fagperson:FP,2:Ane:A,3:Simon:S")

	var users []model.User
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if parts[0] == "" {
			continue
		}
		user := model.User{ID: parts[0]}
		if len(parts) > 1 {
			user.Name = parts[1]
		}
		if len(parts) > 2 {
			user.Initials = parts[2]
		}
		users = append(users, user)
	}
	return OwnerSet{users: users}
}

// Contains reports whether id is a valid owner identity.
func (s OwnerSet) Contains(id string) bool {
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// Users returns the configured identities in declaration order.
func (s OwnerSet) Users() []model.User {
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// NewOwnerSet builds a set from explicit users; used by tests.
func NewOwnerSet(users ...model.User) OwnerSet {
	return OwnerSet{users: users}
}
