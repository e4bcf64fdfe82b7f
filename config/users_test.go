package config

import (
	"os"
	"testing"

	"main/model"
)

func TestLoadOwnerSet(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		os.Unsetenv("VALID_USERS")
		set := LoadOwnerSet()

		users := set.Users()
		if len(users) != 3 {
			t.Fatalf("got %d users, want 3", len(users))
		}
		if users[0].ID != "1" || users[0].Name != "Fagperson" || users[0].Initials != "FP" {
			t.Errorf("first user = %+v", users[0])
		}
		for _, id := range []string{"1", "2", "3"} {
			if !set.Contains(id) {
				t.Errorf("Contains(%q) = false", id)
			}
		}
		if set.Contains("4") || set.Contains("") {
			t.Error("unknown ids accepted")
		}
	})

	t.Run("FromEnvironment", func(t *testing.T) {
		os.Setenv("VALID_USERS", "a:Alice:AL, b:Bob")
		defer os.Unsetenv("VALID_USERS")

		set := LoadOwnerSet()
		users := set.Users()
		if len(users) != 2 {
			t.Fatalf("got %d users, want 2", len(users))
		}
		if users[0].ID != "a" || users[0].Name != "Alice" || users[0].Initials != "AL" {
			t.Errorf("first user = %+v", users[0])
		}
		if users[1].ID != "b" || users[1].Name != "Bob" || users[1].Initials != "" {
			t.Errorf("second user = %+v", users[1])
		}
	})
}

func TestOwnerSetUsersIsACopy(t *testing.T) {
	set := NewOwnerSet(model.User{ID: "1", Name: "Fagperson"})
	users := set.Users()
	users[0].Name = "mutated"
	if set.Users()[0].Name != "Fagperson" {
		t.Error("Users() exposes internal slice")
	}
}
