package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"main/config"
	"main/model"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func setupLoginRouter(owners config.OwnerSet) *gin.Engine {
	router := gin.New()
	router.POST("/api/auth/login", func(c *gin.Context) { LoginHandler(c, owners) })
	router.GET("/api/users", func(c *gin.Context) { GetUsersHandler(c, owners) })
	return router
}

func testOwners() config.OwnerSet {
	return config.NewOwnerSet(
		model.User{ID: "1", Name: "Fagperson", Initials: "FP"},
		model.User{ID: "2", Name: "Ane", Initials: "A"},
	)
}

func TestLoginHandler(t *testing.T) {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()

	hash, err := services.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	os.Setenv("APP_USERNAME", "fagperson")
	os.Setenv("APP_PASSWORD_HASH", hash)
	defer os.Unsetenv("APP_PASSWORD_HASH")

	router := setupLoginRouter(testOwners())

	t.Run("Success", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
			"username": "fagperson",
			"password": "hunter2",
			"user_id":  "2",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var resp struct {
			Data struct {
				Token string `json:"token"`
				User  struct {
					ID   string `json:"id"`
					Name string `json:"name"`
				} `json:"user"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Data.Token == "" {
			t.Error("no token issued")
		}
		if resp.Data.User.ID != "2" || resp.Data.User.Name != "Ane" {
			t.Errorf("user = %+v", resp.Data.User)
		}
	})

	t.Run("DefaultsToFirstIdentity", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
			"username": "fagperson",
			"password": "hunter2",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var resp struct {
			Data struct {
				User struct {
					ID string `json:"id"`
				} `json:"user"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Data.User.ID != "1" {
			t.Errorf("defaulted to user %q, want 1", resp.Data.User.ID)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
			"username": "fagperson",
			"password": "wrong",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("WrongUsername", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
			"username": "intruder",
			"password": "hunter2",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("UnknownIdentity", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
			"username": "fagperson",
			"password": "hunter2",
			"user_id":  "99",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{"username": "fagperson"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})
}

func TestGetUsersHandler(t *testing.T) {
	router := setupLoginRouter(testOwners())

	w := doRequest(t, router, http.MethodGet, "/api/users", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Data []struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Initials string `json:"initials"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("got %d users, want 2", len(resp.Data))
	}
	if resp.Data[0].ID != "1" || resp.Data[0].Initials != "FP" {
		t.Errorf("first user = %+v", resp.Data[0])
	}
}
