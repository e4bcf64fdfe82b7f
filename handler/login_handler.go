package handler

import (
	"time"

	"main/config"
	"main/dto"
	"main/middleware"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
)

// LoginHandler performs the static credential check and issues a token for
// one of the configured identities. There is no per-user password; the app
// serves a small trusted user set behind one shared credential.
func LoginHandler(c *gin.Context, owners config.OwnerSet) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	username := utils.GetEnvAsString("APP_USERNAME", "fagperson")
	passwordHash := utils.GetEnvAsString("APP_PASSWORD_HASH", "")

	if req.Username != username || passwordHash == "" ||
		!services.ComparePasswords(passwordHash, req.Password) {
		middleware.TrackAuthAttempt("failure")
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	// Default to the first configured identity when none is requested.
	userID := req.UserID
	if userID == "" {
		userID = owners.Users()[0].ID
	}
	if !owners.Contains(userID) {
		middleware.TrackAuthAttempt("failure")
		utils.BadRequest(c, "Unknown user")
		return
	}

	token, err := services.GenerateJWT(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	if cache := services.GlobalNoteCache; cache != nil {
		ua := useragent.Parse(c.GetHeader("User-Agent"))
		_ = cache.RecordLogin(c, services.LoginRecord{
			UserID:   userID,
			Device:   ua.Name + " on " + ua.OS,
			LoggedAt: time.Now(),
		})
	}

	var user dto.UserResponse
	for _, u := range owners.Users() {
		if u.ID == userID {
			user = dto.UserResponse{ID: u.ID, Name: u.Name, Initials: u.Initials}
			break
		}
	}

	middleware.TrackAuthAttempt("success")
	utils.Success(c, gin.H{
		"token": token,
		"user":  user,
	})
}

// GetUsersHandler lists the fixed identities for the share picker.
func GetUsersHandler(c *gin.Context, owners config.OwnerSet) {
	utils.Success(c, dto.ToUserResponses(owners.Users()))
}
