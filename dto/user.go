package dto

import "main/model"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserID   string `json:"user_id"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
}

func ToUserResponses(users []model.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = UserResponse{ID: u.ID, Name: u.Name, Initials: u.Initials}
	}
	return responses
}
