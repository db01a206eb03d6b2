package response

import (
	"time"

	"cinerate/internal/data/entity"
)

// ProfileResponse is the public view of a user. Email is only filled for
// the profile owner.
type ProfileResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ReviewCount int64     `json:"review_count"`
}

func ProfileToResponse(user *entity.User, reviewCount int64, includeEmail bool) ProfileResponse {
	resp := ProfileResponse{
		ID:          user.ID.String(),
		Name:        user.Name,
		Username:    user.Username,
		AvatarURL:   user.AvatarURL,
		CreatedAt:   user.CreatedAt,
		ReviewCount: reviewCount,
	}

	if includeEmail {
		resp.Email = user.Email
	}

	return resp
}
