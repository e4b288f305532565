package response

import "big_studio/internal/domain/entities"

type AuthResponse struct {
	Token string        `json:"token"`
	User  entities.User `json:"user"`
}

func FromAuth(user entities.User, token string) AuthResponse {
	return AuthResponse{Token: token, User: user}
}
