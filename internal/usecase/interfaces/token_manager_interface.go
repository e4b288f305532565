package interfaces

import "big_studio/internal/domain/entities"

// ITokenManager issues and verifies the bearer tokens that carry the
// authenticated user between requests.
type ITokenManager interface {
	Issue(user entities.User) (string, error)
	Verify(token string) (entities.User, error)
}
