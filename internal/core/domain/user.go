package domain

// Roles recognised by the credential-gated endpoints. Any other value is
// denied with a generic message.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account record from one of the two credential datasets. The
// password is plaintext in one dataset and obfuscated in the other; the two
// datasets are independent collections.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Summary strips the credential from a user record for inclusion in
// responses.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

// UserSummary is the password-free projection of a User returned to callers.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
