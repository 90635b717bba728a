package models

// User is a credential store entry. PasswordHash holds a bcrypt hash; the
// remaining fields are profile data returned by /users/me.
type User struct {
	UserName     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	FullName     string `json:"full_name,omitempty"`
	Email        string `json:"email,omitempty"`
}

// Identity is what a verified access token resolves to.
type Identity struct {
	UserName string
}
