package domain

// User is a dashboard account. Password holds a bcrypt hash and is never
// serialised.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// UserInput carries registration data. Password is the plaintext secret.
type UserInput struct {
	Username string
	Password string
}
