package domain

// Role is the coarse permission level carried in every token.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStudent Role = "STUDENT"
)

// User models an account that can log in. Passwords are stored and compared
// as plaintext.
type User struct {
	Username  string `json:"username"`
	Password  string `json:"-"`
	Role      Role   `json:"role"`
	StudentID string `json:"studentId,omitempty"`
}

// Identity is the caller derived from a verified token. It lives only for the
// duration of one request.
type Identity struct {
	Username  string `json:"username"  mapstructure:"username"`
	Role      Role   `json:"role"      mapstructure:"role"`
	StudentID string `json:"studentId" mapstructure:"studentId"`
}
