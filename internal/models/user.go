package models

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the stored account. Password holds the bcrypt hash and is only
// ever written to storage; clients get PublicUser.
type User struct {
	Base     `bson:",inline"`
	Email    string `bson:"email" json:"email"`
	Name     string `bson:"name" json:"name"`
	Password string `bson:"password" json:"password"`
	Role     Role   `bson:"role" json:"role"`
}

func (u User) WithMeta(b Base) User {
	u.Base = b
	return u
}

type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
