package models

// User is a registered account. The name is the natural key: messages
// reference it by value and the login flow matches on it exactly.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
}
