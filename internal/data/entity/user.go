package entity

// User is an account row. Rows are never deleted; an account is either
// unconfirmed with a live confirm token, or confirmed with the token cleared.
type User struct {
	Base
	Email        string  `db:"email"`
	CompanyName  *string `db:"company_name"`
	Role         *string `db:"role"`
	PasswordHash string  `db:"password"`
	IsConfirmed  bool    `db:"is_confirmed"`
	ConfirmToken *string `db:"confirm_token"`
}
