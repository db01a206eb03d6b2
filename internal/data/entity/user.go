package entity

type User struct {
	Base
	Name         string  `db:"name"`
	Username     string  `db:"username"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password"`
	AvatarURL    *string `db:"avatar_url"`
}
