package model

type User struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}
