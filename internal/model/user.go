package model

// User is an immutable identity shared by value across products,
// transactions and chat messages.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}
