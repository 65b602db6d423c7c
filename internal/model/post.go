package model

type Post struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Images    []string `json:"images"`
	IsPublic  bool     `json:"isPublic"`
	UserEmail string   `json:"userEmail"`
}
