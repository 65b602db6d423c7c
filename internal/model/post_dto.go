package model

// PostDTO is the transfer shape for posts. It mirrors Post plus the owner's
// display name, resolved at read time and never persisted. On inbound requests
// the delivery layer overwrites UserEmail with the authenticated caller before
// the DTO reaches the service.
type PostDTO struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Images    []string `json:"images"`
	IsPublic  bool     `json:"isPublic"`
	UserEmail string   `json:"userEmail"`
	Username  string   `json:"username"`
}

func PostToDTO(post *Post, username string) *PostDTO {
	return &PostDTO{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Images:    post.Images,
		IsPublic:  post.IsPublic,
		UserEmail: post.UserEmail,
		Username:  username,
	}
}

// DTOToPost maps an inbound DTO to a new Post entity. The ID is left unset,
// the store assigns it on insert.
func DTOToPost(dto *PostDTO) *Post {
	return &Post{
		Title:     dto.Title,
		Content:   dto.Content,
		Images:    dto.Images,
		IsPublic:  dto.IsPublic,
		UserEmail: dto.UserEmail,
	}
}
