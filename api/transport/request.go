package transport

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePostRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
	AuthorID   int64  `json:"authorId"`
}
