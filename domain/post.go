package domain

// Post visibility values accepted by the posts service.
const (
	VisibilityPublic      = "PUBLIC"
	VisibilityConnections = "CONNECTIONS"
)

// Post mirrors the posts service DTO.
type Post struct {
	ID             int64   `json:"id"`
	Content        string  `json:"content"`
	AuthorID       int64   `json:"userId"`
	AuthorName     string  `json:"authorName,omitempty"`
	CreatedAt      Time    `json:"createdAt"`
	LikedByUserIDs []int64 `json:"likedByUserIds,omitempty"`
}

// LikesCount returns the number of users that liked the post.
func (p *Post) LikesCount() int {
	if p == nil {
		return 0
	}
	return len(p.LikedByUserIDs)
}

// LikedBy reports whether the given user id appears in the post's like list.
func (p *Post) LikedBy(userID int64) bool {
	if p == nil {
		return false
	}
	for _, id := range p.LikedByUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
