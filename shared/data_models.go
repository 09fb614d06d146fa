package shared

import "time"

type Reaction string

const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
	ReactionNone    Reaction = ""
)

func (r Reaction) Valid() bool {
	return r == ReactionLike || r == ReactionDislike
}

type Post struct {
	Id            int64     `json:"id"`
	Author        string    `json:"author"`
	AuthorId      int64     `json:"author_id,omitempty"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	LikesCount    int       `json:"likes_count"`
	DislikesCount int       `json:"dislikes_count"`
	UserReaction  Reaction  `json:"user_reaction"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Profile struct {
	Id           int64     `json:"id"`
	Username     string    `json:"username"`
	UserEmail    string    `json:"user_email,omitempty"`
	Bio          string    `json:"bio"`
	Location     string    `json:"location"`
	Phone        string    `json:"phone"`
	ProfileImage string    `json:"profile_image,omitempty"`
	DateOfBirth  string    `json:"date_of_birth,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
