package shared

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by both login and signup.
type SessionResponse struct {
	Message string `json:"message,omitempty"`
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (r *SessionResponse) Session() Session {
	return Session{AccessToken: r.Access, RefreshToken: r.Refresh}
}

type ReactionRequest struct {
	Reaction Reaction `json:"reaction"`
}

type CreatePostRequest struct {
	ImagePath   string
	Description string
}

// ProfileEdits is a partial profile update. DateOfBirth and ProfileImagePath
// are only sent when non-empty.
type ProfileEdits struct {
	Username         string
	Bio              string
	Location         string
	Phone            string
	DateOfBirth      string
	ProfileImagePath string
}

// EditsFromProfile seeds an edit form with the current profile values.
func EditsFromProfile(p *Profile) ProfileEdits {
	if p == nil {
		return ProfileEdits{}
	}
	return ProfileEdits{
		Username:    p.Username,
		Bio:         p.Bio,
		Location:    p.Location,
		Phone:       p.Phone,
		DateOfBirth: p.DateOfBirth,
	}
}
