package lib

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"socialnet-cli/shared"
)

const MaxImageSize = 5 * 1024 * 1024
const MaxDescriptionLength = 1000

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// ValidateImage applies the server's upload rules locally so a bad file is
// caught before it is sent.
func ValidateImage(field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return shared.NewValidationError(field, fmt.Sprintf("Couldn't open image: %v", err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return shared.NewValidationError(field, fmt.Sprintf("Couldn't read image: %v", err))
	}
	if info.IsDir() {
		return shared.NewValidationError(field, fmt.Sprintf("%s is a directory", path))
	}
	if info.Size() > MaxImageSize {
		return shared.NewValidationError(field, "Image too large. Max size is 5 MB.")
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return shared.NewValidationError(field, fmt.Sprintf("Couldn't read image: %v", err))
	}

	if !allowedImageTypes[http.DetectContentType(head[:n])] {
		return shared.NewValidationError(field, "Unsupported image type. Allowed: JPEG, PNG.")
	}

	return nil
}

func ValidateCreatePost(req shared.CreatePostRequest) error {
	if strings.TrimSpace(req.ImagePath) == "" {
		return shared.NewValidationError("image", "Please select an image.")
	}
	if utf8.RuneCountInString(req.Description) > MaxDescriptionLength {
		return shared.NewValidationError("description", fmt.Sprintf("Description is limited to %d characters.", MaxDescriptionLength))
	}
	return ValidateImage("image", req.ImagePath)
}

func ValidateProfileEdits(edits shared.ProfileEdits) error {
	if strings.TrimSpace(edits.Username) == "" {
		return shared.NewValidationError("username", "Username is required.")
	}
	if edits.DateOfBirth != "" {
		if _, err := time.Parse(time.DateOnly, edits.DateOfBirth); err != nil {
			return shared.NewValidationError("date_of_birth", "Date of birth must be formatted as YYYY-MM-DD.")
		}
	}
	if edits.ProfileImagePath != "" {
		return ValidateImage("profile_image", edits.ProfileImagePath)
	}
	return nil
}
