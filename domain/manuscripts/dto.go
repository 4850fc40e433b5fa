package manuscripts

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/chonost/manuscript-os/pkg/apperror"
)

// CreateRequest is the request body for creating a manuscript.
type CreateRequest struct {
	Title    string         `json:"title"`
	Content  *string        `json:"content"`
	FilePath *string        `json:"file_path"`
	FileType *string        `json:"file_type"`
	FileSize *string        `json:"file_size"`
	Manifest map[string]any `json:"manifest"`
	UserID   *string        `json:"user_id"`
}

// Validate checks the create contract: title required, bounded length.
func (r *CreateRequest) Validate() *apperror.Error {
	if strings.TrimSpace(r.Title) == "" {
		return apperror.NewBadRequest("title must not be blank")
	}
	if utf8.RuneCountInString(r.Title) > TitleMaxLen {
		return apperror.NewBadRequest(fmt.Sprintf("title must be at most %d characters", TitleMaxLen))
	}
	return nil
}

// UpdateRequest is the request body for updating a manuscript. All fields
// are optional; absent fields are left untouched.
type UpdateRequest struct {
	Title      *string        `json:"title"`
	Content    *string        `json:"content"`
	FilePath   *string        `json:"file_path"`
	FileType   *string        `json:"file_type"`
	FileSize   *string        `json:"file_size"`
	IsArchived *bool          `json:"is_archived"`
	Manifest   map[string]any `json:"manifest"`
}

// CreatableFields lists the attributes the create contract accepts.
var CreatableFields = []string{
	"title", "content", "file_path", "file_type", "file_size", "manifest", "user_id",
}

// UpdatableFields lists the attributes the update contract may touch.
// Anything else in the body is rejected.
var UpdatableFields = []string{
	"title", "content", "file_path", "file_type", "file_size", "is_archived", "manifest",
}

// Validate checks the update contract.
func (r *UpdateRequest) Validate() *apperror.Error {
	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			return apperror.NewBadRequest("title must not be blank")
		}
		if utf8.RuneCountInString(*r.Title) > TitleMaxLen {
			return apperror.NewBadRequest(fmt.Sprintf("title must be at most %d characters", TitleMaxLen))
		}
	}
	return nil
}

// ListParams defines parameters for listing manuscripts.
type ListParams struct {
	IncludeArchived bool
	UserID          string
	Limit           int
	Offset          int
}
