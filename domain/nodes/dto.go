package nodes

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/chonost/manuscript-os/pkg/apperror"
)

// CreateRequest is the request body for creating a node.
type CreateRequest struct {
	Title        string         `json:"title"`
	Content      *string        `json:"content"`
	Type         string         `json:"type"`
	Manifest     map[string]any `json:"manifest"`
	ManuscriptID *string        `json:"manuscript_id"`
}

// CreatableFields lists the attributes the create contract accepts.
var CreatableFields = []string{
	"title", "content", "type", "manifest", "manuscript_id",
}

// Validate checks the create contract and returns the parsed node type.
func (r *CreateRequest) Validate() (NodeType, *apperror.Error) {
	if strings.TrimSpace(r.Title) == "" {
		return "", apperror.NewBadRequest("title must not be blank")
	}
	if utf8.RuneCountInString(r.Title) > TitleMaxLen {
		return "", apperror.NewBadRequest(fmt.Sprintf("title must be at most %d characters", TitleMaxLen))
	}
	nodeType, err := ParseNodeType(r.Type)
	if err != nil {
		return "", apperror.NewBadRequest(err.Error())
	}
	return nodeType, nil
}

// UpdateRequest is the request body for updating a node. Only title,
// content and manifest may change; type and manuscript_id are fixed at
// creation.
type UpdateRequest struct {
	Title    *string        `json:"title"`
	Content  *string        `json:"content"`
	Manifest map[string]any `json:"manifest"`
}

// UpdatableFields lists the attributes the update contract may touch.
var UpdatableFields = []string{"title", "content", "manifest"}

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

// ListParams defines parameters for listing nodes. Filters are AND-combined.
type ListParams struct {
	Type         string
	ManuscriptID string
	Limit        int
	Offset       int
}
