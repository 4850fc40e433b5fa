package edges

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/chonost/manuscript-os/pkg/apperror"
)

// validateStrength rejects weights outside [0, 1] and non-finite values,
// which would otherwise round-trip through JSON as garbage.
func validateStrength(v float64) *apperror.Error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return apperror.NewBadRequest("strength must be a finite number")
	}
	if v < 0.0 || v > 1.0 {
		return apperror.NewBadRequest("strength must be between 0.0 and 1.0")
	}
	return nil
}

func validateLabel(label *string) *apperror.Error {
	if label != nil && utf8.RuneCountInString(*label) > LabelMaxLen {
		return apperror.NewBadRequest(fmt.Sprintf("label must be at most %d characters", LabelMaxLen))
	}
	return nil
}

// CreateRequest is the request body for creating an edge.
type CreateRequest struct {
	SourceID   string         `json:"source_id"`
	TargetID   string         `json:"target_id"`
	Type       string         `json:"type"`
	Label      *string        `json:"label"`
	Strength   *float64       `json:"strength"`
	IsExplicit *bool          `json:"is_explicit"`
	Manifest   map[string]any `json:"manifest"`
}

// CreatableFields lists the attributes the create contract accepts.
var CreatableFields = []string{
	"source_id", "target_id", "type", "label", "strength", "is_explicit", "manifest",
}

// Validate checks the create contract and returns the parsed edge type.
func (r *CreateRequest) Validate() (EdgeType, *apperror.Error) {
	if r.SourceID == "" {
		return "", apperror.NewBadRequest("source_id is required")
	}
	if r.TargetID == "" {
		return "", apperror.NewBadRequest("target_id is required")
	}
	edgeType, err := ParseEdgeType(r.Type)
	if err != nil {
		return "", apperror.NewBadRequest(err.Error())
	}
	if r.Strength != nil {
		if appErr := validateStrength(*r.Strength); appErr != nil {
			return "", appErr
		}
	}
	if appErr := validateLabel(r.Label); appErr != nil {
		return "", appErr
	}
	return edgeType, nil
}

// UpdateRequest is the request body for updating an edge. Only label,
// strength and manifest may change; endpoints, type and explicitness are
// fixed at creation.
type UpdateRequest struct {
	Label    *string        `json:"label"`
	Strength *float64       `json:"strength"`
	Manifest map[string]any `json:"manifest"`
}

// UpdatableFields lists the attributes the update contract may touch.
var UpdatableFields = []string{"label", "strength", "manifest"}

// Validate checks the update contract.
func (r *UpdateRequest) Validate() *apperror.Error {
	if r.Strength != nil {
		if appErr := validateStrength(*r.Strength); appErr != nil {
			return appErr
		}
	}
	return validateLabel(r.Label)
}

// ListParams defines parameters for listing edges. Filters are AND-combined.
type ListParams struct {
	SourceID string
	TargetID string
	Type     string
	Limit    int
	Offset   int
}
