package edges

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// EdgeType classifies a directed relationship between two nodes. The set
// is closed; adding a variant is a schema change.
type EdgeType string

const (
	TypeRelatedTo     EdgeType = "related_to"
	TypePartOf        EdgeType = "part_of"
	TypeLeadsTo       EdgeType = "leads_to"
	TypeConflictsWith EdgeType = "conflicts_with"
	TypeSupports      EdgeType = "supports"
	TypeLocationOf    EdgeType = "location_of"
)

// EdgeTypes is the canonical registry of edge kinds.
var EdgeTypes = []EdgeType{
	TypeRelatedTo, TypePartOf, TypeLeadsTo, TypeConflictsWith, TypeSupports, TypeLocationOf,
}

// ParseEdgeType validates a wire token. Matching is case sensitive.
func ParseEdgeType(raw string) (EdgeType, error) {
	for _, t := range EdgeTypes {
		if raw == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown edge type %q", raw)
}

// Edge is a typed, weighted, directed relationship between two nodes.
// Strength is an opaque weight in [0, 1]. IsExplicit marks human-authored
// edges and is fixed at creation; machine-inferred edges carry false.
// Self-edges and parallel edges of the same type are both allowed.
type Edge struct {
	bun.BaseModel `bun:"table:edges,alias:e"`

	ID         string         `bun:"id,pk" json:"id"`
	SourceID   string         `bun:"source_id,notnull" json:"source_id"`
	TargetID   string         `bun:"target_id,notnull" json:"target_id"`
	Type       EdgeType       `bun:"type,notnull" json:"type"`
	Label      *string        `bun:"label" json:"label"`
	Strength   float64        `bun:"strength,notnull,default:1.0" json:"strength"`
	IsExplicit bool           `bun:"is_explicit,notnull,default:true" json:"is_explicit"`
	Manifest   map[string]any `bun:"manifest,type:jsonb" json:"manifest"`
	CreatedAt  time.Time      `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt  *time.Time     `bun:"updated_at" json:"updated_at"`
}

// LabelMaxLen is the maximum accepted edge label length.
const LabelMaxLen = 255
