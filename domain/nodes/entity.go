package nodes

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// NodeType classifies a node within the linking model. The set is closed;
// adding a variant is a schema change.
type NodeType string

const (
	TypeCharacter NodeType = "character"
	TypeLocation  NodeType = "location"
	TypeEvent     NodeType = "event"
	TypeItem      NodeType = "item"
	TypeConcept   NodeType = "concept"
	TypeNote      NodeType = "note"
)

// NodeTypes is the canonical registry of node kinds.
var NodeTypes = []NodeType{
	TypeCharacter, TypeLocation, TypeEvent, TypeItem, TypeConcept, TypeNote,
}

// ParseNodeType validates a wire token. Matching is case sensitive so that
// aliases like "Character" never slip through.
func ParseNodeType(raw string) (NodeType, error) {
	for _, t := range NodeTypes {
		if raw == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown node type %q", raw)
}

// Node is a typed content fragment in the graph. It may belong to a
// manuscript; deleting the manuscript removes the node, and deleting the
// node removes every edge touching it.
type Node struct {
	bun.BaseModel `bun:"table:nodes,alias:n"`

	ID           string         `bun:"id,pk" json:"id"`
	Title        string         `bun:"title,notnull" json:"title"`
	Content      *string        `bun:"content" json:"content"`
	Type         NodeType       `bun:"type,notnull" json:"type"`
	Manifest     map[string]any `bun:"manifest,type:jsonb" json:"manifest"`
	ManuscriptID *string        `bun:"manuscript_id" json:"manuscript_id"`
	CreatedAt    time.Time      `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt    *time.Time     `bun:"updated_at" json:"updated_at"`
}

// TitleMaxLen is the maximum accepted node title length.
const TitleMaxLen = 500
