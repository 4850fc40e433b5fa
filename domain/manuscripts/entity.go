package manuscripts

import (
	"time"

	"github.com/uptrace/bun"
)

// Manuscript is the aggregate root of the linking model. It owns nodes;
// deleting a manuscript cascades to its nodes and, transitively, to every
// edge touching those nodes.
type Manuscript struct {
	bun.BaseModel `bun:"table:manuscripts,alias:m"`

	ID         string         `bun:"id,pk" json:"id"`
	Title      string         `bun:"title,notnull" json:"title"`
	Content    *string        `bun:"content" json:"content"`
	FilePath   *string        `bun:"file_path" json:"file_path"`
	FileType   *string        `bun:"file_type" json:"file_type"`
	FileSize   *string        `bun:"file_size" json:"file_size"`
	IsArchived bool           `bun:"is_archived,notnull,default:false" json:"is_archived"`
	Manifest   map[string]any `bun:"manifest,type:jsonb" json:"manifest"`
	CreatedAt  time.Time      `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt  *time.Time     `bun:"updated_at" json:"updated_at"`
	UserID     *string        `bun:"user_id" json:"user_id"`
}

// TitleMaxLen is the maximum accepted manuscript title length.
const TitleMaxLen = 255
