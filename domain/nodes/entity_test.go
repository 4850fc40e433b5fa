package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNodeType(t *testing.T) {
	for _, valid := range []string{"character", "location", "event", "item", "concept", "note"} {
		nodeType, err := ParseNodeType(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, valid, string(nodeType))
	}
}

func TestParseNodeType_Rejections(t *testing.T) {
	for _, invalid := range []string{"", "Character", "CHARACTER", "person", "character "} {
		_, err := ParseNodeType(invalid)
		assert.Error(t, err, "token %q", invalid)
	}
}
