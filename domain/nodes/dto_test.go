package nodes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr bool
	}{
		{"valid", CreateRequest{Title: "Hero", Type: "character"}, false},
		{"title at limit", CreateRequest{Title: strings.Repeat("a", TitleMaxLen), Type: "note"}, false},
		{"multibyte title at limit", CreateRequest{Title: strings.Repeat("ก", TitleMaxLen), Type: "note"}, false},
		{"empty title", CreateRequest{Title: "", Type: "character"}, true},
		{"title over limit", CreateRequest{Title: strings.Repeat("a", TitleMaxLen+1), Type: "note"}, true},
		{"multibyte title over limit", CreateRequest{Title: strings.Repeat("ก", TitleMaxLen+1), Type: "note"}, true},
		{"missing type", CreateRequest{Title: "Hero"}, true},
		{"unknown type", CreateRequest{Title: "Hero", Type: "villain"}, true},
		{"uppercase type", CreateRequest{Title: "Hero", Type: "Character"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodeType, appErr := tt.req.Validate()
			if tt.wantErr {
				require.NotNil(t, appErr)
				assert.Equal(t, 400, appErr.HTTPStatus)
			} else {
				require.Nil(t, appErr)
				assert.Equal(t, tt.req.Type, string(nodeType))
			}
		})
	}
}

func TestUpdateRequest_Validate(t *testing.T) {
	assert.Nil(t, (&UpdateRequest{}).Validate())
	assert.Nil(t, (&UpdateRequest{Title: strPtr("Renamed")}).Validate())

	appErr := (&UpdateRequest{Title: strPtr("  ")}).Validate()
	require.NotNil(t, appErr)

	appErr = (&UpdateRequest{Title: strPtr(strings.Repeat("x", TitleMaxLen+1))}).Validate()
	require.NotNil(t, appErr)
}
