package render

import (
	"encoding/json"
	"testing"

	"github.com/napalu/hookloc/inline"
	"github.com/napalu/hookloc/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const permissionsLocale = `{
  "permissions": {
    "read": {"label": "Read files", "description": "Allow reading \"safe\" paths"},
    "web": {"label": "Web access"}
  }
}`

func loadTable(t *testing.T) *locale.Table {
	t.Helper()
	table, err := locale.Parse([]byte(permissionsLocale), locale.JSON)
	require.NoError(t, err)
	return table
}

func TestRender(t *testing.T) {
	table := loadTable(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no keys", `{"a": 1}`, `{"a": 1}`},
		{"single key", `{"label": "{{permissions.read.label}}"}`, `{"label": "Read files"}`},
		{"language", `{"language": "{{language}}"}`, `{"language": "zh_CN"}`},
		{"two keys one line", `{{permissions.read.label}} / {{permissions.web.label}}`, `Read files / Web access`},
		{"single braces untouched", `{permissions.read.label}`, `{permissions.read.label}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := Render(tt.in, table, "zh_CN")
			assert.Equal(t, tt.want, got)
			assert.Empty(t, diags)
		})
	}
}

func TestRenderUnresolved(t *testing.T) {
	table := loadTable(t)

	in := "{\n  \"a\": \"{{permissions.read}}\",\n  \"b\": \"{{missing.key}}\"\n}"
	got, diags := Render(in, table, "en_US")
	assert.Equal(t, in, got)
	require.Len(t, diags, 2)
	assert.Equal(t, inline.UnresolvedKey, diags[0].Kind)
	assert.Equal(t, "permissions.read", diags[0].Key)
	assert.Equal(t, 2, diags[0].Line)
	assert.Equal(t, 9, diags[0].Column)
	assert.Equal(t, "missing.key", diags[1].Key)
	assert.Equal(t, 3, diags[1].Line)
}

func TestRenderEscapeJSON(t *testing.T) {
	table := loadTable(t)

	in := `{"description": "{{permissions.read.description}}"}`

	raw, _ := Render(in, table, "en_US")
	assert.False(t, json.Valid([]byte(raw)))

	escaped, diags := Render(in, table, "en_US", EscapeJSON())
	assert.Empty(t, diags)
	assert.True(t, json.Valid([]byte(escaped)))

	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(escaped), &v))
	assert.Equal(t, `Allow reading "safe" paths`, v["description"])
}
