package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportEditorialHTML(t *testing.T) {
	tests := []struct {
		name         string
		html         string
		wantTitle    string
		wantContent  string
		wantReadTime int
		wantErr      bool
	}{
		{
			name: "h1 and paragraphs",
			html: `<html><head><title>Site</title></head><body>
<h1>  Water   Security </h1>
<p>Groundwater levels are <b>falling</b>.</p>
<p></p>
<p>States must
act.</p>
</body></html>`,
			wantTitle:    "Water Security",
			wantContent:  "Groundwater levels are falling.\n\nStates must act.",
			wantReadTime: 1,
		},
		{
			name:         "falls back to title element",
			html:         `<html><head><title>Urban Planning</title></head><body><p>Cities grow.</p></body></html>`,
			wantTitle:    "Urban Planning",
			wantContent:  "Cities grow.",
			wantReadTime: 1,
		},
		{
			name:         "long article",
			html:         "<h1>Long</h1><p>" + strings.Repeat("word ", 401) + "</p>",
			wantTitle:    "Long",
			wantContent:  strings.TrimSpace(strings.Repeat("word ", 401)),
			wantReadTime: 3,
		},
		{
			name:    "no title",
			html:    `<body><p>Text only.</p></body>`,
			wantErr: true,
		},
		{
			name:    "no paragraphs",
			html:    `<h1>Heading</h1><div>Not a paragraph</div>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImportEditorialHTML(strings.NewReader(tt.html))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantContent, got.Content)
			assert.Equal(t, tt.wantReadTime, got.ReadTime)
			assert.Equal(t, strings.SplitN(tt.wantContent, "\n\n", 2)[0], got.Summary)
		})
	}
}
