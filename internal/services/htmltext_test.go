package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		rendered string
		want     string
	}{
		{
			name:     "paragraphs become lines",
			rendered: "<p>First paragraph.</p>\n<p>Second paragraph.</p>",
			want:     "First paragraph.\nSecond paragraph.",
		},
		{
			name:     "inline markup is flattened",
			rendered: "<p>Talk by <strong>Ada</strong> and <em>Grace</em></p>",
			want:     "Talk by Ada and Grace",
		},
		{
			name:     "entities are decoded",
			rendered: "<p>Q&amp;A &#8211; bring questions</p>",
			want:     "Q&A – bring questions",
		},
		{
			name:     "script and style are dropped",
			rendered: "<p>Hello</p><script>alert(1)</script><style>p{}</style>",
			want:     "Hello",
		},
		{
			name:     "list items get their own lines",
			rendered: "<ul><li>WordPress</li><li>Gutenberg</li></ul>",
			want:     "WordPress\nGutenberg",
		},
		{
			name:     "blank runs collapse",
			rendered: "<div><p>One</p></div>\n\n<div><p>Two</p></div>",
			want:     "One\nTwo",
		},
		{
			name:     "empty input",
			rendered: "   ",
			want:     "",
		},
		{
			name:     "plain text passes through",
			rendered: "No markup here",
			want:     "No markup here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.rendered))
		})
	}
}
