package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderConvertsMarkdown(t *testing.T) {
	p, err := Render(Content{
		About:    "Hello **world**",
		Projects: []Project{{Title: "x", Description: "Uses *Go*"}},
	})
	require.NoError(t, err)
	require.Contains(t, string(p.AboutHTML), "<strong>world</strong>")
	require.Len(t, p.Projects, 1)
	require.Contains(t, string(p.Projects[0].HTML), "<em>Go</em>")
}

func TestRenderDropsRawHTML(t *testing.T) {
	p, err := Render(Content{About: "<script>alert(1)</script>\n\nplain"})
	require.NoError(t, err)
	require.NotContains(t, string(p.AboutHTML), "<script>")
	require.Contains(t, string(p.AboutHTML), "plain")
}

func TestRenderMarksExternalLinks(t *testing.T) {
	p, err := Render(Content{About: "See [my site](https://example.com)."})
	require.NoError(t, err)
	html := string(p.AboutHTML)
	require.Contains(t, html, `href="https://example.com"`)
	require.Contains(t, html, "nofollow")
	require.Contains(t, html, `target="_blank"`)
}

func TestWithDefaultsKeepsOverrides(t *testing.T) {
	c := Content{Name: "Someone", Projects: []Project{{Title: "Only"}}}.WithDefaults(Default())
	require.Equal(t, "Someone", c.Name)
	require.Len(t, c.Projects, 1)
	require.NotEmpty(t, c.Experience)
	require.True(t, strings.HasPrefix(c.About, "I'm a passionate"))
}
