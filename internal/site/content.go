package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Content is the static biographical data of the page.
type Content struct {
	Name       string      `koanf:"name" yaml:"name"`
	Tagline    string      `koanf:"tagline" yaml:"tagline"`
	About      string      `koanf:"about" yaml:"about"` // markdown
	Education  []Education `koanf:"education" yaml:"education"`
	Experience []Job       `koanf:"experience" yaml:"experience"`
	Projects   []Project   `koanf:"projects" yaml:"projects"`
	Skills     []SkillSet  `koanf:"skills" yaml:"skills"`
	Links      []Link      `koanf:"links" yaml:"links"`
}

type Education struct {
	Degree string `koanf:"degree" yaml:"degree"`
	School string `koanf:"school" yaml:"school"`
	Period string `koanf:"period" yaml:"period"`
	Status string `koanf:"status" yaml:"status"`
}

type Job struct {
	Title        string   `koanf:"title" yaml:"title"`
	Company      string   `koanf:"company" yaml:"company"`
	Period       string   `koanf:"period" yaml:"period"`
	Location     string   `koanf:"location" yaml:"location"`
	Description  string   `koanf:"description" yaml:"description"`
	Technologies []string `koanf:"technologies" yaml:"technologies"`
}

type Project struct {
	Title        string   `koanf:"title" yaml:"title"`
	Description  string   `koanf:"description" yaml:"description"` // markdown
	URL          string   `koanf:"url" yaml:"url"`
	Technologies []string `koanf:"technologies" yaml:"technologies"`
}

type SkillSet struct {
	Title  string  `koanf:"title" yaml:"title"`
	Skills []Skill `koanf:"skills" yaml:"skills"`
}

type Skill struct {
	Name  string `koanf:"name" yaml:"name"`
	Level int    `koanf:"level" yaml:"level"` // percent
}

// Link is a contact channel. Href may be empty for plain values.
type Link struct {
	Title string `koanf:"title" yaml:"title"`
	Value string `koanf:"value" yaml:"value"`
	Href  string `koanf:"href" yaml:"href"`
}

// WithDefaults fills every empty part of c from d.
func (c Content) WithDefaults(d Content) Content {
	if c.Name == "" {
		c.Name = d.Name
	}
	if c.Tagline == "" {
		c.Tagline = d.Tagline
	}
	if c.About == "" {
		c.About = d.About
	}
	if len(c.Education) == 0 {
		c.Education = d.Education
	}
	if len(c.Experience) == 0 {
		c.Experience = d.Experience
	}
	if len(c.Projects) == 0 {
		c.Projects = d.Projects
	}
	if len(c.Skills) == 0 {
		c.Skills = d.Skills
	}
	if len(c.Links) == 0 {
		c.Links = d.Links
	}
	return c
}

// RenderedProject carries its description as HTML.
type RenderedProject struct {
	Project
	HTML template.HTML
}

// Page is Content with markdown rendered, ready for templates.
type Page struct {
	Content
	AboutHTML template.HTML
	Projects  []RenderedProject
}

// Render converts the markdown parts of c to HTML. Raw HTML inside the
// markdown is dropped by goldmark's default renderer and the output is passed
// through a UGC policy.
func Render(c Content) (*Page, error) {
	md := goldmark.New()
	policy := newContentPolicy()
	about, err := markdown(md, policy, c.About)
	if err != nil {
		return nil, fmt.Errorf("rendering about: %w", err)
	}
	p := &Page{Content: c, AboutHTML: about}
	for _, proj := range c.Projects {
		h, err := markdown(md, policy, proj.Description)
		if err != nil {
			return nil, fmt.Errorf("rendering project %q: %w", proj.Title, err)
		}
		p.Projects = append(p.Projects, RenderedProject{Project: proj, HTML: h})
	}
	return p, nil
}

func newContentPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

func markdown(md goldmark.Markdown, policy *bluemonday.Policy, src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}
