package service

import (
	"bytes"
	"strings"

	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// TextProcessor cleans user supplied text. Plain strips every tag; Markdown
// renders to HTML and keeps only the user-generated-content subset.
type TextProcessor struct {
	md    goldmark.Markdown
	plain *bluemonday.Policy
	rich  *bluemonday.Policy
}

func NewTextProcessor() *TextProcessor {
	rich := bluemonday.UGCPolicy()
	rich.RequireNoFollowOnLinks(true)
	rich.AddTargetBlankToFullyQualifiedLinks(true)

	return &TextProcessor{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		plain: bluemonday.StrictPolicy(),
		rich:  rich,
	}
}

// Plain removes markup and surrounding whitespace.
func (p *TextProcessor) Plain(s string) string {
	return strings.TrimSpace(p.plain.Sanitize(s))
}

// Markdown renders src and sanitizes the result.
func (p *TextProcessor) Markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(p.rich.Sanitize(buf.String())), nil
}

// Slugify turns a title into a lowercase, dash separated URL segment with
// German transliteration. Titles without any usable character get "beitrag".
func Slugify(title string) string {
	if s := slug.MakeLang(title, "de"); s != "" {
		return s
	}
	return "beitrag"
}
