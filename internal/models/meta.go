package models

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// NoteMeta is the optional structured header a note may carry in front of its
// markdown body. Every key is optional; defaults are applied by the view
// layer, never at storage time.
type NoteMeta struct {
	Title        string       `yaml:"title"`
	Description  string       `yaml:"description"`
	Robots       string       `yaml:"robots"`
	GA           string       `yaml:"GA"`
	Disqus       string       `yaml:"disqus"`
	SlideOptions SlideOptions `yaml:"slideOptions"`
}

type SlideOptions struct {
	Theme      string `yaml:"theme"`
	Transition string `yaml:"transition"`
}

const metaFence = "---"

// ExtractMeta splits a leading ----fenced header block from the markdown
// body. Content without a fence is returned unchanged as markdown.
func ExtractMeta(content string) (meta string, markdown string) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, metaFence+"\n") {
		return "", content
	}
	rest := normalized[len(metaFence)+1:]
	end := strings.Index(rest, "\n"+metaFence)
	if end < 0 {
		return "", content
	}
	meta = rest[:end]
	markdown = strings.TrimPrefix(rest[end+len(metaFence)+1:], "\n")
	return meta, markdown
}

// ParseMeta decodes an extracted header block. A broken header yields the
// zero value rather than an error: a malformed header never blocks a view.
func ParseMeta(meta string) NoteMeta {
	var parsed NoteMeta
	if meta == "" {
		return parsed
	}
	if err := yaml.Unmarshal([]byte(meta), &parsed); err != nil {
		return NoteMeta{}
	}
	return parsed
}
