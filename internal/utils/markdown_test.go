package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	html := string(RenderMarkdown("un **excellent** film"))
	if !strings.Contains(html, "<strong>excellent</strong>") {
		t.Errorf("Expected bold markup, got %s", html)
	}
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html := string(RenderMarkdown("salut <script>alert('x')</script>"))
	if strings.Contains(html, "<script>") {
		t.Errorf("Expected scripts to be stripped, got %s", html)
	}
}
