package content

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const wordsPerMinute = 200

var whitespacePattern = regexp.MustCompile(`\s+`)

// ImportEditorialHTML builds an editorial draft from an HTML article.
// The title comes from the first h1 (falling back to <title>), the content
// from the <p> paragraphs. ID, category, vocabulary and quiz are left for the
// author to fill in.
func ImportEditorialHTML(r io.Reader) (Editorial, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Editorial{}, fmt.Errorf("parse HTML: %w", err)
	}

	title := cleanText(findText(doc, "h1"))
	if title == "" {
		title = cleanText(findText(doc, "title"))
	}
	if title == "" {
		return Editorial{}, errors.New("the article has no h1 or title element")
	}

	var paragraphs []string
	collectParagraphs(doc, &paragraphs)
	if len(paragraphs) == 0 {
		return Editorial{}, errors.New("the article has no paragraphs")
	}

	body := strings.Join(paragraphs, "\n\n")
	return Editorial{
		Title:    title,
		Content:  body,
		Summary:  paragraphs[0],
		ReadTime: readTime(body),
	}, nil
}

func findText(n *html.Node, element string) string {
	if n.Type == html.ElementNode && n.Data == element {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text := findText(c, element); text != "" {
			return text
		}
	}
	return ""
}

func collectParagraphs(n *html.Node, paragraphs *[]string) {
	if n.Type == html.ElementNode && n.Data == "p" {
		if text := cleanText(textContent(n)); text != "" {
			*paragraphs = append(*paragraphs, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectParagraphs(c, paragraphs)
	}
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var result strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		result.WriteString(textContent(c))
	}
	return result.String()
}

func cleanText(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// readTime is the reading time in whole minutes, at least one.
func readTime(body string) int {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
