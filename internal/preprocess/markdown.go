// Package preprocess flattens rich-text input into plain prose before
// scoring, so markdown syntax and URLs never count as lexical matches.
package preprocess

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	inlineLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLPattern    = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
)

// RemoveLinks keeps the label of inline markdown links and drops bare URLs.
func RemoveLinks(input string) string {
	input = inlineLinkPattern.ReplaceAllString(input, "$1")
	return bareURLPattern.ReplaceAllString(input, "")
}

// Flatten renders markdown and strips the resulting markup, returning
// whitespace-normalized plain text.
func Flatten(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagPattern.ReplaceAllString(string(rendered), " ")
	plain = strings.Join(strings.Fields(plain), " ")

	return RemoveLinks(plain)
}
