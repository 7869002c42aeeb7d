package domain

import (
	"path"
	"strings"
	"unicode"
)

// DefaultTokenPriorityGroups is the token table used when configuration
// supplies none. Earlier groups outrank later ones.
var DefaultTokenPriorityGroups = [][]string{
	{"test", "spec", "e2e", "story", "mock", "fixture", "bench"},
	{"config", "setup", "script", "bin", "cli"},
	{
		"controller", "route", "router", "service", "handler", "middleware", "model",
		"schema", "api", "page", "component", "hook", "store", "view", "layout",
		"util", "helper", "type", "constant", "worker", "job",
	},
}

// genericTokens never serve as a fallback primary token.
var genericTokens = map[string]struct{}{
	"src": {}, "lib": {}, "source": {}, "index": {}, "main": {}, "mod": {},
	"module": {}, "package": {}, "code": {}, "file": {}, "internal": {},
	"js": {}, "jsx": {}, "ts": {}, "tsx": {}, "mjs": {}, "cjs": {}, "mts": {}, "cts": {},
}

// TokenTable is a pure lookup over an ordered list of token groups.
type TokenTable struct {
	groups [][]string
	rank   map[string]tokenRank
}

type tokenRank struct {
	group int
	index int
}

// NewTokenTable builds a lookup table. Tokens are normalized the same way
// path tokens are; the first occurrence of a token wins.
func NewTokenTable(groups [][]string) TokenTable {
	table := TokenTable{groups: groups, rank: map[string]tokenRank{}}

	for gi, group := range groups {
		for ti, token := range group {
			normalized := singularize(strings.ToLower(strings.TrimSpace(token)))
			if normalized == "" {
				continue
			}

			if _, exists := table.rank[normalized]; !exists {
				table.rank[normalized] = tokenRank{group: gi, index: ti}
			}
		}
	}

	return table
}

// lookup returns the rank of a recognized token.
func (t TokenTable) lookup(token string) (tokenRank, bool) {
	r, ok := t.rank[token]
	return r, ok
}

// fallbackRank places unrecognized tokens after every configured group.
func (t TokenTable) fallbackRank() tokenRank {
	return tokenRank{group: len(t.groups), index: 0}
}

// PrimaryToken derives the token that best describes the role of a file.
// ok is false when the path has no usable token.
func (t TokenTable) PrimaryToken(filePath string) (string, bool) {
	token, _, ok := t.primaryToken(filePath)
	return token, ok
}

func (t TokenTable) primaryToken(filePath string) (string, tokenRank, bool) {
	tokens := PathTokens(filePath)

	best := ""
	bestRank := tokenRank{}
	found := false

	// Lower group wins; within a group the earliest token in the path wins.
	// Tokens are unique per path, so no further tie-break is needed.
	for _, token := range tokens {
		r, ok := t.lookup(token)
		if !ok {
			continue
		}

		if !found || r.group < bestRank.group {
			best, bestRank, found = token, r, true
		}
	}

	if found {
		return best, bestRank, true
	}

	for _, token := range tokens {
		if _, generic := genericTokens[token]; generic {
			continue
		}

		return token, t.fallbackRank(), true
	}

	return "", tokenRank{}, false
}

// PathTokens splits a relative path into normalized tokens, directory
// segments first, filename last, in path order and without duplicates.
func PathTokens(filePath string) []string {
	segments := strings.Split(strings.ReplaceAll(filePath, "\\", "/"), "/")

	var tokens []string

	seen := map[string]struct{}{}

	for i, segment := range segments {
		if segment == "" || segment == "." || segment == ".." {
			continue
		}

		if i == len(segments)-1 {
			segment = stripExtensions(segment)
		}

		for _, word := range splitWords(segment) {
			token := singularize(word)
			if token == "" {
				continue
			}

			if _, dup := seen[token]; dup {
				continue
			}

			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}

	return tokens
}

// stripExtensions removes the final extension only; inner dots such as
// "user.test" are split by splitWords.
func stripExtensions(name string) string {
	ext := path.Ext(name)
	if ext == name {
		return strings.TrimPrefix(name, ".")
	}

	return strings.TrimSuffix(name, ext)
}

// splitWords splits on delimiters and camelCase boundaries and lowercases.
func splitWords(segment string) []string {
	var words []string

	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(segment)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}

		current = append(current, r)
	}

	flush()

	return words
}

// singularize strips common plural suffixes.
func singularize(word string) string {
	switch {
	case len(word) > 4 && strings.HasSuffix(word, "ies"):
		return strings.TrimSuffix(word, "ies") + "y"
	case len(word) > 3 && strings.HasSuffix(word, "ss"):
		return word
	case len(word) > 3 && (strings.HasSuffix(word, "us") || strings.HasSuffix(word, "is")):
		return word
	case len(word) > 3 && strings.HasSuffix(word, "s"):
		return strings.TrimSuffix(word, "s")
	}

	return word
}
