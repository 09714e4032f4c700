package diag

import (
	"os"
	"regexp"
	"strings"
)

// Redactor masks host-identifying data in collected text
type Redactor struct {
	replacer *strings.Replacer
	patterns []redactionPattern
	host     *regexp.Regexp
}

type redactionPattern struct {
	regex       *regexp.Regexp
	replacement string
}

// NewRedactor creates a redactor for the local home directory and hostname.
func NewRedactor() *Redactor {
	home, _ := os.UserHomeDir()
	host, _ := os.Hostname()
	return NewRedactorFor(home, host)
}

// NewRedactorFor creates a redactor for an explicit home directory and hostname.
func NewRedactorFor(home, host string) *Redactor {
	var pairs []string
	if home != "" && home != "/" {
		pairs = append(pairs, home, "~")
	}

	patterns := []redactionPattern{
		{
			regex:       regexp.MustCompile(`(?i)([A-Z]:\\Users\\)[^\\\s"]+`),
			replacement: `${1}[USER]`,
		},
		{
			regex:       regexp.MustCompile(`(/home/|/Users/)[^/\s"]+`),
			replacement: `${1}[USER]`,
		},
	}

	r := &Redactor{
		replacer: strings.NewReplacer(pairs...),
		patterns: patterns,
	}
	if host != "" {
		r.host = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(host))
	}
	return r
}

// Redact applies all replacements to the input text
func (r *Redactor) Redact(input string) string {
	result := r.replacer.Replace(input)
	for _, pattern := range r.patterns {
		result = pattern.regex.ReplaceAllString(result, pattern.replacement)
	}
	return r.redactHost(result)
}

// redactHost masks the hostname only where it stands as a whole token, so
// "dev" leaves "device" alone.
func (r *Redactor) redactHost(input string) string {
	if r.host == nil {
		return input
	}

	var b strings.Builder
	last := 0
	for _, loc := range r.host.FindAllStringIndex(input, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && isHostChar(input[start-1]) {
			continue
		}
		if end < len(input) && isHostChar(input[end]) {
			continue
		}
		b.WriteString(input[last:start])
		b.WriteString("[HOST]")
		last = end
	}
	b.WriteString(input[last:])
	return b.String()
}

func isHostChar(c byte) bool {
	return c == '-' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}
