package pathedit

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Default placeholder delimiters. They are regular expression fragments, hence the escaping.
const (
	DefaultPlaceholderLeft  = `\[`
	DefaultPlaceholderRight = `\]`
)

type placeholderOptions struct {
	left, right string
}

// PlaceholderOption tunes ReplacePlaceholders.
type PlaceholderOption func(*placeholderOptions)

// WithPlaceholderDelimiters sets the left and right token boundaries. Both are used as
// regular expression fragments verbatim, so characters such as [ ] { } . must be escaped
// by the caller.
func WithPlaceholderDelimiters(left, right string) PlaceholderOption {
	return func(o *placeholderOptions) {
		o.left, o.right = left, right
	}
}

// ReplacePlaceholders replaces every case-insensitive occurrence of left+name+right in
// text with the string form of placeholders[name].
//
// Names match literally; only the delimiters are pattern fragments. All tokens are replaced
// in a single pass over text, so a value that itself looks like a token is left as is.
// Values are inserted literally ($ has no special meaning). When two names match the same
// token, the first in sorted order wins.
func ReplacePlaceholders(text string, placeholders map[string]interface{}, opts ...PlaceholderOption) (string, error) {
	o := placeholderOptions{left: DefaultPlaceholderLeft, right: DefaultPlaceholderRight}
	for _, apply := range opts {
		apply(&o)
	}
	if len(placeholders) == 0 {
		return text, nil
	}

	names := make([]string, 0, len(placeholders))
	for name := range placeholders {
		names = append(names, name)
	}
	sort.Strings(names)

	alts := make([]string, len(names))
	for i, name := range names {
		alts[i] = fmt.Sprintf("(?P<p%d>%s)", i, regexp.QuoteMeta(name))
	}
	re, err := regexp.Compile("(?i)" + o.left + "(?:" + strings.Join(alts, "|") + ")" + o.right)
	if err != nil {
		return "", fmt.Errorf("pathedit: invalid placeholder pattern: %w", err)
	}
	groups := make([]int, len(names))
	for i := range names {
		groups[i] = re.SubexpIndex(fmt.Sprintf("p%d", i))
	}

	var sb strings.Builder
	last := 0
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		sb.WriteString(text[last:m[0]])
		for i, g := range groups {
			if m[2*g] >= 0 {
				sb.WriteString(fmt.Sprint(placeholders[names[i]]))
				break
			}
		}
		last = m[1]
	}
	sb.WriteString(text[last:])
	return sb.String(), nil
}

// HumanReadableList formats items as "a, b or c". An empty conjunction means "or".
func HumanReadableList(items []string, conjunction string) string {
	if conjunction == "" {
		conjunction = "or"
	}
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	last := len(items) - 1
	return strings.Join(items[:last], ", ") + " " + conjunction + " " + items[last]
}

// PluralOther is the fallback key for Pluralize.
const PluralOther = "other"

// Pluralize picks the phrase for count out of options and replaces every "{}" in it with
// count. Exact matches are keyed by the decimal form of count ("0", "1", "-1"), so keys
// such as "01" or "1.0" never match. Without an exact match the PluralOther entry is used;
// without either the result is empty.
//
//	Pluralize(n, map[string]string{
//		"0":     "No records",
//		"1":     "One record",
//		"other": "{} records",
//	})
func Pluralize(count int, options map[string]string) string {
	n := strconv.Itoa(count)
	text, ok := options[n]
	if !ok {
		text = options[PluralOther]
	}
	return strings.ReplaceAll(text, "{}", n)
}
