package pathedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplacePlaceholders(t *testing.T) {
	out, err := ReplacePlaceholders("Hello [name]!", map[string]interface{}{"name": "World"})
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", out)
}

func TestReplacePlaceholdersIsCaseInsensitive(t *testing.T) {
	out, err := ReplacePlaceholders("[NAME], [Name] and [name]", map[string]interface{}{"name": "Rosario"})
	require.NoError(t, err)
	assert.Equal(t, "Rosario, Rosario and Rosario", out)
}

func TestReplacePlaceholdersMultipleAndNonString(t *testing.T) {
	out, err := ReplacePlaceholders("[count] results for '[title]' ([missing])", map[string]interface{}{
		"count": 3,
		"title": "Batman",
	})
	require.NoError(t, err)
	assert.Equal(t, "3 results for 'Batman' ([missing])", out)
}

func TestReplacePlaceholdersValuesAreLiteral(t *testing.T) {
	out, err := ReplacePlaceholders("cost: [price]", map[string]interface{}{"price": "$1 and ${0}"})
	require.NoError(t, err)
	assert.Equal(t, "cost: $1 and ${0}", out)
}

func TestReplacePlaceholdersCustomDelimiters(t *testing.T) {
	out, err := ReplacePlaceholders("Hi {{user}}, [user]", map[string]interface{}{"user": "ana"},
		WithPlaceholderDelimiters(`\{\{`, `\}\}`))
	require.NoError(t, err)
	assert.Equal(t, "Hi ana, [user]", out)
}

func TestReplacePlaceholdersInvalidPattern(t *testing.T) {
	_, err := ReplacePlaceholders("x", map[string]interface{}{"a": 1}, WithPlaceholderDelimiters("(", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pathedit: invalid placeholder")
}

func TestReplacePlaceholdersDoesNotRescanSubstitutedText(t *testing.T) {
	out, err := ReplacePlaceholders("[a] and [B]", map[string]interface{}{"a": "[b]", "b": "X"})
	require.NoError(t, err)
	assert.Equal(t, "[b] and X", out)
}

func TestReplacePlaceholdersNamesMatchLiterally(t *testing.T) {
	out, err := ReplacePlaceholders("[a.b] [aXb] [f(x)]", map[string]interface{}{"a.b": "Y", "f(x)": "Z"})
	require.NoError(t, err)
	assert.Equal(t, "Y [aXb] Z", out)
}

func TestReplacePlaceholdersOverlappingNames(t *testing.T) {
	out, err := ReplacePlaceholders("[a] [ab]", map[string]interface{}{"a": 1, "ab": 2})
	require.NoError(t, err)
	assert.Equal(t, "1 2", out)
}

func TestReplacePlaceholdersEmptyMap(t *testing.T) {
	out, err := ReplacePlaceholders("untouched [x]", nil)
	require.NoError(t, err)
	assert.Equal(t, "untouched [x]", out)
}

func TestHumanReadableList(t *testing.T) {
	testCases := []struct {
		name        string
		items       []string
		conjunction string
		want        string
	}{
		{name: "nil", items: nil, want: ""},
		{name: "empty", items: []string{}, conjunction: "and", want: ""},
		{name: "single", items: []string{"one"}, want: "one"},
		{name: "two", items: []string{"one", "two"}, want: "one or two"},
		{name: "three default", items: []string{"one", "two", "three"}, want: "one, two or three"},
		{name: "three and", items: []string{"one", "two", "three"}, conjunction: "and", want: "one, two and three"},
		{name: "comma inside last item", items: []string{"a", "b, c"}, want: "a or b, c"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, HumanReadableList(testCase.items, testCase.conjunction))
		})
	}
}

func TestPluralize(t *testing.T) {
	options := map[string]string{
		"1":     "1 result",
		"other": "{} results",
	}
	assert.Equal(t, "1 result", Pluralize(1, options))
	assert.Equal(t, "5 results", Pluralize(5, options))
	assert.Equal(t, "0 results", Pluralize(0, options))
	assert.Equal(t, "-2 results", Pluralize(-2, options))
}

func TestPluralizeExactMatchWinsEvenWhenEmpty(t *testing.T) {
	options := map[string]string{"0": "", "other": "{} records"}
	assert.Equal(t, "", Pluralize(0, options))
}

func TestPluralizeNoMatch(t *testing.T) {
	assert.Equal(t, "", Pluralize(3, map[string]string{"1": "one"}))
	assert.Equal(t, "", Pluralize(3, nil))
}

func TestPluralizeExactKeysAreCanonical(t *testing.T) {
	options := map[string]string{"01": "padded", "other": "{}"}
	assert.Equal(t, "1", Pluralize(1, options))
}

func TestPluralizeReplacesEveryToken(t *testing.T) {
	assert.Equal(t, "2 of 2", Pluralize(2, map[string]string{"other": "{} of {}"}))
}
