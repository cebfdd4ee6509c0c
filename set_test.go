package pathedit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCreatesIntermediateMappings(t *testing.T) {
	out, err := Set(map[string]interface{}{}, "some/prop/path", "some-value")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"some": map[string]interface{}{
			"prop": map[string]interface{}{
				"path": "some-value",
			},
		},
	}, out)
}

func TestSetOnNilStructure(t *testing.T) {
	out, err := Set(nil, "a", 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"a": 1}, out)
}

func TestSetOverwritesLeafOfAnyType(t *testing.T) {
	s := map[string]interface{}{"a": map[string]interface{}{"b": []interface{}{1, 2}}}
	out, err := Set(s, "a/b", "flat")
	require.NoError(t, err)
	assert.Equal(t, "flat", out["a"].(map[string]interface{})["b"])
}

func TestSetDoesNotMutateInput(t *testing.T) {
	s := sample()
	inner := s["propOne"].(map[string]interface{})

	out, err := Set(s, "propOne/propOneSub", "changed")
	require.NoError(t, err)

	assert.Equal(t, sample(), s)
	assert.Equal(t, "Charito!", inner["propOneSub"])
	assert.Equal(t, "changed", out["propOne"].(map[string]interface{})["propOneSub"])

	out["propOne"].(map[string]interface{})["extra"] = true
	_, leaked := inner["extra"]
	assert.False(t, leaked, "result must not share containers with the input")
}

func TestSetCopiesNestedSequences(t *testing.T) {
	list := []interface{}{map[string]interface{}{"x": 1}}
	s := map[string]interface{}{"list": list}

	out, err := Set(s, "other", true)
	require.NoError(t, err)
	out["list"].([]interface{})[0].(map[string]interface{})["x"] = 2
	assert.Equal(t, 1, list[0].(map[string]interface{})["x"])
}

func TestSetTypeCollision(t *testing.T) {
	testCases := []struct {
		name     string
		input    map[string]interface{}
		path     string
		wantPath string
		wantType string
	}{
		{
			name:     "string",
			input:    map[string]interface{}{"a": "x"},
			path:     "a/b",
			wantPath: "a",
			wantType: "string",
		},
		{
			name:     "array",
			input:    map[string]interface{}{"a": map[string]interface{}{"list": []interface{}{}}},
			path:     "a/list/0",
			wantPath: "a/list",
			wantType: "array",
		},
		{
			name:     "number",
			input:    map[string]interface{}{"n": 3.5},
			path:     "n/m/o",
			wantPath: "n",
			wantType: "number",
		},
		{
			name:     "integer",
			input:    map[string]interface{}{"n": 3},
			path:     "n/m",
			wantPath: "n",
			wantType: "number",
		},
		{
			name:     "boolean",
			input:    map[string]interface{}{"a": map[string]interface{}{"b": false}},
			path:     "a/b/c",
			wantPath: "a/b",
			wantType: "boolean",
		},
		{
			name:     "null",
			input:    map[string]interface{}{"a": nil},
			path:     "a/b",
			wantPath: "a",
			wantType: "null",
		},
		{
			name:     "typed map",
			input:    map[string]interface{}{"a": map[string]string{"b": "c"}},
			path:     "a/b",
			wantPath: "a",
			wantType: "object",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			out, err := Set(testCase.input, testCase.path, 1)
			require.Error(t, err)
			assert.Nil(t, out)

			var tc *TypeCollisionError
			require.True(t, errors.As(err, &tc))
			assert.Equal(t, testCase.wantPath, tc.Path)
			assert.Equal(t, testCase.wantType, tc.Type)
			assert.ErrorIs(t, err, ErrTypeCollision)
		})
	}
}

func TestSetCollisionMessage(t *testing.T) {
	_, err := Set(map[string]interface{}{"a": "x"}, "a/b", 1)
	require.EqualError(t, err, `pathedit: there's already an element of type "string" on "a"`)
}

func TestSetCollisionPathUsesDelimiter(t *testing.T) {
	s := map[string]interface{}{"a": map[string]interface{}{"b": "x"}}
	_, err := Set(s, "a.b.c", 1, WithDelimiter("."))
	var tc *TypeCollisionError
	require.ErrorAs(t, err, &tc)
	assert.Equal(t, "a.b", tc.Path)
}

func TestSetThenGetRoundTrip(t *testing.T) {
	paths := []string{"x", "a/b", "propOne/propOneSub", "propOne/new/deep/key", "fresh/tree"}
	values := []interface{}{1, "s", nil, []interface{}{"a"}, map[string]interface{}{"k": "v"}}
	for _, p := range paths {
		for _, v := range values {
			out, err := Set(sample(), p, v)
			require.NoError(t, err, p)
			got, err := Get(out, p)
			require.NoError(t, err, p)
			assert.Equal(t, v, got, p)
		}
	}
}
