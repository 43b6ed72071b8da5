package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	t.Run("json array", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, Decode(`["a","b"]`))
	})

	t.Run("comma separated legacy value", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, Decode("a, b"))
	})

	t.Run("comma separated without spaces", func(t *testing.T) {
		assert.Equal(t, []string{"Go", "SQL", "Docker"}, Decode("Go,SQL,Docker"))
	})

	t.Run("single plain value", func(t *testing.T) {
		assert.Equal(t, []string{"Go"}, Decode("Go"))
	})

	t.Run("empty and blank values", func(t *testing.T) {
		assert.Empty(t, Decode(""))
		assert.Empty(t, Decode("   "))
	})

	t.Run("json null", func(t *testing.T) {
		assert.Empty(t, Decode("null"))
	})

	t.Run("empty json array", func(t *testing.T) {
		assert.Empty(t, Decode("[]"))
	})

	t.Run("json elements are not trimmed", func(t *testing.T) {
		// Stored JSON entries come back verbatim; trimming happens at
		// comparison time, not decode time.
		assert.Equal(t, []string{" Go ", "SQL"}, Decode(`[" Go ","SQL"]`))
	})

	t.Run("malformed json falls back to comma split", func(t *testing.T) {
		assert.Equal(t, []string{`["a"`, `"b"`}, Decode(`["a","b"`))
	})
}

func TestEncode(t *testing.T) {
	assert.Equal(t, `["a","b"]`, Encode([]string{"a", "b"}))
	assert.Equal(t, `[]`, Encode(nil))
	assert.Equal(t, `[]`, Encode([]string{}))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	raw := `["Rust", "Go", "a b c"]`
	assert.Equal(t, []string{"Rust", "Go", "a b c"}, Decode(Encode(Decode(raw))))
}

func TestAddOne(t *testing.T) {
	t.Run("appends to existing value", func(t *testing.T) {
		newRaw, list, dup := AddOne(`["Go"]`, "Rust")
		assert.False(t, dup)
		assert.Equal(t, []string{"Go", "Rust"}, list)
		assert.Equal(t, `["Go","Rust"]`, newRaw)
	})

	t.Run("appends to empty value", func(t *testing.T) {
		newRaw, list, dup := AddOne("", "Go")
		assert.False(t, dup)
		assert.Equal(t, []string{"Go"}, list)
		assert.Equal(t, `["Go"]`, newRaw)
	})

	t.Run("appends to legacy comma value and standardizes format", func(t *testing.T) {
		newRaw, list, dup := AddOne("Go, SQL", "Docker")
		assert.False(t, dup)
		assert.Equal(t, []string{"Go", "SQL", "Docker"}, list)
		assert.Equal(t, `["Go","SQL","Docker"]`, newRaw)
	})

	t.Run("duplicate detection is case insensitive", func(t *testing.T) {
		raw := `["go"]`
		newRaw, list, dup := AddOne(raw, "Go")
		assert.True(t, dup)
		assert.Equal(t, []string{"go"}, list)
		assert.Equal(t, raw, newRaw, "stored value must not change on duplicate")
	})

	t.Run("duplicate detection trims both sides", func(t *testing.T) {
		_, _, dup := AddOne(`[" Go "]`, "  go")
		assert.True(t, dup)
	})

	t.Run("original casing of the new skill is preserved", func(t *testing.T) {
		newRaw, _, _ := AddOne(`["SQL"]`, "  GraphQL  ")
		assert.Equal(t, `["SQL","GraphQL"]`, newRaw)
	})
}

func TestRemoveOne(t *testing.T) {
	t.Run("removes case insensitively", func(t *testing.T) {
		newRaw, list := RemoveOne(`["Go","Rust"]`, "GO")
		assert.Equal(t, []string{"Rust"}, list)
		assert.Equal(t, `["Rust"]`, newRaw)
	})

	t.Run("removes every matching entry", func(t *testing.T) {
		_, list := RemoveOne(`["go","GO","Rust"]`, "go")
		assert.Equal(t, []string{"Rust"}, list)
	})

	t.Run("absent skill is a no-op that still re-encodes", func(t *testing.T) {
		newRaw, list := RemoveOne("Go, Rust", "Python")
		assert.Equal(t, []string{"Go", "Rust"}, list)
		assert.Equal(t, `["Go","Rust"]`, newRaw)
	})

	t.Run("removing last skill yields empty array literal", func(t *testing.T) {
		newRaw, list := RemoveOne(`["Go"]`, "go")
		assert.Empty(t, list)
		assert.Equal(t, `[]`, newRaw)
	})
}

func TestAggregate(t *testing.T) {
	t.Run("unions mixed encodings", func(t *testing.T) {
		out := Aggregate([]string{`["Go","SQL"]`, "Docker, SQL"})
		assert.Equal(t, []string{"Go", "SQL", "Docker"}, out)
	})

	t.Run("does not case fold", func(t *testing.T) {
		out := Aggregate([]string{`["Go"]`, `["go"]`})
		assert.Equal(t, []string{"Go", "go"}, out)
	})

	t.Run("trims entries", func(t *testing.T) {
		out := Aggregate([]string{`[" Go "]`, `["Go"]`})
		assert.Equal(t, []string{"Go"}, out)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Aggregate(nil))
		assert.Empty(t, Aggregate([]string{"", "[]"}))
	})
}
