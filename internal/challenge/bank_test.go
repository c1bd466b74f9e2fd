package challenge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validJSONBank = `{
  "riddles": [
    {"question": "What gets wetter the more it dries?", "answer": "towel"},
    {"question": "What has hands but can't clap?", "answer": "clock"},
    {"question": "What has a neck but no head?", "answer": "bottle"}
  ]
}`

const validTOMLBank = `
[[riddles]]
question = "What gets wetter the more it dries?"
answer = "towel"

[[riddles]]
question = "What has hands but can't clap?"
answer = "clock"

[[riddles]]
question = "What has a neck but no head?"
answer = " bottle "
`

func TestDefaultBank(t *testing.T) {
	b := DefaultBank()
	require.Equal(t, 3, b.Len())
	assert.Equal(t, "egg", b.Riddles()[0].Answer)

	// Riddles returns a copy.
	r := b.Riddles()
	r[0].Answer = "changed"
	assert.Equal(t, "egg", b.Riddles()[0].Answer)
}

func TestParseBank(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		ext     string
		wantErr bool
	}{
		{"json", validJSONBank, ".json", false},
		{"toml", validTOMLBank, ".toml", false},
		{"toml upper ext", validTOMLBank, ".TOML", false},
		{"unsupported ext", validJSONBank, ".yaml", true},
		{"broken json", `{"riddles": [`, ".json", true},
		{"broken toml", `[[riddles]`, ".toml", true},
		{"too few", `{"riddles":[{"question":"a","answer":"b"},{"question":"c","answer":"d"}]}`, ".json", true},
		{"empty answer", `{"riddles":[{"question":"a","answer":" "},{"question":"c","answer":"d"},{"question":"e","answer":"f"}]}`, ".json", true},
		{"missing answer", `{"riddles":[{"question":"a"},{"question":"c","answer":"d"},{"question":"e","answer":"f"}]}`, ".json", true},
		{"extra field", `{"riddles":[{"question":"a","answer":"b","hint":"x"},{"question":"c","answer":"d"},{"question":"e","answer":"f"}]}`, ".json", true},
		{"extra top level", `{"name":"x","riddles":[{"question":"a","answer":"b"},{"question":"c","answer":"d"},{"question":"e","answer":"f"}]}`, ".json", true},
		{"wrong type", `{"riddles":[{"question":1,"answer":"b"},{"question":"c","answer":"d"},{"question":"e","answer":"f"}]}`, ".json", true},
		{"duplicate", `{"riddles":[{"question":"a","answer":"b"},{"question":"A ","answer":"d"},{"question":"e","answer":"f"}]}`, ".json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBank([]byte(tt.data), tt.ext)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 3, b.Len())
			assert.Equal(t, "bottle", b.Riddles()[2].Answer, "answers are trimmed")
		})
	}
}

func TestLoadBank(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "riddles.toml")
	require.NoError(t, os.WriteFile(path, []byte(validTOMLBank), 0o644))

	b, err := LoadBank(path)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Len())

	_, err = LoadBank(filepath.Join(dir, "missing.json"))
	var bankErr *BankError
	require.True(t, errors.As(err, &bankErr))
	assert.Contains(t, bankErr.Path, "missing.json")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
