package challenge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// MinRiddles is the smallest bank LoadBank accepts.
const MinRiddles = 3

// Bank is an immutable set of riddles.
type Bank struct {
	riddles []Riddle
}

// defaultRiddles is the built-in bank.
var defaultRiddles = []Riddle{
	{Question: "What has to be broken before you can use it?", Answer: "egg"},
	{Question: "I speak without a mouth and hear without ears. What am I?", Answer: "echo"},
	{Question: "What has many keys but can’t open a single lock?", Answer: "piano"},
}

// DefaultBank returns the built-in riddles.
func DefaultBank() *Bank {
	b, _ := NewBank(defaultRiddles)
	return b
}

// NewBank builds a bank from riddles after trimming and checking them.
func NewBank(riddles []Riddle) (*Bank, error) {
	if len(riddles) < MinRiddles {
		return nil, fmt.Errorf("need at least %d riddles, got %d", MinRiddles, len(riddles))
	}

	seen := make(map[string]bool, len(riddles))
	out := make([]Riddle, 0, len(riddles))
	for i, r := range riddles {
		r.Question = strings.TrimSpace(r.Question)
		r.Answer = strings.TrimSpace(r.Answer)
		if r.Question == "" || r.Answer == "" {
			return nil, fmt.Errorf("riddle %d: question and answer must not be empty", i)
		}
		key := strings.ToLower(r.Question)
		if seen[key] {
			return nil, fmt.Errorf("riddle %d: duplicate question %q", i, r.Question)
		}
		seen[key] = true
		out = append(out, r)
	}
	return &Bank{riddles: out}, nil
}

// Riddles returns a copy of the bank's riddles.
func (b *Bank) Riddles() []Riddle {
	out := make([]Riddle, len(b.riddles))
	copy(out, b.riddles)
	return out
}

// Len returns the number of riddles.
func (b *Bank) Len() int {
	return len(b.riddles)
}

// BankError reports a riddle file that could not be used.
type BankError struct {
	Path string
	Err  error
}

func (e *BankError) Error() string {
	return fmt.Sprintf("riddle bank %s: %v", e.Path, e.Err)
}

func (e *BankError) Unwrap() error { return e.Err }

// bankFile is the on-disk layout shared by JSON and TOML banks.
type bankFile struct {
	Riddles []Riddle `json:"riddles" toml:"riddles"`
}

// LoadBank reads a riddle bank from a .json or .toml file.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &BankError{Path: path, Err: err}
	}

	bank, err := ParseBank(data, filepath.Ext(path))
	if err != nil {
		return nil, &BankError{Path: path, Err: err}
	}
	return bank, nil
}

// ParseBank decodes and validates a bank. ext selects the format
// (".json" or ".toml").
func ParseBank(data []byte, ext string) (*Bank, error) {
	raw, err := toJSON(data, ext)
	if err != nil {
		return nil, err
	}

	// Validate the generic document before binding it to structs, so
	// unknown fields and wrong types are reported by the schema.
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiledBankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var f bankFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode riddles: %w", err)
	}
	return NewBank(f.Riddles)
}

// toJSON converts a bank document to JSON bytes.
func toJSON(data []byte, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return data, nil
	case ".toml":
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert TOML: %w", err)
		}
		return raw, nil
	}
	return nil, fmt.Errorf("unsupported riddle file extension %q (want .json or .toml)", ext)
}

// bankSchema describes a riddle bank document.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"riddles": map[string]any{
			"type":     "array",
			"minItems": MinRiddles,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{"type": "string", "pattern": `\S`},
					"answer":   map[string]any{"type": "string", "pattern": `\S`},
				},
				"required":             []any{"question", "answer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"riddles"},
	"additionalProperties": false,
}

var (
	bankSchemaOnce     sync.Once
	bankSchemaCompiled *jsonschema.Schema
	bankSchemaErr      error
)

func compiledBankSchema() (*jsonschema.Schema, error) {
	bankSchemaOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, not Go ints.
		defBytes, err := json.Marshal(bankSchema)
		if err != nil {
			bankSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			bankSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://riddle-bank.json"
		if err := c.AddResource(url, def); err != nil {
			bankSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		bankSchemaCompiled, bankSchemaErr = c.Compile(url)
	})
	return bankSchemaCompiled, bankSchemaErr
}
