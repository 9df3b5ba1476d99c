package richtext

import (
	"encoding/json"
	"errors"
	"fmt"
)

// formatVersion identifies the serialized document layout. Decode rejects
// versions it does not know so later builds can evolve the envelope.
const formatVersion = 1

// ErrCorruptDocument is returned by Decode when stored bytes are not a valid
// document. Callers fall back to the note's plain text instead of failing the
// whole load.
var ErrCorruptDocument = errors.New("corrupt styled document")

type envelope struct {
	Version int    `json:"v"`
	Text    string `json:"text"`
	Runs    []Run  `json:"runs,omitempty"`
}

// Encode serializes a document into a self-describing byte form suitable for
// storage. It succeeds for any document built through this package.
func Encode(doc Document) ([]byte, error) {
	data, err := json.Marshal(envelope{
		Version: formatVersion,
		Text:    doc.text,
		Runs:    doc.runs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// Decode is the inverse of Encode. Malformed bytes, unknown versions, and
// runs pointing outside the text all report ErrCorruptDocument.
func Decode(data []byte) (Document, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	if env.Version != formatVersion {
		return Document{}, fmt.Errorf("%w: unknown version %d", ErrCorruptDocument, env.Version)
	}
	limit := len([]rune(env.Text))
	for _, r := range env.Runs {
		if r.Start < 0 || r.End > limit || r.Start >= r.End {
			return Document{}, fmt.Errorf("%w: run [%d,%d) outside text of %d runes",
				ErrCorruptDocument, r.Start, r.End, limit)
		}
	}
	return NewStyledDocument(env.Text, env.Runs), nil
}
