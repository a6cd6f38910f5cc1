// Package memory implements the conversational memory core: the entry
// model with ingestion-time enrichment, the durable store contract, the
// TTL-bound index cache, and the relevance search engine.
package memory

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Speaker identifies who produced an utterance.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerCompanion Speaker = "companion"
)

// Tone is the emotional tone derived from an entry's content at ingestion.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// Entry is an immutable record of one utterance or derived fact.
//
// Topics, Tone, and Searchable are pure functions of Content computed once
// at ingestion and never recomputed afterward, so relevance scoring stays
// deterministic across cache reloads.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Speaker   Speaker   `json:"speaker"`
	Content   string    `json:"content"`

	// Context is an optional free-text provenance tag
	// (e.g. "memory_file", "knowledge_health").
	Context string `json:"context,omitempty"`

	Topics []string `json:"topics,omitempty"`
	Tone   Tone     `json:"emotional_tone"`

	// Searchable is the lower-cased content, cached to avoid repeated
	// normalization during search. Not persisted; rebuilt at load time.
	Searchable string `json:"-"`
}

// NewEntry creates an enriched entry for the given utterance. The ID and
// timestamp are assigned here; topics and tone are derived from content.
func NewEntry(speaker Speaker, content, context string) Entry {
	return NewEntryAt(speaker, content, context, time.Now().UTC())
}

// NewEntryAt is NewEntry with an explicit creation time. Used by loaders
// that reinterpret existing artifacts and by tests.
func NewEntryAt(speaker Speaker, content, context string, ts time.Time) Entry {
	e := Entry{
		ID:        uuid.NewString(),
		Timestamp: ts,
		Speaker:   speaker,
		Content:   content,
		Context:   context,
		Topics:    DeriveTopics(content),
		Tone:      DeriveTone(content),
	}
	e.Searchable = strings.ToLower(content)
	return e
}

// Validate reports whether the entry carries the structurally required
// fields. Records failing this are skipped at load time rather than
// aborting the whole load.
func (e *Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("memory: entry missing id")
	}
	if strings.TrimSpace(e.Content) == "" {
		return fmt.Errorf("memory: entry %s has empty content", e.ID)
	}
	return nil
}

// Seal fills the derived fields that are not persisted (Searchable) and,
// for records from legacy sources that predate enrichment, derives topics
// and tone now — this is their ingestion point.
func (e *Entry) Seal() {
	if e.Searchable == "" {
		e.Searchable = strings.ToLower(e.Content)
	}
	if e.Tone == "" {
		e.Tone = DeriveTone(e.Content)
	}
	if e.Topics == nil {
		e.Topics = DeriveTopics(e.Content)
	}
	if e.Speaker == "" {
		e.Speaker = SpeakerUser
	}
}
