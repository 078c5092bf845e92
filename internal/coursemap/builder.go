package coursemap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"coursegen/internal/contentstore"
	"coursegen/internal/generate"
	"coursegen/internal/syllabus"
)

// Generator is the external generation collaborator: a prompt pair in, a
// raw candidate string out. Transient failures surface as retryable
// errors; the builder owns the retry policy.
type Generator interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

// Builder turns syllabus units into course map chapters: one generation
// call and one recovery pass per topic, one persisted record per topic,
// strictly in document order.
type Builder struct {
	gen   Generator
	store *contentstore.Store
	log   *slog.Logger
}

func NewBuilder(gen Generator, store *contentstore.Store, log *slog.Logger) *Builder {
	return &Builder{gen: gen, store: store, log: log}
}

// BuildChapter processes one unit's topics sequentially and returns the
// finished chapter. Cancellation stops after the in-flight topic; topics
// already persisted survive on disk regardless.
func (b *Builder) BuildChapter(ctx context.Context, class, subject string, unit syllabus.Unit) *Chapter {
	ch := &Chapter{
		ID:          unit.Number,
		Class:       class,
		ChapterName: unit.Name,
		Title:       fmt.Sprintf("Unit %d: %s", unit.Number, unit.Name),
		Topics:      []TopicRecord{},
	}

	for _, topic := range unit.Topics {
		if ctx.Err() != nil {
			break
		}
		ch.Topics = append(ch.Topics, b.buildTopic(ctx, class, subject, unit.Name, topic))
	}
	return ch
}

// buildTopic produces one terminal record: direct valid parse,
// cascade-repaired, or tagged failure.
func (b *Builder) buildTopic(ctx context.Context, class, subject, chapter, topic string) TopicRecord {
	log := b.log.With("class", class, "subject", subject, "chapter", chapter, "topic", topic)
	start := time.Now()

	candidate := b.generateCandidate(ctx, class, subject, chapter, topic, log)
	key := contentstore.TopicKey{Class: class, Subject: subject, Chapter: chapter, Topic: topic}

	if data, ok := generate.Direct(candidate); ok {
		b.persistContent(key, data, log)
		log.Info("topic generated", "outcome", "direct", "duration_ms", time.Since(start).Milliseconds())
		return successRecord(topic, data, candidate)
	}

	res := generate.Recover(candidate)
	if res.OK() {
		b.persistContent(key, res.Data, log)
		log.Info("topic generated", "outcome", "repaired", "duration_ms", time.Since(start).Milliseconds())
		return successRecord(topic, res.Data, res.Text)
	}

	// Terminal: keep the best-effort cleaned text for audit and move on.
	if path, err := b.store.PutError(key, res.Text); err != nil {
		log.Error("error record write failed", "path", path, "error", err)
	}
	log.Warn("topic unrecoverable", "parse_error", res.Err, "duration_ms", time.Since(start).Milliseconds())
	return TopicRecord{
		Name:      topic,
		Notes:     []generate.NoteSection{},
		Formulas:  []generate.FormulaSection{},
		Realworld: []generate.RealWorldItem{},
		Failed:    true,
		Raw:       res.Text,
	}
}

// generateCandidate calls the collaborator with the fixed retry policy.
// Exhausted retries degrade to an empty candidate, which the recovery
// cascade routes to the tagged-failure outcome.
func (b *Builder) generateCandidate(ctx context.Context, class, subject, chapter, topic string, log *slog.Logger) string {
	user := generate.BuildTopicPrompt(class, subject, chapter, topic)

	var lastErr error
	for attempt := 0; attempt < generate.MaxAttempts; attempt++ {
		text, err := b.gen.Chat(ctx, generate.SystemPrompt, user)
		if err == nil {
			return text
		}
		lastErr = err
		if !generate.IsRetryable(err) {
			break
		}
		log.Warn("retryable generation error", "attempt", attempt, "error", err)
		select {
		case <-time.After(generate.RetryBackoff):
		case <-ctx.Done():
			return ""
		}
	}
	log.Error("generation failed, degrading to empty candidate", "error", lastErr)
	return ""
}

func (b *Builder) persistContent(key contentstore.TopicKey, data map[string]any, log *slog.Logger) {
	if path, err := b.store.PutContent(key, data); err != nil {
		// Write failure loses the file, not the run: the in-memory
		// record still carries the content.
		log.Error("topic record write failed", "path", path, "error", err)
	}
}

func successRecord(topic string, data map[string]any, raw string) TopicRecord {
	content := generate.ContentFromData(data)
	return TopicRecord{
		Name:      topic,
		Notes:     content.Notes,
		Formulas:  content.Formulas,
		Realworld: content.Realworld,
		Raw:       raw,
	}
}
