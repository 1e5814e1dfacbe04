package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  strategy  ", Value: "  greedy  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "strategy" || fields[0].String != "greedy" {
		t.Fatalf("unexpected strategy field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	// Ensure logging with the fallback logger does not panic.
	enriched.Info("another log")
}

func TestSearchFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	logger.With(SearchFields("optimal", 4)...).Info("test log")

	ctx := observed.All()[0].ContextMap()
	if ctx[FieldStrategy] != "optimal" {
		t.Fatalf("expected strategy field to be optimal, got %v", ctx[FieldStrategy])
	}
	if ctx[FieldPoolSize] != int64(4) {
		t.Fatalf("expected pool size 4, got %v", ctx[FieldPoolSize])
	}

	fields := SearchFields("", 0)
	if len(fields) != 1 || fields[0].Key != FieldPoolSize {
		t.Fatalf("expected only the pool size field, got %+v", fields)
	}
}

func TestCandidates(t *testing.T) {
	field := Candidates("hired", []string{"Alice Liddell (a1)", "Bob"}, 5)
	if field.Key != "hired" {
		t.Fatalf("unexpected key %q", field.Key)
	}

	core, observed := observer.New(zapcore.InfoLevel)
	zap.New(core).Info("test log", field)

	got, ok := observed.All()[0].ContextMap()["hired"].([]any)
	if !ok || len(got) != 2 {
		t.Fatalf("unexpected hired field: %#v", observed.All()[0].ContextMap()["hired"])
	}
	if got[0] != "Alice..." || got[1] != "Bob" {
		t.Fatalf("unexpected labels: %v", got)
	}
}
