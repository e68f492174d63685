package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/docminder/docminder/internal/core/domain"
)

type analyzerFake struct {
	result *domain.AnalyzerResult
	err    error
	calls  int
}

func (f *analyzerFake) Analyze(context.Context, string, string) (*domain.AnalyzerResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestProcessPrefersAnalyzerResult(t *testing.T) {
	analyzer := &analyzerFake{result: &domain.AnalyzerResult{
		Category: domain.CategoryDental,
		Items: []domain.ActionItem{
			{Kind: domain.ActionTodo, Title: "Task", Category: domain.CategoryDental},
		},
	}}
	eng := New(analyzer, nil, nil)

	category, items := eng.Process(context.Background(), "pay the bill", "invoice.pdf")
	if category != domain.CategoryDental {
		t.Fatalf("expected analyzer category, got %s", category)
	}
	if len(items) != 1 || items[0].Title != "Task" {
		t.Fatalf("expected analyzer items, got %+v", items)
	}
}

func TestProcessFallsBackOnAnalyzerError(t *testing.T) {
	text := "Please refill your prescription by 03/10/2024"
	filename := "rx.pdf"

	local := New(nil, nil, nil)
	wantCategory, wantItems := local.Process(context.Background(), text, filename)

	var reason string
	eng := New(&analyzerFake{err: errors.New("deadline exceeded")}, nil, func(r string) { reason = r })
	category, items := eng.Process(context.Background(), text, filename)

	if category != wantCategory {
		t.Fatalf("fallback category %s differs from local pipeline %s", category, wantCategory)
	}
	if !reflect.DeepEqual(items, wantItems) {
		t.Fatalf("fallback items differ from local pipeline:\n%+v\n%+v", items, wantItems)
	}
	if reason != "analyzer_error" {
		t.Fatalf("expected analyzer_error fallback reason, got %q", reason)
	}
}

func TestProcessFallsBackOnEmptyAnalyzerResult(t *testing.T) {
	var reason string
	eng := New(&analyzerFake{result: nil}, nil, func(r string) { reason = r })

	category, items := eng.Process(context.Background(), "dentist tooth cleaning visit", "")
	if category != domain.CategoryDental {
		t.Fatalf("expected local Dental classification, got %s", category)
	}
	if len(items) == 0 {
		t.Fatalf("expected local extraction to produce items")
	}
	if reason != "empty_result" {
		t.Fatalf("expected empty_result fallback reason, got %q", reason)
	}
}

func TestProcessRetriesAnalyzerOnEveryCall(t *testing.T) {
	analyzer := &analyzerFake{err: errors.New("unavailable")}
	eng := New(analyzer, nil, nil)

	eng.Process(context.Background(), "text", "a.txt")
	eng.Process(context.Background(), "text", "a.txt")
	if analyzer.calls != 2 {
		t.Fatalf("analyzer availability must be evaluated fresh per call, got %d calls", analyzer.calls)
	}
}

func TestProcessNormalizesAnalyzerCategories(t *testing.T) {
	analyzer := &analyzerFake{result: &domain.AnalyzerResult{
		Category: "Veterinary",
		Items: []domain.ActionItem{
			{Kind: domain.ActionTodo, Title: "Task", Category: "Bogus"},
			{Kind: domain.ActionAppointment, Title: "Visit", Category: domain.CategoryMedical},
		},
	}}
	eng := New(analyzer, nil, nil)

	category, items := eng.Process(context.Background(), "text", "")
	if category != domain.CategoryOther {
		t.Fatalf("unknown analyzer category must normalize to Other, got %s", category)
	}
	if items[0].Category != domain.CategoryOther {
		t.Fatalf("unknown item category must normalize to Other, got %s", items[0].Category)
	}
	if items[1].Category != domain.CategoryMedical {
		t.Fatalf("valid item category must survive, got %s", items[1].Category)
	}
}

func TestProcessEmptyInputIsWellFormed(t *testing.T) {
	eng := New(nil, nil, nil)
	category, items := eng.Process(context.Background(), "", "")
	if category != domain.CategoryOther {
		t.Fatalf("expected Other for empty input, got %s", category)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items for empty input, got %+v", items)
	}
}
