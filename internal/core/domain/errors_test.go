package domain_test

import (
	"testing"

	"go.trai.ch/forge/internal/core/domain"
)

func TestError_Builders(t *testing.T) {
	err := domain.NewError(domain.DuplicateDependencyName, "dependency 'zlib' is declared more than once").
		WithSpan(domain.NewSpan(120, 126)).
		WithSecondary(domain.NewSpan(40, 46), "previously defined here")

	if err.Kind != domain.DuplicateDependencyName {
		t.Errorf("unexpected kind: %s", err.Kind)
	}
	if err.Error() != "dependency 'zlib' is declared more than once" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if err.Span == nil || err.Span.Start != 120 || err.Span.End != 126 {
		t.Errorf("unexpected primary span: %+v", err.Span)
	}
	if err.Secondary == nil || err.Secondary.Message != "previously defined here" {
		t.Errorf("unexpected secondary: %+v", err.Secondary)
	}
	if err.Secondary.Span.Start != 40 {
		t.Errorf("unexpected secondary span: %+v", err.Secondary.Span)
	}
}

func TestError_WithoutSpans(t *testing.T) {
	err := domain.NewError(domain.IncorrectCompiler, "compiler 'zig-cc' not found")

	if err.Span != nil {
		t.Error("expected no primary span")
	}
	if err.Secondary != nil {
		t.Error("expected no secondary label")
	}
}
