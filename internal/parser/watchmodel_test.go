package parser

import (
	"slices"
	"testing"
)

func TestExtractWatchModels_SixDigit(t *testing.T) {
	found := ExtractWatchModels("I have a Rolex 116500LN for sale")
	if !slices.Contains(found, "116500LN") {
		t.Errorf("Expected 116500LN in %v", found)
	}
}

func TestExtractWatchModels_SlashReference(t *testing.T) {
	found := ExtractWatchModels("Patek 5711/1A available")
	if !slices.Contains(found, "5711/1A") {
		t.Errorf("Expected 5711/1A in %v", found)
	}
}

func TestExtractWatchModels_SlashReferenceWithSuffix(t *testing.T) {
	found := ExtractWatchModels("5990/1A-001 in stock")
	if !slices.Contains(found, "5990/1A-001") {
		t.Errorf("Expected 5990/1A-001 in %v", found)
	}
}

func TestExtractWatchModels_FiveDigit(t *testing.T) {
	found := ExtractWatchModels("AP 15500ST ready")
	if !slices.Contains(found, "15500ST") {
		t.Errorf("Expected 15500ST in %v", found)
	}
}

func TestExtractWatchModels_Multiple(t *testing.T) {
	found := ExtractWatchModels("I have 116500LN and 126710BLRO")
	if len(found) < 2 {
		t.Fatalf("Expected at least 2 models, got %v", found)
	}
	if !slices.Contains(found, "116500LN") || !slices.Contains(found, "126710BLRO") {
		t.Errorf("Expected both references in %v", found)
	}
}

func TestExtractWatchModels_ChineseBrandName(t *testing.T) {
	found := ExtractWatchModels("勞力士 116500LN 有貨")
	if !slices.Contains(found, "116500LN") {
		t.Errorf("Expected 116500LN in %v", found)
	}
}

func TestExtractWatchModels_BrandPrefixDeduplicates(t *testing.T) {
	// "Rolex 116500LN" matches both the six-digit and the brand family; the
	// brand rule reports only the reference token, so one candidate remains.
	found := ExtractWatchModels("Rolex 116500LN, great condition")
	if len(found) != 1 {
		t.Fatalf("Expected exactly 1 model, got %v", found)
	}
	if found[0] != "116500LN" {
		t.Errorf("Expected 116500LN, got %q", found[0])
	}
}

func TestExtractWatchModels_None(t *testing.T) {
	if found := ExtractWatchModels("see you tomorrow at 10"); len(found) != 0 {
		t.Errorf("Expected no models, got %v", found)
	}
}
