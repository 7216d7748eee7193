package pipeline

import (
	"testing"

	"ai-news-scraper/internal/models"
)

func TestNewsSources(t *testing.T) {
	sources := NewsSources()

	if len(sources) == 0 {
		t.Fatal("Should have at least one news source")
	}

	for i, source := range sources {
		if source.Name == "" {
			t.Errorf("Source %d missing name", i)
		}
		if !models.IsValidURL(source.URL) {
			t.Errorf("Source %d (%s) has invalid URL %q", i, source.Name, source.URL)
		}
		if source.Domain == "" {
			t.Errorf("Source %d (%s) missing domain", i, source.Name)
		}
		if source.Priority < 1 || source.Priority > 10 {
			t.Errorf("Source %d (%s) priority should be 1-10, got %d", i, source.Name, source.Priority)
		}
		if source.Timeout <= 0 {
			t.Errorf("Source %d (%s) timeout should be positive, got %d", i, source.Name, source.Timeout)
		}
	}

	expected := []string{"IndiaAI Articles", "The Hindu Tech", "Analytics India Magazine"}
	found := make(map[string]bool)
	for _, source := range sources {
		found[source.Name] = true
	}
	for _, name := range expected {
		if !found[name] {
			t.Errorf("Expected source %q not found", name)
		}
	}

	t.Logf("Found %d news sources configured", len(sources))
}

func TestFilterSources(t *testing.T) {
	sources := []models.NewsSource{
		{Name: "A", Domain: "a.example.com", Enabled: true},
		{Name: "B", Domain: "b.example.com", Enabled: true},
		{Name: "C", Domain: "c.example.com", Enabled: false},
	}

	// Empty filter keeps all enabled sources
	got := FilterSources(sources, nil)
	if len(got) != 2 {
		t.Errorf("Expected 2 enabled sources, got %d", len(got))
	}

	// Filter by domain
	got = FilterSources(sources, []string{"b.example.com"})
	if len(got) != 1 || got[0].Name != "B" {
		t.Errorf("Expected only B, got %v", got)
	}

	// Filter by name
	got = FilterSources(sources, []string{"A"})
	if len(got) != 1 || got[0].Domain != "a.example.com" {
		t.Errorf("Expected only A, got %v", got)
	}

	// Disabled sources stay excluded even when matched
	got = FilterSources(sources, []string{"C"})
	if len(got) != 0 {
		t.Errorf("Disabled source should not pass the filter, got %v", got)
	}

	// Unknown filter matches nothing
	got = FilterSources(sources, []string{"nope.example.com"})
	if len(got) != 0 {
		t.Errorf("Expected no sources for unknown filter, got %v", got)
	}
}

func TestFilterSources_PriorityOrder(t *testing.T) {
	sources := []models.NewsSource{
		{Name: "Low", Domain: "low.example.com", Priority: 3, Enabled: true},
		{Name: "High", Domain: "high.example.com", Priority: 9, Enabled: true},
		{Name: "Mid1", Domain: "mid1.example.com", Priority: 6, Enabled: true},
		{Name: "Mid2", Domain: "mid2.example.com", Priority: 6, Enabled: true},
	}

	got := FilterSources(sources, nil)
	wantOrder := []string{"High", "Mid1", "Mid2", "Low"}
	if len(got) != len(wantOrder) {
		t.Fatalf("Expected %d sources, got %d", len(wantOrder), len(got))
	}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, got[i].Name)
		}
	}
}
