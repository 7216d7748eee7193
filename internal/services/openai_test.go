package services

import "testing"

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `{"heading": "AI story"}`,
			want:  `{"heading": "AI story"}`,
		},
		{
			name:  "json code fence",
			input: "```json\n{\"heading\": \"AI story\"}\n```",
			want:  `{"heading": "AI story"}`,
		},
		{
			name:  "bare code fence",
			input: "```\n{\"heading\": \"AI story\"}\n```",
			want:  `{"heading": "AI story"}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  {\"heading\": \"AI story\"}\n",
			want:  `{"heading": "AI story"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONResponse(tt.input); got != tt.want {
				t.Errorf("cleanJSONResponse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := NewOpenAIClient(); err == nil {
		t.Error("Expected an error when OPENAI_API_KEY is unset")
	}
}
