package agent

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/date"
	"google.golang.org/genai"
)

func testSimulator(t *testing.T) *optimaxx.Simulator {
	t.Helper()
	c, err := optimaxx.NewCatalog(
		optimaxx.Instrument{Name: "Alpha", Description: "steady growth", Symbol: "AAA"},
		optimaxx.Instrument{Name: "Beta", Description: "flat", Symbol: "BBB"},
	)
	if err != nil {
		t.Fatal(err)
	}
	p := optimaxx.NewStaticProvider().
		Daily("AAA", date.New(2024, 1, 2), 100, 100.1, 100.2).
		Daily("BBB", date.New(2024, 1, 2), 50, 50, 50)
	return optimaxx.NewSimulator(c, p)
}

func TestAnalystFunctions(t *testing.T) {
	lib := NewLibrary(AnalystFunctions(testSimulator(t)))
	ctx := context.Background()

	resp := lib(ctx, &genai.FunctionCall{ID: "1", Name: "Catalog"})
	out, _ := resp.Response["output"].(string)
	if !strings.Contains(out, "| Alpha | AAA | steady growth |") {
		t.Errorf("Catalog output = %q", out)
	}

	resp = lib(ctx, &genai.FunctionCall{ID: "2", Name: "Simulate", Args: map[string]any{
		"instruments": []any{"Alpha", "Beta"},
		"capital":     1e6,
		"horizon":     float64(2),
		"method":      "arithmetic",
	}})
	if resp.ID != "2" || resp.Name != "Simulate" {
		t.Errorf("Simulate response id, name = %q, %q", resp.ID, resp.Name)
	}
	out, _ = resp.Response["output"].(string)
	for _, want := range []string{"# Portfolio simulation", "over 2 years, arithmetic method", "| Alpha |", "| Beta |"} {
		if !strings.Contains(out, want) {
			t.Errorf("Simulate output does not contain %q:\n%s", want, out)
		}
	}
}

func TestAnalystFunctionsErrors(t *testing.T) {
	lib := NewLibrary(AnalystFunctions(testSimulator(t)))
	ctx := context.Background()

	tests := []struct {
		name string
		call *genai.FunctionCall
	}{
		{"unknown function", &genai.FunctionCall{Name: "Trade"}},
		{"missing instruments", &genai.FunctionCall{Name: "Simulate", Args: map[string]any{}}},
		{"unknown instrument", &genai.FunctionCall{Name: "Simulate", Args: map[string]any{"instruments": []any{"Gamma"}}}},
		{"capital too low", &genai.FunctionCall{Name: "Simulate", Args: map[string]any{"instruments": []any{"Alpha"}, "capital": 1000.0}}},
		{"bad method", &genai.FunctionCall{Name: "Simulate", Args: map[string]any{"instruments": []any{"Alpha"}, "method": "median"}}},
		{"bad horizon type", &genai.FunctionCall{Name: "Simulate", Args: map[string]any{"instruments": []any{"Alpha"}, "horizon": "five"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := lib(ctx, tt.call)
			if _, ok := resp.Response["error"]; !ok {
				t.Errorf("response = %v, want an error", resp.Response)
			}
		})
	}
}

func TestParseRequestDefaults(t *testing.T) {
	req, err := parseRequest(map[string]any{"instruments": []any{"Alpha"}})
	if err != nil {
		t.Fatalf("parseRequest() unexpected error = %v", err)
	}
	if !req.Capital.Equal(optimaxx.M(optimaxx.MinimumCapital, "MXN")) || req.Horizon != 1 || req.Method != optimaxx.Geometric {
		t.Errorf("parseRequest() = %+v", req)
	}
}

func TestExperts(t *testing.T) {
	analyst := NewAnalyst(testSimulator(t))
	a := New(&strings.Builder{}, strings.NewReader(""), NewTrader(), analyst)

	decls := a.Facilitator.Config.Tools[0].FunctionDeclarations
	if len(decls) != 2 || decls[0].Name != "Trader" || decls[1].Name != "Analyst" {
		t.Errorf("facilitator tools are not the experts")
	}
	if _, err := a.Facilitator.Ask(context.Background(), &genai.Part{Text: "hello"}); err == nil {
		t.Errorf("Ask() on a stopped expert should fail")
	}
	if NewCommentator().Config.SystemInstruction == nil {
		t.Errorf("commentator has no instructions")
	}
}

func TestAgentInput(t *testing.T) {
	var out strings.Builder
	a := New(&out, strings.NewReader("typed question\nlast line without newline"))
	queued := []string{"  ", "first prompt"}

	for _, want := range []string{"first prompt", "typed question", "last line without newline"} {
		got, err := a.next(&queued)
		if err != nil {
			t.Fatalf("next() unexpected error = %v", err)
		}
		if got != want {
			t.Errorf("next() = %q want %q", got, want)
		}
	}
	if _, err := a.next(&queued); err != io.EOF {
		t.Errorf("next() at the end error = %v want io.EOF", err)
	}
	if !strings.Contains(out.String(), "first prompt") {
		t.Errorf("queued prompts must be echoed, got %q", out.String())
	}
}

func TestAnswer(t *testing.T) {
	if got := answer(nil); got != "" {
		t.Errorf("answer(nil) = %q", got)
	}
	content := &genai.Content{Parts: []*genai.Part{{Text: "Hello "}, {Text: "world"}}}
	if got := answer(content); got != "Hello world" {
		t.Errorf("answer() = %q want %q", got, "Hello world")
	}
}

func TestExplanation(t *testing.T) {
	tests := []struct {
		name    string
		content *genai.Content
	}{
		{"nil content", nil},
		{"no parts", &genai.Content{}},
		{"blank text", &genai.Content{Parts: []*genai.Part{{Text: "  \n"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := explanation(tt.content); err == nil {
				t.Errorf("explanation() = %q want an error", got)
			}
		})
	}

	got, err := explanation(&genai.Content{Parts: []*genai.Part{{Text: "Returns were "}, {Text: "strong."}}})
	if err != nil || got != "Returns were strong." {
		t.Errorf("explanation() = %q, %v want %q", got, err, "Returns were strong.")
	}
}
