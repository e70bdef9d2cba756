package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/optimaxx"
	"github.com/etnz/optimaxx/docs"
	"github.com/etnz/optimaxx/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is considering an investment in a portfolio of ETFs, in Mexican pesos, and wants
			to understand what the historical returns of these instruments suggest.
			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
			Never present a simulated return as a promise: past returns do not guarantee future returns.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns an expert with access to Google Search for news about the instruments.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		Very well aware of all the ETFs, their issuers and the markets they track,
		and about the latest news about them.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a expert in Trading, you can search and find about anything related to
			ETFs, indices, markets, and issuers. You Leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latests news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert that runs simulations on the catalog with sim.
func NewAnalyst(sim *optimaxx.Simulator) *Expert {
	lib := AnalystFunctions(sim)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He knows the catalog of instruments available for investment
		and can simulate the historical return of any selection of them, for a capital and a horizon.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a quantitative analyst.
				You know how to use the Tools to list the available instruments and to simulate
				a portfolio: its average annualized return and the projected final capital.
				Instruments are always referred to by their exact name in the catalog, look it up first.

				The two methods used to compute returns are explained below:

			` + must(docs.GetTopic("methods"))}}},
		},
		Library: NewLibrary(lib),
	}
}

// AnalystFunctions returns the functions the Analyst can call.
func AnalystFunctions(sim *optimaxx.Simulator) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Catalog",
				Description: "Catalog lists the instruments available for investment, with their name, symbol and description.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown-formatted table of all the instruments.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				return success(id, "Catalog", renderer.RenderCatalog(renderer.NewCatalog(sim.Catalog)))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Simulate",
				Description: "Simulate computes the historical annualized return of a selection of instruments and projects the final capital.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"instruments": {
							Type:        genai.TypeArray,
							Items:       &genai.Schema{Type: genai.TypeString},
							Description: "The names of the instruments, as listed in the catalog.",
						},
						"capital": {
							Type:        genai.TypeNumber,
							Description: fmt.Sprintf("The capital invested in %s, at least %d.", optimaxx.DefaultCurrency, optimaxx.MinimumCapital),
						},
						"horizon": {
							Type:        genai.TypeInteger,
							Description: fmt.Sprintf("The investment horizon in years, between %d and %d.", optimaxx.MinHorizon, optimaxx.MaxHorizon),
						},
						"method": {
							Type:        genai.TypeString,
							Enum:        []string{optimaxx.Geometric.String(), optimaxx.Arithmetic.String()},
							Description: "The method used to compute the average daily return, geometric by default.",
						},
					},
					Required: []string{"instruments"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown-formatted simulation report.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				req, err := parseRequest(args)
				if err != nil {
					return failure(id, "Simulate", err)
				}
				res, err := sim.Simulate(ctx, req)
				if err != nil {
					return failure(id, "Simulate", err)
				}
				return success(id, "Simulate", renderer.RenderSimulation(renderer.NewSimulation(res)))
			},
		},
	}
}

// parseRequest reads a simulation request from function call arguments.
func parseRequest(args map[string]any) (optimaxx.Request, error) {
	req := optimaxx.Request{
		Capital: optimaxx.M(optimaxx.MinimumCapital, optimaxx.DefaultCurrency),
		Horizon: optimaxx.MinHorizon,
		Method:  optimaxx.Geometric,
	}
	if v, ok := args["capital"]; ok {
		capital, ok := v.(float64)
		if !ok {
			return req, fmt.Errorf("argument 'capital' is not a number as expected but %T", v)
		}
		req.Capital = optimaxx.M(capital, optimaxx.DefaultCurrency)
	}
	if v, ok := args["horizon"]; ok {
		horizon, ok := v.(float64)
		if !ok {
			return req, fmt.Errorf("argument 'horizon' is not a number as expected but %T", v)
		}
		req.Horizon = int(horizon)
	}
	if v, ok := args["method"]; ok {
		s, ok := v.(string)
		if !ok {
			return req, fmt.Errorf("argument 'method' is not a string as expected but %T", v)
		}
		m, err := optimaxx.ParseMethod(s)
		if err != nil {
			return req, err
		}
		req.Method = m
	}
	list, ok := args["instruments"].([]any)
	if !ok {
		return req, fmt.Errorf("argument 'instruments' is not a list as expected but %T", args["instruments"])
	}
	for _, v := range list {
		name, ok := v.(string)
		if !ok {
			return req, fmt.Errorf("argument 'instruments' must contain names, got %T", v)
		}
		req.Instruments = append(req.Instruments, name)
	}
	return req, nil
}

// NewCommentator returns the expert that explains simulation reports.
func NewCommentator() *Expert {
	return &Expert{
		Name:      "Commentator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You explain portfolio simulation reports to non-specialist investors, in plain language and in markdown.
			Comment on the average annualized return, the projected capital, and the spread between instruments.
			Mention every skipped instrument and why it was skipped.
			Remind that the figures are derived from past prices and do not guarantee future returns.
			Be concise: a few short paragraphs at most.

			` + must(docs.GetTopic("methods"))}}},
		},
	}
}

// Explain asks the commentator to explain the markdown report.
func Explain(ctx context.Context, client *genai.Client, report string) (string, error) {
	e := NewCommentator()
	if err := e.Start(ctx, client); err != nil {
		return "", err
	}
	content, err := e.Ask(ctx, &genai.Part{Text: "Explain this simulation report:\n\n" + report})
	if err != nil {
		return "", err
	}
	return explanation(content)
}

// explanation returns the text of the commentator's answer, which must not be empty.
func explanation(content *genai.Content) (string, error) {
	text := answer(content)
	if strings.TrimSpace(text) == "" {
		return "", errors.New("no explanation in the commentator's answer")
	}
	return text, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
