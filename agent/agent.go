// Package agent implements the AI assistants built on Gemini: an interactive
// assistant answering questions about the instruments and simulations, and a
// one-shot commentator explaining a simulation report.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	print       func(io.Writer, string)
	Facilitator *Expert
	Experts     []*Expert
}

// New creates a new Agent.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), an
// io.Reader for user input (e.g., os.Stdin), and the experts the facilitator
// can consult.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		print:       func(w io.Writer, md string) { fmt.Fprintln(w, md) },
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
	}
}

// WithPrinter sets the function used to print the answers, they are markdown.
func (a *Agent) WithPrinter(print func(io.Writer, string)) *Agent {
	a.print = print
	return a
}

// Start creates the Gemini chats of the facilitator and its experts.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// next returns the next user input: queued prompts first, then lines read from the input.
// It returns io.EOF when the session is over.
func (a *Agent) next(queued *[]string) (string, error) {
	for len(*queued) > 0 {
		input := strings.TrimSpace((*queued)[0])
		*queued = (*queued)[1:]
		if input != "" {
			fmt.Fprintln(a.w, input)
			return input, nil
		}
	}
	line, err := a.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// answer returns the text of the model answer.
func answer(content *genai.Content) string {
	var b strings.Builder
	if content == nil {
		return ""
	}
	for _, part := range content.Parts {
		b.WriteString(part.Text)
	}
	return b.String()
}

// Run starts the interactive session: questions are read until 'bye' or the end of the input.
// The prompts are asked first, as if they were typed.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to optimaxx assist. Type 'bye' to exit.")
	for {
		fmt.Fprint(a.w, prompt)
		input, err := a.next(&prompts)
		if err == io.EOF {
			fmt.Fprintln(a.w)
			return nil
		}
		if err != nil {
			return err
		}
		switch input {
		case "":
			continue
		case "bye":
			return nil
		}

		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.print(a.w, answer(content))
	}
}
