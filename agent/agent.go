// Package agent implements the interactive investment advisor behind the
// `assist` command: a single chat session grounded with the portfolio's
// current reports.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const systemInstruction = `
You are an assistant for a long-term investor using a dollar-cost-averaging
portfolio tool. The conversation starts with the current state of the
user's portfolio: its composition, cost basis, and market value as of a
date, and possibly the trace of a simulated recurring investment plan.

Ground every answer in those figures. Explain cost basis, market value,
weighted allocation, and schedules in plain language. You never give
personalized financial advice or predictions; when asked for them, explain
what the recorded figures do and do not say instead.
`

// Advisor is the AI assistant that handles the chat session.
type Advisor struct {
	w       io.Writer
	r       *bufio.Reader
	context []string // report documents seeding the conversation
	chat    *genai.Chat
}

// New creates a new Advisor writing to w and reading user input from r.
// The given reports (rendered holding/summary/trace documents) seed the
// conversation as grounding context.
func New(w io.Writer, r io.Reader, reports ...string) *Advisor {
	return &Advisor{
		w:       w,
		r:       bufio.NewReader(r),
		context: reports,
	}
}

// Start creates the chat session and feeds it the grounding reports.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	if len(a.context) == 0 {
		return nil
	}
	seed := "Here is the current state of my portfolio:\n\n" + strings.Join(a.context, "\n\n")
	_, err = a.ask(ctx, seed)
	return err
}

// ask sends one message and returns the text of the first candidate.
func (a *Advisor) ask(ctx context.Context, message string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: message})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the advisor.
func (a *Advisor) Run(ctx context.Context, client *genai.Client) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to pman assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		input, err := a.r.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil // Clean exit on Ctrl+D
			}
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
