package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/adept/internal/access"
	"github.com/abhisek/adept/internal/adapt"
	"github.com/abhisek/adept/internal/app"
	"github.com/abhisek/adept/internal/content"
	"github.com/abhisek/adept/internal/diagnostic"
	"github.com/abhisek/adept/internal/llm"
	"github.com/abhisek/adept/internal/orchestrate"
	"github.com/abhisek/adept/internal/session"
	"github.com/abhisek/adept/internal/store"
	"github.com/abhisek/adept/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	deps, cleanup, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Run(deps)
}

// buildDeps opens the store and wires every service the app needs. The
// returned cleanup closes the store and must always be called.
func buildDeps(cmd *cobra.Command) (app.Deps, func(), error) {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return app.Deps{}, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return app.Deps{}, nil, fmt.Errorf("open store: %w", err)
	}

	eventRepo := st.EventRepo()
	deps := app.Deps{
		UserID:     resolveUserID(cmd),
		Sessions:   session.NewManager(st.ProfileRepo(), eventRepo),
		Events:     eventRepo,
		Diagnostic: diagnostic.NewEngine(),
	}

	// The LLM provider is optional. Without it the diagnostic still runs
	// and adaptation falls back to rules; generation features are off.
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	}

	deps.Adapt = adapt.NewEngine(provider, adapt.DefaultConfig())
	if provider != nil {
		deps.Tutor = tutor.NewService(provider, tutor.DefaultConfig())
		deps.Content = content.NewService(provider, content.DefaultConfig())
		deps.Access = access.NewService(provider, access.DefaultConfig())
	}
	deps.Orchestrator = buildOrchestrator(provider, deps)

	return deps, func() { _ = st.Close() }, nil
}

// buildOrchestrator wires capability handlers so routed actions can be
// dispatched outside the TUI flow as well.
func buildOrchestrator(provider llm.Provider, deps app.Deps) *orchestrate.Orchestrator {
	orch := orchestrate.New(provider, orchestrate.DefaultConfig())

	orch.Register(orchestrate.CapDiagnostic, orchestrate.HandlerFunc(
		func(ctx context.Context, d orchestrate.Decision, st *session.State, userInput string) (*orchestrate.Result, error) {
			qs := deps.Diagnostic.Questions(st.Topic)
			lines := make([]string, 0, len(qs))
			for i, q := range qs {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, q.Text))
			}
			return &orchestrate.Result{
				Text: fmt.Sprintf("Diagnostic for %s (%d questions):\n%s",
					st.Topic, len(qs), strings.Join(lines, "\n")),
				Data: qs,
			}, nil
		}))

	orch.Register(orchestrate.CapTutor, orchestrate.HandlerFunc(
		func(ctx context.Context, d orchestrate.Decision, st *session.State, userInput string) (*orchestrate.Result, error) {
			if deps.Tutor == nil {
				return nil, fmt.Errorf("tutor unavailable: no LLM provider configured")
			}
			concept := userInput
			if concept == "" {
				concept = st.Topic
			}
			exp, err := deps.Tutor.Explain(ctx, tutor.ExplainInput{
				Topic:   st.Topic,
				Concept: concept,
				Profile: st.Profile,
			})
			if err != nil {
				return nil, err
			}
			return &orchestrate.Result{Text: exp.Content, Data: exp}, nil
		}))

	orch.Register(orchestrate.CapContent, orchestrate.HandlerFunc(
		func(ctx context.Context, d orchestrate.Decision, st *session.State, userInput string) (*orchestrate.Result, error) {
			if deps.Content == nil {
				return nil, fmt.Errorf("content generation unavailable: no LLM provider configured")
			}
			qs, err := deps.Content.GenerateMCQs(ctx, st.Topic, st.Profile)
			if err != nil {
				return nil, err
			}
			return &orchestrate.Result{
				Text: fmt.Sprintf("Generated %d practice questions on %s.", len(qs), st.Topic),
				Data: qs,
			}, nil
		}))

	orch.Register(orchestrate.CapAccess, orchestrate.HandlerFunc(
		func(ctx context.Context, d orchestrate.Decision, st *session.State, userInput string) (*orchestrate.Result, error) {
			if deps.Access == nil {
				return nil, fmt.Errorf("accessibility transforms unavailable: no LLM provider configured")
			}
			res := deps.Access.Transform(ctx, userInput, access.ModeSimplified)
			return &orchestrate.Result{Text: res.Content, Data: res}, nil
		}))

	return orch
}
