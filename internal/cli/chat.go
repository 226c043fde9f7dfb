package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/finlark/onboard/internal/advisor"
	"github.com/finlark/onboard/internal/application"
	"github.com/finlark/onboard/internal/config"
	"github.com/finlark/onboard/internal/conversation"
	"github.com/finlark/onboard/internal/domain"
	"github.com/finlark/onboard/internal/genai"
	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Run an interactive onboarding session in the terminal",
		Long: "chat drives the full onboarding pipeline from the terminal: " +
			"conversation and application stores, prompt assembly, and the Gemini API. " +
			"Commands: /reset, /phase, /data, /doc <path>, /quit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if cfg.API.Key == "" {
				return fmt.Errorf("no API key configured — set GEMINI_API_KEY or api.key in %s", cfgFile)
			}

			client := genai.NewGeminiClient(cfg.API.Key, cfg.API.Model)
			runner := advisor.NewRunner(client, conversation.NewStore(), application.NewStore(), log)

			return chatLoop(cmd.Context(), runner, os.Stdin)
		},
	}
	return cmd
}

func chatLoop(ctx context.Context, runner *advisor.Runner, in *os.File) error {
	conv := runner.Conversation()
	fmt.Printf("session %s — phase %s. Type a message, or /quit to exit.\n", conv.ID(), conv.Phase())

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if done, err := runCommand(ctx, runner, line); err != nil {
				fmt.Println(err)
			} else if done {
				return nil
			}
			continue
		}

		msg, err := runner.Send(ctx, line)
		if err != nil {
			log.Error().Err(err).Msg("turn failed")
		}
		printAssistant(msg)
	}
}

func runCommand(ctx context.Context, runner *advisor.Runner, line string) (done bool, err error) {
	conv := runner.Conversation()
	app := runner.Application()

	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return true, nil
	case "/reset":
		conv.Reset()
		app.Reset()
		fmt.Printf("session reset — new session %s\n", conv.ID())
	case "/phase":
		fmt.Printf("phase: %s\n", conv.Phase())
	case "/data":
		data, _ := json.MarshalIndent(app.Snapshot(), "", "  ")
		fmt.Println(string(data))
	case "/doc":
		if len(fields) < 2 {
			return false, fmt.Errorf("usage: /doc <path>")
		}
		return false, attachDocument(ctx, runner, fields[1])
	default:
		return false, fmt.Errorf("unknown command: %s", fields[0])
	}
	return false, nil
}

func attachDocument(ctx context.Context, runner *advisor.Runner, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	doc, err := runner.ExtractDocument(ctx, filepath.Base(path), data, mimeType)
	if err != nil {
		return err
	}
	fmt.Printf("document classified as %s (confidence %.2f)\n", doc.Type, doc.Confidence)
	for k, v := range doc.Data {
		fmt.Printf("  %s: %s\n", k, v)
	}
	return nil
}

func printAssistant(msg domain.Message) {
	fmt.Println(msg.Content)
	if msg.UIAction != nil {
		fmt.Println(renderAction(msg.UIAction))
	}
}

// renderAction turns a UI directive into a terminal hint, standing in for
// the interactive controls a browser UI would render.
func renderAction(a *domain.UIAction) string {
	switch a.Type {
	case domain.ActionButtons:
		var payload struct {
			Options []string `json:"options"`
		}
		if err := json.Unmarshal(a.Data, &payload); err != nil || len(payload.Options) == 0 {
			return "[options]"
		}
		var b strings.Builder
		b.WriteString("options:")
		for i, opt := range payload.Options {
			fmt.Fprintf(&b, "\n  %d) %s", i+1, opt)
		}
		return b.String()
	case domain.ActionShowImage:
		var name string
		if err := json.Unmarshal(a.Data, &name); err != nil {
			return "[image]"
		}
		return fmt.Sprintf("[image: %s]", name)
	case domain.ActionFileRequest:
		return "[document requested — attach one with /doc <path>]"
	case domain.ActionShowPaymentForm:
		return "[payment form — reply once payment details are submitted]"
	default:
		return fmt.Sprintf("[%s]", a.Type)
	}
}
