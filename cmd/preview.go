package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joe192839/Mindduel/internal/llm"
	"github.com/joe192839/Mindduel/internal/questiongen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions (no database, no session)",
	Long: `Generate and interactively answer trivia questions.

This is a stateless developer tool — no database, no session, no server.
Useful for evaluating question quality and tuning the prompt.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	previewCmd.Flags().Int("score", 0, "Simulated score, drives difficulty")
	previewCmd.Flags().StringSlice("category", nil, "Restrict to these categories (repeatable)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	score, _ := cmd.Flags().GetInt("score")
	categories, _ := cmd.Flags().GetStringSlice("category")

	llmCfg, ok := llm.DiscoverConfig()
	if !ok {
		return fmt.Errorf("no LLM API key found: set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY")
	}

	ctx := context.Background()
	provider, err := llm.NewProvider(ctx, llmCfg, logger)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := questiongen.New(provider, questiongen.DefaultConfig())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Generating %d questions at score %d...\n\n", count, score)

	var correct int
	var priorQuestions []string

	for i := 1; i <= count; i++ {
		q, err := gen.Generate(ctx, questiongen.GenerateInput{
			Categories:     categories,
			Score:          score,
			PriorQuestions: priorQuestions,
		})
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}

		priorQuestions = append(priorQuestions, q.Text)

		fmt.Printf("── Question %d/%d · %s · difficulty %d ──\n", i, count, q.Category, q.Difficulty)
		fmt.Println(q.Text)
		for j, a := range q.Answers {
			fmt.Printf("  %d) %s\n", j+1, a)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		// Accept a 1-4 index or the answer text itself.
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(q.Answers) {
			answer = q.Answers[n-1]
		}

		if strings.EqualFold(answer, q.CorrectAnswer) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.CorrectAnswer)
		}

		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}
