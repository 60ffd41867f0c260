package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/nithin218/mindmate"
)

// queryCmd runs a single question through the pipeline and prints the answer.
var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Ask a single question and print the composed answer",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		question := strings.Join(args, " ")
		showTrace, _ := cmd.Flags().GetBool("trace")
		plain, _ := cmd.Flags().GetBool("plain")

		_, logger, client, err := loadSetup(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		assistant, err := mindmate.New(client, mindmate.WithLogger(logger))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		state, err := assistant.Respond(cmd.Context(), question)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		printMarkdown(state.FinalOutput, plain)

		if showTrace {
			var sb strings.Builder
			sb.WriteString("\n---\n\n## Trace\n\n")
			for i, entry := range state.Trace {
				fmt.Fprintf(&sb, "%d. **%s**: %s\n", i+1, entry.Role, entry.Content)
			}
			fmt.Fprintf(&sb, "\nEmotion: %s | Retries: %d\n", state.Emotion, state.RetryCount)
			printMarkdown(sb.String(), plain)
		}
	},
}

func printMarkdown(text string, plain bool) {
	if !plain {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			if out, err := renderer.Render(text); err == nil {
				fmt.Print(out)
				return
			}
		}
	}
	fmt.Println(text)
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().BoolP("trace", "t", false, "Print the per-stage trace after the answer")
	queryCmd.Flags().Bool("plain", false, "Disable markdown rendering")
}
