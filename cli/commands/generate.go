package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veldtlabs/genlive/pkg/core/types"
)

var generateStream bool

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate a response for a prompt",
	Long:  `Generate sends a single prompt to the model and prints the response.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().BoolVar(&generateStream, "stream", false, "stream the response as it is generated")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	client := newClient()
	prompt := strings.Join(args, " ")

	if !generateStream {
		text, err := client.Models.GenerateText(cmd.Context(), modelFlag, prompt)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	stream, err := client.Models.GenerateStream(cmd.Context(), modelFlag, &types.GenerateRequest{
		Contents: []types.Content{types.UserText(prompt)},
	})
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		chunk, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), chunk.Text())
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
