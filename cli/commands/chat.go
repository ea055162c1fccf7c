package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veldtlabs/genlive/pkg/live"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Hold a live streaming conversation",
	Long: `Chat opens a bidirectional streaming session with the model.
Type a message and press enter; the model's reply streams back as it is
generated. Type /quit to end the conversation.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	client := newClient()

	session, err := client.Live.Connect(cmd.Context(), live.Setup{Model: modelFlag})
	if err != nil {
		return err
	}
	defer session.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Connected to %s. Type /quit to exit.\n", modelFlag)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	events := session.Events()

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			break
		}

		if err := session.SendText(line); err != nil {
			return err
		}

	turn:
		for event := range events {
			switch e := event.(type) {
			case live.ContentEvent:
				fmt.Fprint(out, e.Text())
				if e.TurnComplete {
					fmt.Fprintln(out)
					break turn
				}
			case live.GoAwayEvent:
				fmt.Fprintf(cmd.ErrOrStderr(), "\nserver is closing the connection (time left: %s)\n", e.TimeLeft)
			case live.ErrorEvent:
				return e.Err
			case live.ClosedEvent:
				return nil
			}
		}
	}

	return session.Close()
}
