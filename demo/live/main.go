// Package main provides a minimal CLI demo for live voice conversations.
//
// Speak into the microphone and the model answers with audio. Automatic
// activity detection is enabled, so there is no push-to-talk.
//
// Usage:
//
//	go run demo/live/main.go
//
// Environment variables:
//
//	GEMINI_API_KEY - Required
//
// Controls:
//
//	/t <text>  - Send text message
//	q          - Quit the demo
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/veldtlabs/genlive/pkg/core/types"
	"github.com/veldtlabs/genlive/pkg/live"
	genlive "github.com/veldtlabs/genlive/sdk"
)

const model = "models/gemini-2.0-flash-exp"

func main() {
	_ = godotenv.Load()

	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		log.Fatal("GEMINI_API_KEY required")
	}

	fmt.Println("╔════════════════════════════════════════════════════════════╗")
	fmt.Println("║              genlive Voice Demo                            ║")
	fmt.Println("╠════════════════════════════════════════════════════════════╣")
	fmt.Println("║  Speak naturally - automatic turn detection is enabled.    ║")
	fmt.Println("║                                                            ║")
	fmt.Println("║  Commands:                                                 ║")
	fmt.Println("║    /t <text>  Send text message                            ║")
	fmt.Println("║    q          Quit                                         ║")
	fmt.Println("╚════════════════════════════════════════════════════════════╝")
	fmt.Println()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	client := genlive.NewClient()

	session, err := client.Live.Connect(ctx, live.Setup{
		Model: model,
		GenerationConfig: &types.GenerationConfig{
			ResponseModalities: []types.ResponseModality{types.ModalityAudio},
		},
		OutputAudioTranscription: &live.AudioTranscriptionConfig{},
	})
	if err != nil {
		log.Fatalf("Failed to start live session: %v", err)
	}
	defer session.Close()

	mic, speaker, cleanup := initAudio()
	defer cleanup()

	// Send microphone audio to the session
	go func() {
		buf := make([]byte, inputSampleRate*2/50) // 20ms chunks
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			n := mic.Read(buf)
			if n > 0 {
				if err := session.SendAudio("audio/pcm;rate=16000", buf[:n]); err != nil {
					return
				}
			}
		}
	}()

	// Handle session events
	go func() {
		for event := range session.Events() {
			switch e := event.(type) {
			case live.ContentEvent:
				if e.Interrupted {
					speaker.Flush()
					continue
				}
				if e.OutputTranscription != nil {
					fmt.Print(e.OutputTranscription.Text)
				}
				playAudioParts(speaker, e)
				if e.TurnComplete {
					fmt.Println()
				}
			case live.GoAwayEvent:
				fmt.Printf("\n[WARN] Server closing soon (time left: %s)\n", e.TimeLeft)
			case live.ErrorEvent:
				fmt.Printf("\n[ERROR] %v\n", e.Err)
				cancel()
			case live.ClosedEvent:
				cancel()
			}
		}
	}()

	// Command input loop
	fmt.Println("Listening... (type commands or 'q' to quit)")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if strings.ToLower(input) == "q" {
			break
		}

		if rest, ok := strings.CutPrefix(input, "/t "); ok {
			if err := session.SendText(rest); err != nil {
				fmt.Printf("[ERROR] Failed to send text: %v\n", err)
			} else {
				fmt.Printf("[SENT] Text: %s\n", rest)
			}
			continue
		}

		fmt.Println("[INFO] Commands: /t <text>, q")
	}
}

// playAudioParts feeds the model's inline audio to the speaker.
func playAudioParts(speaker *speakerWriter, e live.ContentEvent) {
	if e.ModelTurn == nil {
		return
	}
	for _, part := range e.ModelTurn.Parts {
		if part.InlineData != nil && strings.HasPrefix(part.InlineData.MIMEType, "audio/") {
			speaker.Write(part.InlineData.Data)
		}
	}
}
