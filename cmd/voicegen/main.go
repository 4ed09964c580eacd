package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"askaprilai-be/internal/config"
	"askaprilai-be/pkg/ripple"
	"askaprilai-be/pkg/voice/elevenlabs"

	"github.com/fatih/color"
)

func main() {
	day := flag.String("day", "", "generate a single weekday episode (e.g. Monday)")
	flag.Parse()

	cfg := config.Load()

	if cfg.Voice.APIKey == "" || cfg.Voice.VoiceID == "" {
		color.Red("ELEVENLABS_API_KEY and ELEVENLABS_VOICE_ID must be set")
		os.Exit(1)
	}

	provider := elevenlabs.NewElevenLabsProvider(cfg.Voice.APIKey, cfg.Voice.VoiceID)
	generator := ripple.NewGenerator(provider, cfg.App.AudioDir, cfg.App.BaseURL, cfg.Voice.RequestDelay)

	ctx := context.Background()

	if *day != "" {
		color.Cyan("🎙️  Generating single episode: %s", *day)
		if err := generator.GenerateSingle(ctx, *day); err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Episode ready!")
		return
	}

	color.Cyan("🎙️  Starting Daily Ripple generation...")
	color.Cyan("Using voice: %s\n", cfg.Voice.VoiceID)

	result, err := generator.GenerateWeek(ctx)
	if err != nil {
		color.Red("Generation aborted: %v", err)
		os.Exit(1)
	}

	color.Yellow("\nGENERATION COMPLETE:")
	color.Green("Successful: %d", result.Successful)
	if result.Failed > 0 {
		color.Red("Failed: %d", result.Failed)
	}

	if result.Successful > 0 {
		color.Yellow("\nGenerated audio files:")
		for _, episode := range ripple.WeeklyScripts() {
			path := filepath.Join(cfg.App.AudioDir, episode.Filename)
			if info, err := os.Stat(path); err == nil {
				color.Green("   %s (%dKB)", episode.Filename, info.Size()/1024)
			}
		}
		color.Cyan("\nYour Daily Ripple is ready!")
	}
}
