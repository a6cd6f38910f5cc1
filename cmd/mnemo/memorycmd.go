package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mnemo-chat/mnemo/internal/config"
	"github.com/mnemo-chat/mnemo/internal/core"
	"github.com/mnemo-chat/mnemo/internal/memory"
	"github.com/mnemo-chat/mnemo/internal/persona"
	"github.com/mnemo-chat/mnemo/modules/memory/file"
	"github.com/mnemo-chat/mnemo/pkg/app"
)

// loadMemoryModule provisions the memory.file module standalone for
// one-shot commands, using the config file when one is found.
func loadMemoryModule(cfgPath, dataDir string) (*file.Module, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if dataDir == "" {
		dataDir = app.DefaultDataDir()
	}
	appCtx := core.NewAppContext(logger, dataDir)

	if cfgPath == "" {
		if resolved, err := app.ResolveConfigPath(); err == nil {
			cfgPath = resolved
		}
	}
	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		appCtx = appCtx.WithModuleConfigs(cfg.Modules)
	}

	mod, err := appCtx.LoadModule("memory.file")
	if err != nil {
		return nil, err
	}
	fileMod, ok := mod.(*file.Module)
	if !ok {
		return nil, fmt.Errorf("memory.file has unexpected type %T", mod)
	}
	return fileMod, nil
}

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search remembered conversation entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			dataDir, _ := cmd.Flags().GetString("data-dir")
			limit, _ := cmd.Flags().GetInt("limit")

			mod, err := loadMemoryModule(cfgPath, dataDir)
			if err != nil {
				return err
			}

			idx := mod.Cache().Get(cmd.Context())
			results := memory.Search(idx, strings.Join(args, " "), limit)

			if len(results) == 0 {
				fmt.Println("No matches.")
				return nil
			}
			for i, res := range results {
				ts := "unknown time"
				if !res.Entry.Timestamp.IsZero() {
					ts = res.Entry.Timestamp.Format("2006-01-02 15:04")
				}
				fmt.Printf("%2d. [%.1f] %s — %s\n", i+1, res.Score, ts, res.Entry.Content)
				if len(res.Entry.Topics) > 0 {
					fmt.Printf("    topics: %s\n", strings.Join(res.Entry.Topics, ", "))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to configuration file")
	cmd.Flags().String("data-dir", "", "Override the data directory")
	cmd.Flags().IntP("limit", "n", memory.DefaultSearchLimit, "Maximum results")
	return cmd
}

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <message>",
		Short: "Classify the personality mode for a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recent, _ := cmd.Flags().GetStringArray("context")

			result := persona.Evaluate(strings.Join(args, " "), recent)
			style := persona.StyleFor(result.Mode)

			fmt.Printf("mode:       %s\n", result.Mode)
			fmt.Printf("sentiment:  %s\n", result.Sentiment)
			fmt.Printf("urgency:    %s\n", result.Urgency)
			fmt.Printf("complexity: %s\n", result.Complexity)
			fmt.Printf("tone:       %s\n", style.Tone)
			for _, mode := range persona.Modes {
				if score := result.Scores[mode]; score > 0 {
					fmt.Printf("  %-10s %.1f\n", mode, score)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringArray("context", nil, "Recent conversation line (repeatable)")
	return cmd
}

func rememberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remember <content>",
		Short: "Append one memory entry from the command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			dataDir, _ := cmd.Flags().GetString("data-dir")
			context, _ := cmd.Flags().GetString("context")

			mod, err := loadMemoryModule(cfgPath, dataDir)
			if err != nil {
				return err
			}

			entry := memory.NewEntry(memory.SpeakerUser, strings.Join(args, " "), context)
			if err := mod.Store().Append(cmd.Context(), entry); err != nil {
				return err
			}
			fmt.Printf("Remembered %s\n", entry.ID)
			return nil
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to configuration file")
	cmd.Flags().String("data-dir", "", "Override the data directory")
	cmd.Flags().String("context", "", "Provenance tag for the entry")
	return cmd
}
