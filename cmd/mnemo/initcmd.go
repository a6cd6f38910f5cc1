package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mnemo-chat/mnemo/pkg/app"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactively create a mnemo.yaml configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			dataDir := app.DefaultDataDir()
			bind := "127.0.0.1:8080"
			token := ""
			enableGateway := true

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Data directory").
						Description("Where memory.json and backups are stored").
						Value(&dataDir),
					huh.NewConfirm().
						Title("Enable the HTTP gateway?").
						Value(&enableGateway),
				),
				huh.NewGroup(
					huh.NewInput().
						Title("Gateway bind address").
						Value(&bind),
					huh.NewInput().
						Title("API bearer token").
						Description("Leave empty to expose only the public endpoints").
						EchoMode(huh.EchoModePassword).
						Value(&token),
				).WithHideFunc(func() bool { return !enableGateway }),
			)
			if err := form.Run(); err != nil {
				return err
			}

			modules := map[string]any{
				"memory.file": map[string]any{
					"path": filepath.Join(dataDir, "memory.json"),
				},
			}
			if enableGateway {
				gw := map[string]any{"bind": bind}
				if token != "" {
					gw["auth"] = map[string]any{"bearer_token": token}
				}
				modules["gateway.http"] = gw
			}

			doc := map[string]any{
				"version": "1",
				"modules": modules,
				"maintenance": map[string]any{
					"backup_prune": "0 3 * * *",
					"cache_warm":   "@every 15m",
				},
			}

			raw, err := yaml.Marshal(doc)
			if err != nil {
				return err
			}

			path := "mnemo.yaml"
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, refusing to overwrite", path)
			}
			if err := os.WriteFile(path, raw, 0o600); err != nil {
				return err
			}

			fmt.Printf("Wrote %s. Start with: mnemo start -c %s\n", path, path)
			return nil
		},
	}
}
