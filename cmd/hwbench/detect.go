package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"hwbench/internal/fsutil"
	"hwbench/internal/hardware"
)

func newDetectCmd(a *app) *cobra.Command {
	var (
		asJSON   bool
		savePath string
	)

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect CPU and GPU and select workload parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile := hardware.NewDetector(a.cfg.Detection, a.logger).DetectAndConfigure(cmd.Context())

			if savePath != "" {
				if err := saveProfile(savePath, profile, a); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, profile)
			}
			printProfile(out, profile)
			if savePath != "" {
				fmt.Fprintf(out, "\n%s Profile saved to %s\n", okStyle.Render("✓"), savePath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "output JSON")
	cmd.Flags().StringVar(&savePath, "save", "", "also write the profile as JSON to this path")

	return cmd
}

func saveProfile(path string, profile hardware.Profile, a *app) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := fsutil.AtomicWriteFile(path, append(data, '\n'), fsutil.DefaultFilePermissions, a.logger); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	a.logger.Info("hardware.profile.saved", "Hardware profile saved", map[string]interface{}{
		"path": path,
	})
	return nil
}
