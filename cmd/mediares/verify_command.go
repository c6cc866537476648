package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mediares/internal/report"
)

const (
	envRunDir        = "RUN_DIR"
	manifestFileName = "AssetManifest.json"
	envelopeFileName = "AssetManifest.media.json"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var runDir string
	var strict bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Resolve a run directory's manifest twice and check determinism",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := strings.TrimSpace(runDir)
			if dir == "" {
				dir = strings.TrimSpace(os.Getenv(envRunDir))
			}
			if dir == "" {
				return usageErrorf("verify requires --run-dir or the %s environment variable", envRunDir)
			}
			return runVerify(cmd, ctx, dir, strict)
		},
	}

	cmd.Flags().StringVar(&runDir, "run-dir", "", "Run directory containing "+manifestFileName)
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any asset resolves to a placeholder")
	return cmd
}

func runVerify(cmd *cobra.Command, ctx *commandContext, dir string, strict bool) error {
	manifestPath := filepath.Join(dir, manifestFileName)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return usageErrorf("manifest not found at %s", manifestPath)
		}
		return fmt.Errorf("read manifest: %w", err)
	}

	m, env, first, err := resolveManifest(cmd, ctx, data)
	if err != nil {
		return err
	}
	_, _, second, err := resolveManifest(cmd, ctx, data)
	if err != nil {
		return err
	}
	if !bytes.Equal(first, second) {
		return errors.New("resolution is not deterministic: repeated runs produced different envelopes")
	}

	status := report.StatusOK
	strictErr := checkStrict(strict, env)
	if strictErr != nil {
		status = report.StatusFailed
	}

	if strictErr == nil {
		if err := writeEnvelope(filepath.Join(dir, envelopeFileName), first); err != nil {
			return err
		}
	}
	recordRun(cmd, ctx, m, env, strict, status)

	if strictErr != nil {
		return strictErr
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK: %d assets; %d placeholders\n", len(env.Items), env.PlaceholderCount())
	return nil
}
