package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"mediares/internal/contract"
	"mediares/internal/envelope"
	"mediares/internal/manifest"
	"mediares/internal/report"
	"mediares/internal/resolver"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var inputPath string
	var outputPath string
	var strict bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a manifest to local assets and write the media envelope",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.TrimSpace(inputPath)
			output := strings.TrimSpace(outputPath)
			if input == "" || output == "" {
				return usageErrorf("resolve requires --in and --out")
			}
			return runResolve(cmd, ctx, input, output, strict)
		},
	}

	cmd.Flags().StringVar(&inputPath, "in", "", "Path to the asset manifest JSON")
	cmd.Flags().StringVar(&outputPath, "out", "", "Destination for the resolved media envelope")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any asset resolves to a placeholder")
	return cmd
}

func runResolve(cmd *cobra.Command, ctx *commandContext, inputPath, outputPath string, strict bool) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return usageErrorf("manifest not found at %s", inputPath)
		}
		return fmt.Errorf("read manifest: %w", err)
	}

	m, env, encoded, err := resolveManifest(cmd, ctx, data)
	if err != nil {
		return err
	}

	status := report.StatusOK
	strictErr := checkStrict(strict, env)
	if strictErr != nil {
		status = report.StatusFailed
	}

	if strictErr == nil {
		if err := writeEnvelope(outputPath, encoded); err != nil {
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

// resolveManifest runs the full pipeline on raw manifest bytes: contract
// validation, parsing, resolution, envelope assembly, and output validation
// against the media contract.
func resolveManifest(cmd *cobra.Command, ctx *commandContext, data []byte) (manifest.Manifest, envelope.Envelope, []byte, error) {
	if err := contract.ValidateManifest(data); err != nil {
		return manifest.Manifest{}, envelope.Envelope{}, nil, err
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return manifest.Manifest{}, envelope.Envelope{}, nil, err
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return manifest.Manifest{}, envelope.Envelope{}, nil, err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return manifest.Manifest{}, envelope.Envelope{}, nil, err
	}

	items, err := resolver.New(cfg, logger).Resolve(cmd.Context(), m)
	if err != nil {
		return manifest.Manifest{}, envelope.Envelope{}, nil, err
	}

	env := envelope.New(m, items)
	encoded, err := env.Encode()
	if err != nil {
		return manifest.Manifest{}, envelope.Envelope{}, nil, fmt.Errorf("encode envelope: %w", err)
	}
	if err := contract.ValidateEnvelope(encoded); err != nil {
		return manifest.Manifest{}, envelope.Envelope{}, nil, err
	}
	return m, env, encoded, nil
}

func checkStrict(strict bool, env envelope.Envelope) error {
	if !strict || env.PlaceholderCount() == 0 {
		return nil
	}
	return fmt.Errorf("strict mode: %d of %d assets resolved to placeholders", env.PlaceholderCount(), len(env.Items))
}

// writeEnvelope writes the encoded envelope under an advisory file lock so
// concurrent invocations do not interleave writes to the same output.
func writeEnvelope(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", dir, err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire output lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write envelope: %w", err)
	}
	return nil
}

// recordRun appends to run history. History is advisory; failures degrade to
// a stderr warning instead of failing a resolution that already succeeded.
func recordRun(cmd *cobra.Command, ctx *commandContext, m manifest.Manifest, env envelope.Envelope, strict bool, status string) {
	store, err := ctx.openStore()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: run history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	run := &report.Run{
		ManifestID:   m.ManifestID,
		ProjectID:    m.ProjectID,
		TotalAssets:  len(env.Items),
		Placeholders: env.PlaceholderCount(),
		Warnings:     env.WarningCount(),
		Strict:       strict,
		Status:       status,
	}
	if err := store.RecordRun(cmd.Context(), run); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: record run: %v\n", err)
	}
}
