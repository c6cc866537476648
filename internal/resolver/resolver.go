package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"mediares/internal/config"
	"mediares/internal/logging"
	"mediares/internal/manifest"
	"mediares/internal/naming"
	"mediares/internal/resolution"
	"mediares/internal/rights"
)

// Resolver resolves manifest entries against the configured search roots.
type Resolver struct {
	roots     config.Roots
	locale    string
	logger    *slog.Logger
	validator *rights.Validator
}

// New constructs a resolver from application configuration.
func New(cfg *config.Config, logger *slog.Logger) *Resolver {
	return NewWithRoots(cfg.ResolveRoots(), cfg.Project.Locale, logger)
}

// NewWithRoots constructs a resolver with explicit roots (used in tests and
// by callers that resolve roots themselves). Either root may be empty; the
// corresponding pass is skipped.
func NewWithRoots(roots config.Roots, locale string, logger *slog.Logger) *Resolver {
	componentLogger := logging.NewComponentLogger(logger, "resolver")
	return &Resolver{
		roots:     roots,
		locale:    locale,
		logger:    componentLogger,
		validator: rights.NewValidator(logger),
	}
}

// Resolve maps every manifest entry to a resolved asset record, preserving
// entry order. Entries are resolved sequentially; a fatal error on any entry
// aborts the call and no partial list is returned.
func (r *Resolver) Resolve(ctx context.Context, m manifest.Manifest) ([]resolution.Asset, error) {
	assets := make([]resolution.Asset, 0, len(m.Entries))
	for _, entry := range m.Entries {
		asset, err := r.resolveOne(ctx, entry)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func (r *Resolver) resolveOne(ctx context.Context, entry manifest.Entry) (resolution.Asset, error) {
	normalizedID := naming.Normalize(entry.ID)

	asset, found, err := r.resolveLibrary(ctx, entry, normalizedID)
	if err != nil {
		return resolution.Asset{}, err
	}
	if !found {
		asset, found, err = r.resolveLocalAssets(ctx, entry, normalizedID)
		if err != nil {
			return resolution.Asset{}, err
		}
	}
	if !found {
		r.logger.WarnContext(ctx,
			"asset not found, emitting placeholder",
			logging.String(logging.FieldAssetID, normalizedID),
			logging.String(logging.FieldAssetType, string(entry.Type)),
		)
		asset = resolution.NewPlaceholder(string(entry.Type), normalizedID)
	}

	if warning := r.validator.Validate(asset.Metadata.LicenseType); warning != "" {
		asset.RightsWarning = warning
		r.logger.WarnContext(ctx,
			"asset license warning",
			logging.String(logging.FieldAssetID, entry.ID),
			logging.String("license_type", asset.Metadata.LicenseType),
		)
	}
	return asset, nil
}

// resolveLibrary is pass 1: the flat-layout library root with license
// side-car files. A hit without a readable license record is fatal, not a
// fallback trigger.
func (r *Resolver) resolveLibrary(ctx context.Context, entry manifest.Entry, normalizedID string) (resolution.Asset, bool, error) {
	if r.roots.Library == "" {
		return resolution.Asset{}, false, nil
	}
	dir := r.libraryDir(entry.Type)
	foundPath, ok := findFile(dir, normalizedID, entry.Type)
	if !ok {
		return resolution.Asset{}, false, nil
	}

	license, err := rights.Load(entry.ID, foundPath, r.roots.Library, normalizedID)
	if err != nil {
		return resolution.Asset{}, false, err
	}
	uri, err := resolution.FileURI(foundPath)
	if err != nil {
		return resolution.Asset{}, false, err
	}
	asset, err := resolution.NewLocal(entry.ID, string(entry.Type), uri, license, license.SPDXID)
	if err != nil {
		return resolution.Asset{}, false, err
	}
	r.logger.DebugContext(ctx,
		"resolved from library",
		logging.String(logging.FieldAssetID, entry.ID),
		logging.String("path", foundPath),
	)
	return asset, true, nil
}

// resolveLocalAssets is pass 2: the typed-subdirectory root. The manifest
// must supply a usable license type for a hit here; there is no side-car.
func (r *Resolver) resolveLocalAssets(ctx context.Context, entry manifest.Entry, normalizedID string) (resolution.Asset, bool, error) {
	if r.roots.LocalAssets == "" {
		return resolution.Asset{}, false, nil
	}
	dir := filepath.Join(r.roots.LocalAssets, subdirFor(entry.Type))
	foundPath, ok := findFile(dir, normalizedID, entry.Type)
	if !ok {
		return resolution.Asset{}, false, nil
	}

	licenseType := strings.TrimSpace(entry.LicenseType)
	if licenseType == "" || licenseType == resolution.NoAssertion {
		return resolution.Asset{}, false, resolution.Wrap(
			resolution.ErrInvalidLicense,
			"resolver",
			"local assets pass",
			fmt.Sprintf("asset %q resolved to %s but the manifest supplies no usable license_type (got %q)", entry.ID, foundPath, entry.LicenseType),
			nil,
		)
	}
	uri, err := resolution.FileURI(foundPath)
	if err != nil {
		return resolution.Asset{}, false, err
	}
	asset, err := resolution.NewLocal(entry.ID, string(entry.Type), uri, resolution.License{SPDXID: licenseType}, licenseType)
	if err != nil {
		return resolution.Asset{}, false, err
	}
	r.logger.DebugContext(ctx,
		"resolved from local assets",
		logging.String(logging.FieldAssetID, entry.ID),
		logging.String("path", foundPath),
	)
	return asset, true, nil
}

// libraryDir computes the type-specific search directory inside the library
// root. Voice-over is locale-scoped when a locale is configured; every other
// type lives under images/.
func (r *Resolver) libraryDir(assetType manifest.AssetType) string {
	if assetType == manifest.TypeVO {
		if r.locale != "" {
			return filepath.Join(r.roots.Library, r.locale, "audio", "vo")
		}
		return filepath.Join(r.roots.Library, "audio")
	}
	return filepath.Join(r.roots.Library, "images")
}
