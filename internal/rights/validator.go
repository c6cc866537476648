package rights

import (
	"fmt"
	"log/slog"
	"sort"

	"mediares/internal/logging"
)

// AllowedLicenseTypes is the set of license type values an asset may carry
// without triggering a rights warning.
var AllowedLicenseTypes = map[string]struct{}{
	"proprietary_cleared": {},
	"CC0":                 {},
	"commercial_licensed": {},
	"generated_local":     {},
	"placeholder":         {},
}

// Validator checks license type strings against the allowed set.
type Validator struct {
	logger *slog.Logger
}

// NewValidator constructs a validator. A nil logger is replaced with a
// no-op logger so validation can run in wiring code that cannot fail.
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Validator{logger: logger.With(logging.String(logging.FieldComponent, "rights"))}
}

// Validate returns an empty string when licenseType is allowed, otherwise a
// human-readable warning naming the offending value and the allowed set.
// It never fails; the caller decides where the warning is stored.
func (v *Validator) Validate(licenseType string) string {
	if _, ok := AllowedLicenseTypes[licenseType]; ok {
		return ""
	}
	allowed := allowedSorted()
	warning := fmt.Sprintf(
		"unknown license_type %q: not in allowed set %v; asset will be blocked from publish once license enforcement is enabled",
		licenseType, allowed,
	)
	v.logger.Warn(
		"unknown license type",
		logging.String("license_type", licenseType),
		logging.Any("allowed", allowed),
	)
	return warning
}

func allowedSorted() []string {
	values := make([]string, 0, len(AllowedLicenseTypes))
	for value := range AllowedLicenseTypes {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}
