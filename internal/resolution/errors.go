package resolution

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingLicense marks a library asset file that has no license
	// side-car in either search location. Fatal for the resolution call.
	ErrMissingLicense = errors.New("missing license file")
	// ErrInvalidLicense marks a local asset whose license type is empty or
	// the NOASSERTION sentinel. Fatal for the resolution call.
	ErrInvalidLicense = errors.New("invalid license")
	// ErrInvalidURI marks an attempt to construct a record with a remote
	// URI scheme. Fatal for the resolution call.
	ErrInvalidURI = errors.New("invalid uri")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "resolution failure"
	}
	return strings.Join(parts, ": ")
}
