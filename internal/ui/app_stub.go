//go:build !fyne

package ui

import (
	"fmt"

	"fatfingerpicasso/internal/config"
)

// Run needs the cgo window driver; headless builds get an error instead.
func Run(_ config.AppConfig) error {
	return fmt.Errorf("UI not built in this binary. Rebuild with: go run -tags fyne . ")
}
