package config

import (
	"fmt"
	"strings"

	"github.com/SoSDylan/xVeinMiner/domain/tool"
)

// ValidationError represents a single configuration validation error.
type ValidationError struct {
	// Path locates the invalid field, e.g. "categories[1].tools[0].material".
	Path string
	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e), strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validate checks the configuration for the problems that would make
// category construction fail later, reporting all of them at once with
// paths. The constructor enforces the same id pattern again, so a malformed
// id can never slip past a skipped validation into the registry unnoticed.
func Validate(cfg *FileConfig) ValidationErrors {
	var errs ValidationErrors

	seen := make(map[string]int)
	for i, cc := range cfg.Categories {
		path := fmt.Sprintf("categories[%d]", i)
		switch {
		case cc.Name == "":
			errs = append(errs, ValidationError{Path: path + ".name", Message: "category name is required"})
		case !tool.IsValidID(cc.Name):
			errs = append(errs, ValidationError{
				Path:    path + ".name",
				Message: fmt.Sprintf("%q must be alphanumeric with no spaces", cc.Name),
			})
		}

		key := strings.ToLower(cc.Name)
		if cc.Name != "" {
			if prev, dup := seen[key]; dup {
				errs = append(errs, ValidationError{
					Path:    path + ".name",
					Message: fmt.Sprintf("collides with categories[%d] %q (ids are case-insensitive registry keys)", prev, cfg.Categories[prev].Name),
				})
			} else {
				seen[key] = i
			}
		}

		for j, tc := range cc.Tools {
			if tc.Material == "" {
				errs = append(errs, ValidationError{
					Path:    fmt.Sprintf("%s.tools[%d].material", path, j),
					Message: "tool material is required",
				})
			}
		}
		for j, b := range cc.Blocklist {
			if b == "" {
				errs = append(errs, ValidationError{
					Path:    fmt.Sprintf("%s.blocklist[%d]", path, j),
					Message: "block material must not be empty",
				})
			}
		}
	}

	if cfg.Logging.Format != "" && cfg.Logging.Format != "json" && cfg.Logging.Format != "console" {
		errs = append(errs, ValidationError{Path: "logging.format", Message: "must be json or console"})
	}

	return errs
}
