package rorskin

import (
	"os"
	"strings"
)

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// DisableCaseInsensitive disables case-insensitive matching for directive keys.
	DisableCaseInsensitive bool
	// DisableComments disables // comments.
	DisableComments bool
	// DisableUnknownDirectives makes unknown directive keys a parse error
	// instead of keeping them in Skin.Extra.
	DisableUnknownDirectives bool
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Indent is the indentation string for directives inside a skin block (default is a tab).
	Indent string
	// KeyWidth pads directive keys to this width (default 17, zero-padding disabled by -1).
	KeyWidth int
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// ResourceRoot is used to resolve texture and preview image paths when file checks are enabled.
	ResourceRoot string
	// ExcludePaths skips file existence checks for matching paths.
	// Supports exact match and prefix wildcard with '*' suffix (e.g. "shared/*").
	ExcludePaths []string
	// DisableFileCheck disables filesystem existence checks.
	// If ResourceRoot is not set, this is enabled by default.
	DisableFileCheck bool
	// DisableExtensionsCheck disables extension validation for texture and image names.
	DisableExtensionsCheck bool
	// DisableGUIDCheck disables the missing guid warning.
	DisableGUIDCheck bool
}

// IsResourceRootExist reports whether the resource root exists and is a directory.
func (o *ValidateOptions) IsResourceRootExist() bool {
	if o == nil {
		return false
	}
	if strings.TrimSpace(o.ResourceRoot) == "" {
		return false
	}
	info, err := os.Stat(o.ResourceRoot)
	if err != nil {
		return false
	}

	return info.IsDir()
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{}
	}

	return *o
}

const defaultKeyWidth = 17

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Indent: "\t", KeyWidth: defaultKeyWidth}
	}

	out := *o
	if out.Indent == "" {
		out.Indent = "\t"
	}
	switch {
	case out.KeyWidth == 0:
		out.KeyWidth = defaultKeyWidth
	case out.KeyWidth < 0:
		out.KeyWidth = 0
	}

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{DisableFileCheck: true}
	}

	out := *o
	if out.ResourceRoot == "" {
		out.DisableFileCheck = true
	}

	return out
}
