package rorskin

import (
	"path/filepath"
	"strings"
)

// Extensions accepted for textures and preview images.
var defaultTextureExts = []string{".dds", ".png", ".jpg", ".jpeg", ".tga", ".bmp"}

// PathResolver resolves resource names relative to ResourceRoot.
type PathResolver struct {
	ResourceRoot string
}

// ResolvePath resolves a raw resource name against ResourceRoot.
// Absolute paths and paths with a volume are only cleaned.
func (r PathResolver) ResolvePath(raw string) string {
	if raw == "" {
		return ""
	}

	norm := normalizeOSPath(raw)
	if filepath.IsAbs(norm) || hasVolume(norm) {
		return filepath.Clean(norm)
	}

	if r.ResourceRoot == "" {
		return filepath.Clean(norm)
	}

	return filepath.Clean(filepath.Join(r.ResourceRoot, norm))
}

// HasTextureExt reports whether name carries a known image extension.
func HasTextureExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range defaultTextureExts {
		if ext == e {
			return true
		}
	}

	return false
}

// hasVolume checks if the path has a drive letter volume.
func hasVolume(p string) bool {
	return len(p) >= 2 && p[1] == ':'
}

// normalizeOSPath normalizes a path for OS-specific separators.
func normalizeOSPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	return filepath.FromSlash(p)
}

// normalizePathForMatch normalizes a path for pattern matching.
func normalizePathForMatch(p string) string {
	p = strings.TrimSpace(p)
	p = strings.ReplaceAll(p, "\\", "/")
	return strings.ToLower(p)
}

// shouldExcludePath checks if the path matches one of the exclusion patterns.
func shouldExcludePath(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	norm := normalizePathForMatch(path)
	for _, p := range patterns {
		if p == "" {
			continue
		}

		pp := normalizePathForMatch(p)
		if prefix, ok := strings.CutSuffix(pp, "*"); ok {
			if strings.HasPrefix(norm, prefix) {
				return true
			}
			continue
		}

		if norm == pp {
			return true
		}
	}

	return false
}
