package rorskin

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue codes.
const (
	CodeMissingName     = "missing_name"
	CodeMissingGUID     = "missing_guid"
	CodeEmptyName       = "empty_name"
	CodeDuplicate       = "duplicate_replacement"
	CodeNoopReplacement = "noop_replacement"
	CodeAuthorID        = "invalid_author_id"
	CodeExtension       = "unexpected_extension"
	CodeMissingResource = "missing_resource"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Affected name or resource
	Line    int        `json:"line,omitempty" yaml:"line,omitempty"` // Source line when known
}

// String renders the issue on one line.
func (i Issue) String() string {
	var b strings.Builder
	b.WriteString(string(i.Level))
	if i.Line > 0 {
		fmt.Fprintf(&b, " line %d", i.Line)
	}
	b.WriteString(": ")
	b.WriteString(i.Message)
	if i.Path != "" {
		b.WriteString(" (")
		b.WriteString(i.Path)
		b.WriteString(")")
	}

	return b.String()
}

// HasErrors reports whether issues contain an error-level issue.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Level == IssueError {
			return true
		}
	}

	return false
}

// Validate validates a skin and returns issues.
func Validate(s *Skin, opt *ValidateOptions) []Issue {
	if s == nil {
		return nil
	}

	vopt := opt.normalize()
	var out []Issue

	if strings.TrimSpace(s.Name) == "" {
		out = append(out, Issue{Level: IssueError, Code: CodeMissingName, Message: "skin name missing"})
	}
	if !vopt.DisableGUIDCheck && s.GUID == "" {
		out = append(out, Issue{Level: IssueWarning, Code: CodeMissingGUID, Message: "guid missing, skin applies to no vehicle", Path: s.Name})
	}
	if s.AuthorID != "" {
		if _, err := strconv.Atoi(s.AuthorID); err != nil {
			out = append(out, Issue{Level: IssueWarning, Code: CodeAuthorID, Message: "author_id is not a number", Path: s.AuthorID})
		}
	}

	out = append(out, validateReplacements(keyReplaceMaterial, s.Materials)...)
	out = append(out, validateReplacements(keyReplaceTexture, s.Textures)...)

	// Resource checks cover texture replacements and the preview image.
	resources := make([]resourceRef, 0, len(s.Textures)+1)
	for _, r := range s.Textures {
		resources = append(resources, resourceRef{name: r.Replacement, line: r.Line})
	}
	if s.PreviewImage != "" {
		resources = append(resources, resourceRef{name: s.PreviewImage})
	}

	resolver := PathResolver{ResourceRoot: vopt.ResourceRoot}
	for _, res := range resources {
		if res.name == "" {
			continue
		}

		if !vopt.DisableExtensionsCheck && !HasTextureExt(res.name) {
			out = append(out, Issue{Level: IssueWarning, Code: CodeExtension, Message: "unexpected image extension", Path: res.name, Line: res.line})
		}

		if vopt.DisableFileCheck || shouldExcludePath(res.name, vopt.ExcludePaths) {
			continue
		}
		p := resolver.ResolvePath(res.name)
		if _, err := os.Stat(p); err != nil {
			out = append(out, Issue{Level: IssueWarning, Code: CodeMissingResource, Message: "resource file not found", Path: p, Line: res.line})
		}
	}

	return out
}

// resourceRef is a resource name with its source line.
type resourceRef struct {
	name string
	line int
}

// validateReplacements checks one directive list.
func validateReplacements(key string, reps []Replacement) []Issue {
	var out []Issue
	seen := make(map[string]int, len(reps))
	for _, r := range reps {
		if r.Original == "" || r.Replacement == "" {
			out = append(out, Issue{Level: IssueError, Code: CodeEmptyName, Message: key + " with empty name", Path: r.Original, Line: r.Line})
			continue
		}

		if r.Original == r.Replacement {
			out = append(out, Issue{Level: IssueWarning, Code: CodeNoopReplacement, Message: key + " replaces a name with itself", Path: r.Original, Line: r.Line})
		}

		if prev, ok := seen[r.Original]; ok {
			msg := key + " duplicates an earlier directive, last one wins"
			if prev > 0 {
				msg = fmt.Sprintf("%s duplicates line %d, last one wins", key, prev)
			}
			out = append(out, Issue{Level: IssueWarning, Code: CodeDuplicate, Message: msg, Path: r.Original, Line: r.Line})
		}
		seen[r.Original] = r.Line
	}

	return out
}
