// Package securefile gates file reads behind an access policy: extension
// allow-list, size cap, filename sanitization, and content validation. It is
// the only path through which theme definition files are read.
package securefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Policy parameterizes an Accessor. Values come from the application
// settings store and are read-only here.
type Policy struct {
	// MaxFileSizeMB caps the size of any file the accessor will read.
	MaxFileSizeMB int

	// AllowedExtensions lists acceptable file extensions including the
	// leading dot, compared case-insensitively.
	AllowedExtensions []string

	// ValidateContent requires the file body to be a well-formed JSON
	// object before it is returned.
	ValidateContent bool

	// SanitizeFilenames rejects paths whose base name contains characters
	// outside the safe filename set.
	SanitizeFilenames bool
}

// DefaultPolicy returns the policy used when the settings store provides
// no overrides.
func DefaultPolicy() Policy {
	return Policy{
		MaxFileSizeMB:     10,
		AllowedExtensions: []string{".json"},
		ValidateContent:   true,
		SanitizeFilenames: true,
	}
}

// Accessor performs policy-checked reads. It never writes.
type Accessor struct {
	policy Policy
}

// NewAccessor creates an accessor enforcing the given policy.
func NewAccessor(policy Policy) *Accessor {
	if policy.MaxFileSizeMB <= 0 {
		policy.MaxFileSizeMB = DefaultPolicy().MaxFileSizeMB
	}
	if len(policy.AllowedExtensions) == 0 {
		policy.AllowedExtensions = DefaultPolicy().AllowedExtensions
	}
	return &Accessor{policy: policy}
}

// Policy returns the accessor's effective policy.
func (a *Accessor) Policy() Policy {
	return a.policy
}

// ReadJSON reads path under the access policy and returns its decoded
// top-level object. Every failure is reported as an *Error with a Kind;
// callers never see a raw I/O fault.
func (a *Accessor) ReadJSON(path string) (map[string]json.RawMessage, error) {
	base := filepath.Base(path)

	if !a.extensionAllowed(base) {
		return nil, &Error{
			Kind: KindAccessDenied,
			Path: path,
			Err:  fmt.Errorf("extension %q is not allowed", filepath.Ext(base)),
		}
	}

	if a.policy.SanitizeFilenames {
		if sanitized := SanitizeFilename(base); sanitized != base {
			return nil, &Error{
				Kind: KindAccessDenied,
				Path: path,
				Err:  fmt.Errorf("unsafe filename %q (sanitizes to %q)", base, sanitized),
			}
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{Kind: KindNotFound, Path: path, Err: err}
		}
		return nil, &Error{Kind: KindAccessDenied, Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &Error{
			Kind: KindAccessDenied,
			Path: path,
			Err:  fmt.Errorf("path is a directory"),
		}
	}

	maxBytes := int64(a.policy.MaxFileSizeMB) * 1024 * 1024
	if info.Size() > maxBytes {
		return nil, &Error{
			Kind: KindAccessDenied,
			Path: path,
			Err:  fmt.Errorf("file size %d exceeds limit of %d bytes", info.Size(), maxBytes),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{Kind: KindNotFound, Path: path, Err: err}
		}
		return nil, &Error{Kind: KindAccessDenied, Path: path, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		if a.policy.ValidateContent {
			return nil, &Error{
				Kind: KindParse,
				Path: path,
				Err:  fmt.Errorf("document is empty"),
			}
		}
		return map[string]json.RawMessage{}, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &Error{Kind: KindParse, Path: path, Err: err}
	}

	return doc, nil
}

func (a *Accessor) extensionAllowed(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range a.policy.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// safeFilenameChar reports whether c may appear in a sanitized filename.
func safeFilenameChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.':
		return true
	}
	return false
}

// SanitizeFilename strips directory components and characters outside the
// safe set, and removes leading dots so the result can never name a parent
// directory or a hidden file.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)

	var b strings.Builder
	for _, c := range name {
		if safeFilenameChar(c) {
			b.WriteRune(c)
		}
	}

	return strings.TrimLeft(b.String(), ".")
}
