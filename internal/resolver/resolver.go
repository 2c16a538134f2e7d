// Package resolver turns a raw import specifier into a discovered file's
// absolute path, using relative-path resolution and tsconfig path aliases.
package resolver

import (
	"path/filepath"
	"strings"

	"github.com/skrulling/unused-buddy-go/domain"
)

// Resolver resolves specifiers against a fixed set of discovered files.
type Resolver struct {
	root       string
	extensions []string
	paths      *domain.PathMap
	files      map[string]bool
}

// New returns a Resolver. discovered is the absolute-path set produced by
// source discovery; extensions is the allowed-extension list in resolver
// precedence order (bare, before extensioned, before index lookup).
func New(root string, discovered []string, paths *domain.PathMap, extensions []string) *Resolver {
	files := make(map[string]bool, len(discovered))
	for _, f := range discovered {
		files[f] = true
	}
	if paths == nil {
		paths = &domain.PathMap{}
	}
	return &Resolver{root: root, extensions: extensions, paths: paths, files: files}
}

// Resolve returns the discovered absolute path raw refers to from importer,
// or ("", false) if raw names an external package or cannot be matched to
// any discovered file.
func (r *Resolver) Resolve(importer, raw string) (string, bool) {
	if strings.HasPrefix(raw, ".") {
		base := filepath.Join(filepath.Dir(importer), raw)
		return r.resolveCandidate(base)
	}

	for _, rule := range r.paths.Rules {
		if rule.IsWildcard() {
			if target, ok := r.resolveWildcardRule(rule, raw); ok {
				return target, true
			}
			continue
		}
		if rule.Pattern == raw {
			for _, t := range rule.Targets {
				if target, ok := r.resolveCandidate(r.aliasBase(t)); ok {
					return target, true
				}
			}
		}
	}

	return "", false
}

func (r *Resolver) resolveWildcardRule(rule domain.AliasRule, raw string) (string, bool) {
	star := strings.IndexByte(rule.Pattern, '*')
	prefix, suffix := rule.Pattern[:star], rule.Pattern[star+1:]
	if !strings.HasPrefix(raw, prefix) || !strings.HasSuffix(raw, suffix) || len(raw) < len(prefix)+len(suffix) {
		return "", false
	}
	middle := raw[len(prefix) : len(raw)-len(suffix)]

	for _, t := range rule.Targets {
		expanded := strings.Replace(t, "*", middle, 1)
		if target, ok := r.resolveCandidate(r.aliasBase(expanded)); ok {
			return target, true
		}
	}
	return "", false
}

// aliasBase joins an alias target template onto baseUrl (or root, if
// baseUrl was not configured).
func (r *Resolver) aliasBase(target string) string {
	base := r.paths.BaseURL
	if base == "" {
		base = r.root
	}
	return filepath.Join(base, target)
}

// resolveCandidate tries, in order: base itself, base+"."+ext for each
// extension, then base+"/index."+ext for each extension, so every
// extensioned candidate is tried before any directory index.
func (r *Resolver) resolveCandidate(base string) (string, bool) {
	if r.files[base] {
		return base, true
	}
	for _, ext := range r.extensions {
		withExt := base + "." + ext
		if r.files[withExt] {
			return withExt, true
		}
	}
	for _, ext := range r.extensions {
		index := filepath.Join(base, "index."+ext)
		if r.files[index] {
			return index, true
		}
	}
	return "", false
}
