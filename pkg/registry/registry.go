// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"fmt"
	"net/url"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/canonical/sbom-broker/internal/types"
)

// Project is one registered project and the identity constraints a
// token must satisfy to upload on its behalf.
type Project struct {
	// Name is the registry-local project identifier, used for logging only.
	Name string `yaml:"name" validate:"required"`
	// Issuer is the trusted OIDC issuer. Compared as the exact string
	// written in the projects file, so a trailing slash is significant.
	Issuer string `yaml:"issuer" validate:"required"`
	// ParentID is the Dependency-Track parent project UUID SBOMs are
	// filed under. Opaque beyond UUID validation.
	ParentID string `yaml:"parent_id" validate:"required"`
	// RequiredClaims maps claim names to the exact values a verified
	// token must carry. Empty means the issuer match alone suffices.
	RequiredClaims map[string]string `yaml:"required_claims"`
}

// MatchIssuer reports whether the given issuer equals the project's.
func (p *Project) MatchIssuer(issuer string) bool {
	return issuer == p.Issuer
}

// MatchClaims reports whether every required claim is present in the
// verified claim set with the expected value. An absent claim is a
// non-match, not an error.
func (p *Project) MatchClaims(claims types.VerifiedClaims) bool {
	for name, expected := range p.RequiredClaims {
		value, ok := claims[name].(string)
		if !ok || value != expected {
			return false
		}
	}

	return true
}

// Registry is the immutable project catalog. It is built once at
// startup and only read afterwards, so concurrent request handlers
// share it without locking.
type Registry struct {
	projects []Project
}

// HasIssuer reports whether any registered project trusts the given
// issuer, by exact string comparison. It is the unauthenticated
// pre-filter gate and must never authorize a request by itself.
func (r *Registry) HasIssuer(issuer string) bool {
	for i := range r.projects {
		if r.projects[i].MatchIssuer(issuer) {
			return true
		}
	}

	return false
}

// FindByClaims returns the first project, in file order, whose issuer
// equals the verified iss claim and whose required claims all match.
// It must only ever be called with verified claims.
func (r *Registry) FindByClaims(claims types.VerifiedClaims) (*Project, error) {
	issuer := claims.Issuer()

	for i := range r.projects {
		p := &r.projects[i]
		if p.MatchIssuer(issuer) && p.MatchClaims(claims) {
			return p, nil
		}
	}

	return nil, ErrNoProjectMatched
}

// Projects returns a copy of the catalog in registry order.
func (r *Registry) Projects() []Project {
	projects := make([]Project, len(r.projects))
	copy(projects, r.projects)
	return projects
}

// Size returns the number of registered projects.
func (r *Registry) Size() int {
	return len(r.projects)
}

// LoadFromFile reads and validates the projects YAML file. Any invalid
// entry fails the whole load: the process must not serve traffic with a
// partially loaded registry.
func LoadFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
	}

	return Load(data)
}

// Load parses and validates a projects YAML document, an ordered list
// of project entries.
func Load(data []byte) (*Registry, error) {
	var projects []Project
	if err := yaml.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	validate := validator.New()

	for i := range projects {
		p := &projects[i]

		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: project %d: %v", ErrInvalidConfig, i, err)
		}

		if err := validateIssuer(p.Issuer); err != nil {
			return nil, fmt.Errorf("%w: project %q: %v", ErrInvalidConfig, p.Name, err)
		}

		if _, err := uuid.Parse(p.ParentID); err != nil {
			return nil, fmt.Errorf("%w: project %q: parent_id is not a UUID: %v", ErrInvalidConfig, p.Name, err)
		}
	}

	if err := validateReachability(projects); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Registry{projects: projects}, nil
}

func validateIssuer(issuer string) error {
	u, err := url.Parse(issuer)
	if err != nil {
		return fmt.Errorf("issuer is not a URL: %v", err)
	}

	if u.Scheme != "https" {
		return fmt.Errorf("issuer %q must use the https scheme", issuer)
	}

	if u.Host == "" {
		return fmt.Errorf("issuer %q has no host", issuer)
	}

	return nil
}

// validateReachability rejects ambiguous catalogs. Matching is
// first-in-file-order, so when two projects trust the same issuer and
// an earlier one's required claims are a subset of a later one's, any
// token satisfying the later project also satisfies the earlier one and
// the later project can never be selected.
func validateReachability(projects []Project) error {
	for i := range projects {
		for j := i + 1; j < len(projects); j++ {
			if projects[i].Issuer != projects[j].Issuer {
				continue
			}

			if claimsSubset(projects[i].RequiredClaims, projects[j].RequiredClaims) {
				return fmt.Errorf(
					"project %q is unreachable: every token it accepts is claimed first by %q",
					projects[j].Name, projects[i].Name,
				)
			}
		}
	}

	return nil
}

func claimsSubset(inner, outer map[string]string) bool {
	for name, value := range inner {
		if outer[name] != value {
			return false
		}
	}

	return true
}
