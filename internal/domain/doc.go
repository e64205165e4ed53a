// Package domain contains the core model for euclid: the GCD/LCM arithmetic,
// fixture suites, candidates and verification reports.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// the terminal, or the filesystem. Infra/adapters map into/from these types.
package domain
