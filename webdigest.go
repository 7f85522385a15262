// Package webdigest turns web pages and manually entered text into stored,
// deduplicated summary records and short social-media-ready posts. It
// acquires article content through rendered-DOM and raw-HTTP backends,
// summarizes it through a chain of language-model backends with a
// deterministic extractive fallback, and persists results keyed by a URL
// fingerprint.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, rod/, goquery/).
package webdigest
