// Package optsearch provides the search and filter engine behind a
// documentation site's configuration-symbol search and hardware-board
// selector pages. It evaluates free-text/regex and multi-criterion filter
// queries against a pre-built JSON record database, with pagination,
// deep-link fragment handling, and a reusable filter-chip widget.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, goquery/).
package optsearch
