package platform

// Package platform contains OS integration glue: data directory lookup,
// resolving image references found in candidate files, and revealing the
// data file in the system file manager.
