package source

// Package source loads the candidate collection shown by the overview.
// A Source returns the full current collection in one synchronous read;
// implementations exist for YAML/JSON files and SQLite databases, and a
// Watcher reports when the backing file changes so the screen can reload.
