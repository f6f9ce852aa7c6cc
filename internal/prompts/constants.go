// Package prompts contains the descriptions MCP clients see for each tool.
package prompts

const (
	// LocateFileToolDoc describes the LocateFile tool.
	LocateFileToolDoc = `Finds a file by its exact name anywhere under a directory tree.

Usage:
- name is the file name to look for. A path may be given; only its final segment is matched.
- root is the absolute directory to search. When omitted the server's configured search root is used.
- Matching is exact and case-sensitive. Directories with the target name are not matches.
- The search is depth-first: files in a directory are checked before its subdirectories, and the first match wins.
- Directories that cannot be read are skipped; the rest of the tree is still searched.
- Returns found, the matched path and its modification time.`

	// StatPathToolDoc describes the StatPath tool.
	StatPathToolDoc = `Reports whether a path exists and what it is.

Usage:
- path must be absolute.
- Returns exists, is_file, is_dir, size and the modification time (symlinks are followed).`

	// ListDirectoryToolDoc describes the ListDirectory tool.
	ListDirectoryToolDoc = `Lists the entries directly inside a directory (not recursive).

Usage:
- path must be an absolute directory.
- kind is "files", "dirs" or "all" (default).
- ignore is an optional list of glob patterns matched against entry names.`

	// PathInfoToolDoc describes the PathInfo tool.
	PathInfoToolDoc = `Splits a path string into its parts without touching the filesystem.

Usage:
- Accepts '/' or '\' separators; results always use '/'.
- Returns the formatted path, file name, extension (with dot), stem, and directory name.
- When combine_with is set, also returns both paths joined with exactly one '/'.`

	// MakeDirectoryToolDoc describes the MakeDirectory tool.
	MakeDirectoryToolDoc = `Creates a directory and any missing parents. Succeeds if it already exists.

Usage:
- path must be absolute.`

	// RunCommandToolDoc describes the RunCommand tool.
	RunCommandToolDoc = `Runs a command line in the system shell and returns everything it printed, with stderr merged into stdout.

Usage:
- command is required and is checked against the server's command policy.
- timeout_ms optionally overrides the default timeout, up to the configured maximum.
- A non-zero exit status is reported in exit_code together with the output; it is not an error.`
)
