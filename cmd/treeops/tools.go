package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// FindInput contains parameters for finding files.
	FindInput struct {
		Path      string `json:"path,omitempty" jsonschema:"Directory to search, relative to the server root (default: root)"`
		Extension string `json:"extension,omitempty" jsonschema:"Suffix the file path must end with, including the dot, e.g. .js"`
		BaseName  string `json:"baseName,omitempty" jsonschema:"Exact file name without its extension"`
	}

	// FindOutput contains the matching files.
	FindOutput struct {
		Files []string `json:"files"`
		Count int      `json:"count"`
	}

	// CopyInput contains parameters for copying files.
	CopyInput struct {
		Source      string `json:"source" jsonschema:"Source directory, relative to the server root"`
		Destination string `json:"destination" jsonschema:"Destination directory, relative to the server root; created if missing"`
		Extension   string `json:"extension,omitempty" jsonschema:"Only copy files whose path ends with this suffix"`
		BaseName    string `json:"baseName,omitempty" jsonschema:"Only copy files with this name (without extension)"`
	}

	// CopyOutput contains the source paths that were copied.
	CopyOutput struct {
		Copied    []string `json:"copied"`
		Count     int      `json:"count"`
		WholeTree bool     `json:"wholeTree,omitempty"`
	}

	// DeleteInput contains parameters for deleting files.
	DeleteInput struct {
		Path      string `json:"path" jsonschema:"Directory to delete from, relative to the server root"`
		Extension string `json:"extension,omitempty" jsonschema:"Only delete files whose path ends with this suffix"`
		BaseName  string `json:"baseName,omitempty" jsonschema:"Only delete files with this name (without extension)"`
		Confirm   string `json:"confirm" jsonschema:"Must be set to 'yes' to confirm deletion"`
	}

	// DeleteOutput contains the removed paths.
	DeleteOutput struct {
		Deleted   []string `json:"deleted"`
		Count     int      `json:"count"`
		WholeTree bool     `json:"wholeTree,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "find",
		Description: "Recursively list files under a directory. Filter by extension suffix and/or base name; with neither, every file is returned. Directories are never listed.",
	}, handleFind)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "copy",
		Description: "Copy files from source to destination, mirroring directory structure. With a filter, returns the copied source paths. Without one, copies the whole tree and returns no paths.",
	}, handleCopy)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete",
		Description: "Delete matching files and prune directories left empty. Without a filter the whole directory is removed. Requires confirm='yes'. This cannot be undone.",
	}, handleDelete)
}
