package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/treeops/internal/filesystem"
	"github.com/taigrr/treeops/internal/types"
)

var fileSystem *filesystem.Service

func relativePaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, fileSystem.RelativePath(p))
	}
	return out
}

func handleFind(ctx context.Context, req *mcp.CallToolRequest, input FindInput) (*mcp.CallToolResult, FindOutput, error) {
	dir, err := fileSystem.ResolvePath(input.Path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, err
	}

	files, err := fileSystem.Find(dir, types.Filter{Extension: input.Extension, BaseName: input.BaseName})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, err
	}

	files = relativePaths(files)
	return nil, FindOutput{Files: files, Count: len(files)}, nil
}

func handleCopy(ctx context.Context, req *mcp.CallToolRequest, input CopyInput) (*mcp.CallToolResult, CopyOutput, error) {
	if strings.TrimSpace(input.Destination) == "" {
		return &mcp.CallToolResult{IsError: true}, CopyOutput{}, fmt.Errorf("destination cannot be empty")
	}

	src, err := fileSystem.ResolvePath(input.Source)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CopyOutput{}, err
	}
	dst, err := fileSystem.ResolvePath(input.Destination)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CopyOutput{}, err
	}

	sel := types.Filtered(types.Filter{Extension: input.Extension, BaseName: input.BaseName})
	copied, err := fileSystem.Copy(src, dst, sel)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CopyOutput{WholeTree: sel.IsWholeTree()}, err
	}

	copied = relativePaths(copied)
	return nil, CopyOutput{Copied: copied, Count: len(copied), WholeTree: sel.IsWholeTree()}, nil
}

func handleDelete(ctx context.Context, req *mcp.CallToolRequest, input DeleteInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.Confirm != "yes" {
		return &mcp.CallToolResult{IsError: true}, DeleteOutput{},
			fmt.Errorf("deletion not confirmed: set confirm='yes' to proceed")
	}

	dir, err := fileSystem.ResolvePath(input.Path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, DeleteOutput{}, err
	}

	sel := types.Filtered(types.Filter{Extension: input.Extension, BaseName: input.BaseName})
	if sel.IsWholeTree() && dir == fileSystem.Root() {
		return &mcp.CallToolResult{IsError: true}, DeleteOutput{WholeTree: true},
			fmt.Errorf("refusing to delete the server root without a filter")
	}

	deleted, err := fileSystem.Delete(dir, sel)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, DeleteOutput{WholeTree: sel.IsWholeTree()}, err
	}

	deleted = relativePaths(deleted)
	return nil, DeleteOutput{Deleted: deleted, Count: len(deleted), WholeTree: sel.IsWholeTree()}, nil
}
