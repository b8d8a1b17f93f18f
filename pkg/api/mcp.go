package api

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wordforge/wordforge/pkg/dataset"
	"github.com/wordforge/wordforge/pkg/kit"
)

// RegisterMCPTools registers the wordforge MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, reg *dataset.Registry) {
	registerLookupWord(srv, reg)
	registerListDatasets(srv, reg)
}

func registerLookupWord(srv *server.MCPServer, reg *dataset.Registry) {
	tool := mcp.NewTool("lookup_word",
		mcp.WithDescription("Look up a wordform in an exported language dataset (e.g. French nouns) and return its normalized fields such as plural and gender/number annotations."),
		mcp.WithString("language", mcp.Required(), mcp.Description("Language name, e.g. French")),
		mcp.WithString("data_type", mcp.Required(), mcp.Description("Data type, e.g. nouns")),
		mcp.WithString("wordform", mcp.Required(), mcp.Description("The wordform to look up")),
	)

	kit.RegisterMCPTool(srv, tool, lookupEndpoint(reg), func(req mcp.CallToolRequest) (any, error) {
		args := req.GetArguments()
		r := &lookupReq{}
		r.Language, _ = args["language"].(string)
		r.DataType, _ = args["data_type"].(string)
		r.Wordform, _ = args["wordform"].(string)
		if r.Language == "" || r.DataType == "" || r.Wordform == "" {
			return nil, fmt.Errorf("language, data_type and wordform are required")
		}
		return r, nil
	})
}

func registerListDatasets(srv *server.MCPServer, reg *dataset.Registry) {
	tool := mcp.NewTool("list_datasets",
		mcp.WithDescription("List the loaded language datasets with their source, license and entry counts."),
	)

	kit.RegisterMCPTool(srv, tool, listDatasetsEndpoint(reg), func(mcp.CallToolRequest) (any, error) {
		return nil, nil
	})
}
