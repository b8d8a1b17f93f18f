package api

import (
	"context"

	"github.com/wordforge/wordforge/pkg/dataset"
	"github.com/wordforge/wordforge/pkg/kit"
)

// Shared request/response types used by both HTTP and MCP transports.

type lookupReq struct {
	Language string
	DataType string
	Wordform string
}

type datasetsResponse struct {
	Datasets []dataset.Info `json:"datasets"`
}

func lookupEndpoint(reg *dataset.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*lookupReq)
		return reg.Lookup(req.Language, req.DataType, req.Wordform)
	}
}

func listDatasetsEndpoint(reg *dataset.Registry) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return datasetsResponse{Datasets: reg.ListDatasets()}, nil
	}
}
