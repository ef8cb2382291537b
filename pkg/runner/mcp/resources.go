package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// staticResource is a fixed URI whose JSON body is rebuilt on every read.
type staticResource struct {
	uri         string
	name        string
	description string
	read        func(ctx context.Context, svc *Service) (any, error)
}

var staticResources = []staticResource{{
	uri:         "iyilik://entries",
	name:        "Entries",
	description: "Every journal entry, newest first.",
	read: func(ctx context.Context, svc *Service) (any, error) {
		entries, err := svc.ListEntries(ctx, 0)
		if err != nil {
			return nil, err
		}
		return map[string]any{"entries": entries, "count": len(entries)}, nil
	},
}, {
	uri:         "iyilik://today",
	name:        "Today",
	description: "The entry logged today, or null.",
	read: func(ctx context.Context, svc *Service) (any, error) {
		today, err := svc.TodaysEntry(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"today": today}, nil
	},
}, {
	uri:         "iyilik://progress",
	name:        "Progress",
	description: "Streak, averages, mood distribution and recent energy over all entries.",
	read: func(ctx context.Context, svc *Service) (any, error) {
		return svc.Progress(ctx, "")
	},
}}

func registerResources(srv *server.MCPServer, svc *Service) {
	for _, r := range staticResources {
		r := r
		resource := mcp.NewResource(r.uri, r.name,
			mcp.WithResourceDescription(r.description),
			mcp.WithMIMEType("application/json"),
		)
		srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			body, err := r.read(ctx, svc)
			if err != nil {
				return nil, err
			}
			return jsonContents(request.Params.URI, body)
		})
	}

	template := mcp.NewResourceTemplate(
		"iyilik://entries/{id}",
		"Entry",
		mcp.WithTemplateDescription("A single entry by id."),
		mcp.WithTemplateMIMEType("application/json"),
	)
	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments, "id")
		if id == "" {
			return nil, errors.New("entry id is required")
		}
		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return jsonContents(request.Params.URI, map[string]any{"entry": dto})
	})
}

// templateArg reads a matched URI template variable, which arrives either as
// a string or as a one-element list.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func jsonContents(uri string, body any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
