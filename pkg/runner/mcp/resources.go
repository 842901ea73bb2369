package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerProfileResource(srv, svc)
	registerGroupResource(srv, svc)
	registerMeetingsResource(srv, svc)
}

func registerProfileResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"huddle://profile",
		"Profile",
		mcp.WithResourceDescription("The saved user profile."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		p, err := svc.Profile(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"profile": p,
			"gate":    svc.Session.Gate().String(),
		})
	})
}

func registerGroupResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"huddle://group",
		"Group",
		mcp.WithResourceDescription("The active group and its message timeline."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		g, err := svc.Group(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"group": g,
			"count": len(g.Messages),
		})
	})
}

func registerMeetingsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"huddle://meetings",
		"Meetings",
		mcp.WithResourceDescription("Meetings scheduled during this server's lifetime."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		meetings, err := svc.Meetings(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"meetings": meetings,
			"count":    len(meetings),
		})
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
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
