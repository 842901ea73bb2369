package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerGetProfileTool(srv, svc)
	registerSaveProfileTool(srv, svc)
	registerCreateGroupTool(srv, svc)
	registerGetGroupTool(srv, svc)
	registerSendMessageTool(srv, svc)
	registerScheduleMeetingTool(srv, svc)
	registerListMeetingsTool(srv, svc)
}

func registerGetProfileTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_profile",
		mcp.WithDescription("Return the saved user profile, or null when none is saved."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p, err := svc.Profile(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(p)
	})
}

func registerSaveProfileTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"save_profile",
		mcp.WithDescription("Save the user profile. Required before messages or meetings can be posted."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Display name shown on messages."),
		),
		mcp.WithString("teachingInterest",
			mcp.Required(),
			mcp.Description("Subject the user wants to teach."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name             string `json:"name"`
			TeachingInterest string `json:"teachingInterest"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		p, err := svc.SaveProfile(ctx, args.Name, args.TeachingInterest)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(p)
	})
}

func registerCreateGroupTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_group",
		mcp.WithDescription("Create a study group and make it the active group. Replaces any stored group."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Group name."),
		),
		mcp.WithString("description",
			mcp.Description("Optional group description."),
		),
		mcp.WithNumber("limit",
			mcp.Required(),
			mcp.Description("Member limit, between 2 and 15."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Limit       int    `json:"limit"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		res, err := svc.CreateGroup(ctx, args.Name, args.Description, args.Limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerGetGroupTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_group",
		mcp.WithDescription("Return the active group with its full message timeline."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		g, err := svc.Group(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(g)
	})
}

func registerSendMessageTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"send_message",
		mcp.WithDescription("Post a message to the active group as the current user."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Message text. Blank text is ignored."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		msg, err := svc.SendMessage(ctx, text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if msg == nil {
			return mcp.NewToolResultText("nothing to send"), nil
		}
		return toJSONResult(msg)
	})
}

func registerScheduleMeetingTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"schedule_meeting",
		mcp.WithDescription("Schedule a video meeting and announce it on the active group."),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("What the meeting is about."),
		),
		mcp.WithString("date",
			mcp.Description("Local date as YYYY-MM-DD."),
		),
		mcp.WithString("time",
			mcp.Description("Local time as HH:MM."),
		),
		mcp.WithString("in",
			mcp.Description("Relative start such as 30m or 1d2h, instead of date and time."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Topic string `json:"topic"`
			Date  string `json:"date"`
			Time  string `json:"time"`
			In    string `json:"in"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		res, err := svc.ScheduleMeeting(ctx, ScheduleOptions{
			Topic: args.Topic,
			Date:  args.Date,
			Time:  args.Time,
			In:    args.In,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerListMeetingsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_meetings",
		mcp.WithDescription("List meetings scheduled during this server's lifetime, oldest first."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		meetings, err := svc.Meetings(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"meetings": meetings,
			"count":    len(meetings),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
