package core

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tesh254/labnote/internal/api"
	"github.com/tesh254/labnote/internal/canvas"
	"github.com/tesh254/labnote/internal/version"
)

type Core struct {
}

type ListAssignmentsArgs struct {
	CourseID int `json:"course_id" jsonschema:"required"`
}

type CreateLabNoteArgs struct {
	CourseID       int    `json:"course_id" jsonschema:"required"`
	CourseName     string `json:"course_name,omitempty"`
	AssignmentID   int    `json:"assignment_id" jsonschema:"required"`
	AssignmentName string `json:"assignment_name,omitempty"`
}

type RenderHTMLArgs struct {
	HTML           string `json:"html" jsonschema:"required"`
	AssignmentName string `json:"assignment_name" jsonschema:"required"`
}

type GetNoteArgs struct {
	ID string `json:"id" jsonschema:"required"`
}

type DeleteNoteArgs struct {
	ID string `json:"id" jsonschema:"required"`
}

type ListNotesArgs struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// NewServer builds the MCP server with every labnote tool registered.
func (c *Core) NewServer(internalAPI *api.API) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "Labnote MCP Server", Version: version.GetVersion()}, nil)
	c.registerTools(server, internalAPI)
	return server
}

// StartServer serves over streamable HTTP when httpAddress is set and over
// stdio otherwise.
func (c *Core) StartServer(internalAPI *api.API, httpAddress string) error {
	server := c.NewServer(internalAPI)
	if httpAddress != "" {
		return c.ServeHTTP(server, httpAddress)
	}
	return c.ServeStdio(server)
}

func (c *Core) ServeHTTP(server *mcp.Server, httpAddress string) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	log.Printf("Labnote MCP handler listening at %s", httpAddress)
	return http.ListenAndServe(httpAddress, loggingHandler(handler))
}

func (c *Core) ServeStdio(server *mcp.Server) error {
	ctx := context.Background()
	transport := &mcp.StdioTransport{}
	t := &mcp.LoggingTransport{Transport: transport, Writer: os.Stderr}
	log.Printf("Starting Labnote MCP server with stdio transport")
	return server.Run(ctx, t)
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	result, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(result)},
		},
	}, nil, nil
}

func textResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}, nil, nil
}

func (c *Core) registerTools(server *mcp.Server, internalAPI *api.API) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_courses",
		Description: "List the Canvas courses of the configured user.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		courses, err := internalAPI.Courses(ctx)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(map[string]any{"courses": courses})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_assignments",
		Description: "List the lab assignments of a course.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ListAssignmentsArgs) (*mcp.CallToolResult, any, error) {
		assignments, err := internalAPI.LabAssignments(ctx, args.CourseID)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(map[string]any{"assignments": assignments})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_lab_note",
		Description: "Fetch an assignment and render its questions into a markdown lab note.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args CreateLabNoteArgs) (*mcp.CallToolResult, any, error) {
		course := canvas.Course{ID: args.CourseID, Name: args.CourseName}
		assignment := canvas.Assignment{ID: args.AssignmentID, Name: args.AssignmentName}
		note, err := internalAPI.CreateLabNote(ctx, course, assignment)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(note)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_html",
		Description: "Render an assignment description (HTML) into a markdown lab note without storing it.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args RenderHTMLArgs) (*mcp.CallToolResult, any, error) {
		md, err := internalAPI.RenderHTML(args.HTML, args.AssignmentName)
		if err != nil {
			return nil, nil, err
		}
		return textResult(md)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List stored lab notes with pagination.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ListNotesArgs) (*mcp.CallToolResult, any, error) {
		notes, err := internalAPI.ListNotes()
		if err != nil {
			return nil, nil, err
		}
		start, end := paginate(len(notes), args.Offset, args.Limit)
		return jsonResult(map[string]any{"notes": notes[start:end], "total": len(notes)})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_note",
		Description: "Get a stored lab note by id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args GetNoteArgs) (*mcp.CallToolResult, any, error) {
		note, err := internalAPI.GetNote(args.ID)
		if err != nil {
			return nil, nil, err
		}
		return jsonResult(note)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a stored lab note by id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DeleteNoteArgs) (*mcp.CallToolResult, any, error) {
		if err := internalAPI.DeleteNote(args.ID); err != nil {
			return nil, nil, err
		}
		return textResult("Note deleted successfully")
	})
}

// paginate clamps offset and limit to [0, total]. A zero limit means all.
func paginate(total, offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return offset, end
}
