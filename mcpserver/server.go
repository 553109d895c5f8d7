package mcpserver

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/urldial/urldial/logutil"
	"github.com/urldial/urldial/probe"
	"github.com/urldial/urldial/urlparse"
)

const (
	serverName = "urldial"

	// toolCallBurst and toolCallRefill bound how fast a single client can
	// drive probes through the server.
	toolCallBurst  = 10
	toolCallRefill = 2.0

	// defaultCheckTimeout is the connection timeout for url_check when the
	// caller does not pass timeout_seconds.
	defaultCheckTimeout = 2 * time.Second
)

// New builds an MCP server with both urldial tools registered, ready to
// serve on any mcp-go transport.
func New(version string) *server.MCPServer {
	s := server.NewMCPServer(serverName, version)
	limiter := NewRateLimiter(toolCallBurst, toolCallRefill)
	log := logutil.NewLogger("mcpserver")

	s.AddTool(newParseTool(), limiter.wrap("url_parse", logCalls(log, "url_parse", handleParse)))
	s.AddTool(newCheckTool(), limiter.wrap("url_check", logCalls(log, "url_check", handleCheck)))

	return s
}

// ServeStdio runs the MCP server on stdin/stdout until the client
// disconnects. Logs go to stderr so they never corrupt the protocol stream.
func ServeStdio(version string) error {
	logutil.Info("starting MCP server", "name", serverName, "version", version)
	return server.ServeStdio(New(version))
}

// logCalls records each tool invocation at debug level.
func logCalls(log *logutil.ComponentLogger, toolName string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log.WithOperation(toolName).Debug("tool call received")
		return next(ctx, request)
	}
}

func newParseTool() mcp.Tool {
	return mcp.NewTool("url_parse",
		mcp.WithDescription("Parse an http URL into its scheme, host, path, and port components."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("URL to parse, e.g. http://example.com/index.html"),
		),
	)
}

func newCheckTool() mcp.Tool {
	return mcp.NewTool("url_check",
		mcp.WithDescription("Probe an http URL over TCP and report status, latency, and a suggested action on failure."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("URL to probe, e.g. http://localhost/"),
		),
		mcp.WithNumber("timeout_seconds",
			mcp.Description("Connection timeout in seconds (default 2)"),
		),
	)
}

func handleParse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := GetArgsMap(request)

	raw, ok := GetStringParam(args, "url")
	if !ok {
		return mcp.NewToolResultError("missing required parameter: url"), nil
	}

	u, err := urlparse.Parse(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return MarshalToolResult(u)
}

func handleCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := GetArgsMap(request)

	raw, ok := GetStringParam(args, "url")
	if !ok {
		return mcp.NewToolResultError("missing required parameter: url"), nil
	}

	u, err := urlparse.Parse(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	timeout := defaultCheckTimeout
	if secs, ok := GetNumberParam(args, "timeout_seconds"); ok {
		if secs <= 0 {
			return mcp.NewToolResultError("timeout_seconds must be positive"), nil
		}
		timeout = time.Duration(secs * float64(time.Second))
	}

	prober := probe.New(probe.Config{Timeout: timeout})
	result := prober.Check(ctx, u)

	return MarshalToolResult(result)
}
