// Package mcpserver exposes urldial's parse and probe operations as Model
// Context Protocol tools so agents can resolve and check http URLs.
//
// It reduces boilerplate for common patterns like argument extraction,
// result marshaling, and per-tool rate limiting. The server registers two
// tools, url_parse and url_check, and serves them over stdio.
package mcpserver
