// Package service hosts the Word document MCP server.
//
// It wires the document editor facade to MCP tool and resource handlers and
// serves them over stdio for local clients or HTTP for remote ones. Both
// transports share the same registration path so tool behavior never depends
// on how the server is reached.
package service
