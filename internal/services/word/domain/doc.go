// Package domain translates MCP tool calls into editor operations.
//
// The package is intentionally explicit about that mapping:
// - decode and shape-check typed tool inputs,
// - route calls to the document editor facade,
// - and fold every outcome into the uniform status/message envelope that
//   clients render.
//
// Editor failures surface as error envelopes, never as protocol errors;
// protocol errors are reserved for infrastructure faults.
package domain
