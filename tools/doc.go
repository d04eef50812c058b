// Package tools defines typed tools that decode and validate their input,
// run an operation and wrap the outcome into the {isError, errorMessage, data} envelope,
// and registers them with an MCP server.
package tools
