// Package client implements the interactive caller side of the number
// registry: a thin stub over the generated gRPC client plus the command
// loop that parses user input, validates it locally, and renders the
// service's responses.
package client
