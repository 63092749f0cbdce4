// Package main hosts the attnview CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, then hands off to the
// web server, the terminal browser, or one of the reporting commands (list,
// show, check). Behavior lives in the internal packages; commands here only
// wire config, logging, and output formatting together.
package main
