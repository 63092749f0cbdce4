// Package preflight provides readiness checks for the data root, task
// folders, log directory, and listen address that attnview depends on.
//
// The CLI "attnview check" command prints every result; "attnview serve"
// runs the same checks at startup and logs failures as warnings so a
// partially populated data root can still be browsed.
package preflight
