// Package lib holds helpers that do not fit strictly into other layers.
//
// Subpackages:
//   - utils: output helpers shared by the CLI
package lib
