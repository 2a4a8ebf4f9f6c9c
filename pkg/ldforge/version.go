// Package ldforge holds build metadata for the ldforge module.
package ldforge

// Version is the released version of the ldforge tool.
const Version = "0.1.0"
