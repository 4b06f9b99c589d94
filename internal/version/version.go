// internal/version/version.go
package version

// Version is stamped at release; keep a dev default for local builds.
const Version = "0.2.0"
