// internal/version/version.go
package version

// Version is the tool version reported by -version and the settings report.
const Version = "1.1.0"
