// Package version exposes the build version of statusctl.
//
// Version, git commit, branch and build time are set at compile time via
// -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/statuscode/version.Version=1.0.0" ./cmd/statusctl
package version
