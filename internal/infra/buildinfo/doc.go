// Package buildinfo exposes build-time version information for Calculon.
//
// Values are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/calculon-go/internal/infra/buildinfo.Version=v1.0.0 \
//	  -X github.com/yndnr/calculon-go/internal/infra/buildinfo.Commit=abc123"
//
// GoVersion falls back to the running toolchain when not injected.
package buildinfo
