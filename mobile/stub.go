//go:build !mobile

// Placeholder for regular builds; the binding lives in mobile.go.
package mobile

// Dummy keeps the package exported for ebitenmobile.
func Dummy() {}
