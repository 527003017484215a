// Package formatter serializes feature collections and writes them to
// their destination (a file or any io.Writer, typically stdout).
package formatter
