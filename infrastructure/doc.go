// Package infrastructure contains adapter implementations of the core ports:
// cache backends, filesystem access, logging, and Markdown rendering.
package infrastructure
