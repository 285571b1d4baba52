// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and page rendering for the
// browser-facing site. Session resolution, access control, and logging
// concerns are all handled at this layer before requests are forwarded
// to the service layer.
package http
