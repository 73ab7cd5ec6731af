// Package api contains the HTTP handlers for the public JSON API: the
// authentication endpoints and one handler per directory entity.
//
// Response shapes and status codes intentionally vary across endpoint
// families to stay compatible with the API's historical behavior; see the
// shared package for the envelope types.
package api
