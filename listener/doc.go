// Package listener runs named HTTP servers inside an fx application.
//
// NewModule("api", ...) starts a server for the http.Handler tagged
// `name:"api"` when the application starts and shuts it down gracefully on
// stop. Its Config comes from the options given to NewModule, or, when
// there are none, from a Config tagged with the same name, typically read
// from an edat document with config.Provider.
package listener
