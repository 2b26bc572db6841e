// Package web provides the HTTP server and catalog pages for go-pagecatalog.
//
// Every request to the catalog or the JSON listing walks the pages directory
// again; nothing is cached between requests.
package web
