package emu

import (
	"context"
	"io"
)

// Module is the query contract the import pipeline depends on. It mirrors the
// EMu search workflow: establish a result set with FindTerms or FindKeys,
// then page through it with Fetch. The import jobs never depend on the
// transport behind this interface.
type Module interface {
	// FindTerms runs a filtered search and returns the hit count.
	FindTerms(ctx context.Context, terms Terms) (int, error)

	// FindKeys establishes a result set from explicit irns, preserving order.
	FindKeys(ctx context.Context, keys []int64) (int, error)

	// Fetch pages rows from the current result set. flag is the paging mode
	// ("start" pages from offset); count -1 fetches the remainder.
	Fetch(ctx context.Context, flag string, offset, count int, columns []string) (*Results, error)

	// FetchResource streams the binary resource attached to a multimedia
	// record. Returns ErrResolutionNotFound for the known missing-resolution
	// condition; any other error is unrecoverable.
	FetchResource(ctx context.Context, irn int64) (io.ReadCloser, error)
}

// ModuleProvider hands out a Module bound to one EMu table.
type ModuleProvider interface {
	Module(name string) Module
}

// Results is one page of fetched rows.
type Results struct {
	Count int      `json:"count"`
	Rows  []Record `json:"rows"`
}
