// Package file reads documents from the filesystem or from a stream.
//
// A Fetcher reads its source once, when it is constructed, and hands out
// copies of the cached bytes from Fetch. It implements config.DataFetcher,
// so the same value feeds config.Provider and the edat parser:
//
//	fetcher, err := file.NewFetcher("app.edat")()
//	if err != nil {
//	    // not found, permission denied, path is a directory
//	}
//	data, _ := fetcher.Fetch()
//	tbl, err := parse.Parse(data, parse.WithName(fetcher.Path()))
//
// NewReaderFetcher does the same for an io.Reader such as os.Stdin. The
// name given to it is what Path reports.
//
// Errors carry the path; use errors.Is(err, file.ErrPathIsDirectory) to
// detect a directory.
package file
