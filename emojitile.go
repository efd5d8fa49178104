/*
Package emojitile is a library for splitting an image into a grid of square
tiles suitable for uploading as custom emoji.
*/
package emojitile

import "log"

// Converter turns images into tile sets and writes them to disk.
type Converter struct {
	logger *log.Logger
}

// New returns a Converter that logs its progress to logger.
func New(logger *log.Logger) *Converter {
	return &Converter{
		logger: logger,
	}
}
