// Package render turns a normalized paper.Document into a printable file.
//
// The default path composes the document into an ordered list of blocks,
// rasterizes them onto one tall canvas at an oversampling factor, slices the
// canvas into A4-height bands and assembles those bands into a PDF. The same
// raster is placed on every page, shifted upward by the height already
// consumed, so page k shows the k-th band.
//
// An alternative Chromium engine prints an HTML rendering of the document
// instead of a raster.
package render
