// Package render draws spectrograms as log-magnitude heat maps and writes
// them out as vector PDF documents.
//
// PDFRenderer implements the stft.Plotter interface, so it plugs into the
// analysis pipeline via stft.WithPlotter. The rendered figure is an opaque
// io.WriterTo; ExportPDF persists it under a caller-chosen directory.
package render
