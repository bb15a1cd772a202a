// Package html extracts readable text from HTML fragments.
// It tokenises the markup without building or rendering a document, drops
// scripts, styles and other non-visible elements, decodes entities and turns
// block boundaries into newlines.
package html
