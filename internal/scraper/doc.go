// Package scraper implements the image-resolution core: extracting image
// references from category listing markup, normalizing thumbnail URLs into
// full-size image URLs, and the synonym-fallback pipeline that drives both.
package scraper
