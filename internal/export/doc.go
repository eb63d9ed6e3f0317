// Package export writes fetched panoramas and building footprints to disk:
// JPEG images, GeoJSON feature collections, ESRI shapefiles and a per-run
// manifest.
package export
