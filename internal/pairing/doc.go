// Package pairing walks the panoramas of a mission year inside a bounding box
// and pairs each one with the building footprints around it. Work is strictly
// sequential: one panorama, one building search and one detail request at a
// time.
package pairing
