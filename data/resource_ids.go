package data

import (
	resource "github.com/quasilyte/ebitengine-resource"
)

// Resource IDs
const (
	_ resource.FontID = iota
	FontLabel
)

const (
	_ resource.ImageID = iota
	ImagePlayer
)
