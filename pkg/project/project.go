// Package project persists a whole editing state as a single compressed,
// checksummed file.
//
// File layout:
//
//	[magic "ANM1":4][version:1][crc32:4][snappy(JSON document):N]
//
// The checksum covers the compressed payload. Loading always yields a fresh
// Project, so a failed load never disturbs state already held by the caller.
package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-animator/pkg/keyframe"
)

// Ext is the default project file extension.
const Ext = ".anm"

// Project is everything a session needs to resume editing.
type Project struct {
	ID         uuid.UUID          `json:"id"`
	RasterPath string             `json:"raster_path,omitempty"`
	Sequence   *keyframe.Sequence `json:"sequence"`
	SavedAt    time.Time          `json:"saved_at"`
}

// New creates a project with a fresh ID and an empty sequence.
func New(rasterPath string) *Project {
	return &Project{
		ID:         uuid.New(),
		RasterPath: rasterPath,
		Sequence:   keyframe.NewSequence(),
	}
}
