package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/katalvlaran/agglo/volume"
)

// header is the fixed 12-byte prefix shared by affinity and label files:
// three little-endian uint32 dimensions, width/height/depth.
type header struct {
	W, H, D uint32
}

func readHeader(f *os.File) (header, error) {
	var h header
	if err := binary.Read(f, binary.LittleEndian, &h); err != nil {
		return header{}, fmt.Errorf("reading volume header: %w", err)
	}

	return h, nil
}

// loadAffinity reads a flat binary affinity volume: a header followed by
// 3*W*H*D little-endian float32 values.
func loadAffinity(path string) (*volume.Affinity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening affinity file: %w", err)
	}
	defer f.Close()

	h, err := readHeader(f)
	if err != nil {
		return nil, err
	}

	data := make([]float32, 3*int(h.W)*int(h.H)*int(h.D))
	if err := binary.Read(f, binary.LittleEndian, &data); err != nil {
		return nil, fmt.Errorf("reading affinity data: %w", err)
	}

	return volume.NewAffinity(int(h.W), int(h.H), int(h.D), data)
}

// loadLabels reads a flat binary label volume: a header followed by W*H*D
// little-endian uint32 ids, used for caller-supplied ground truth.
func loadLabels(path string) (*volume.Seg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening label file: %w", err)
	}
	defer f.Close()

	h, err := readHeader(f)
	if err != nil {
		return nil, err
	}

	labels := make([]uint32, int(h.W)*int(h.H)*int(h.D))
	if err := binary.Read(f, binary.LittleEndian, &labels); err != nil {
		return nil, fmt.Errorf("reading label data: %w", err)
	}

	return volume.NewSeg(int(h.W), int(h.H), int(h.D), labels)
}

// gtShapedSeg wraps labels as a segmentation volume matching gt's
// dimensions, for comparing a final run's output against ground truth.
func gtShapedSeg(gt *volume.Seg, labels []uint32) (*volume.Seg, error) {
	return volume.NewSeg(gt.W, gt.H, gt.D, labels)
}
