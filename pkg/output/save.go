package output

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dixieflatline76/Easel/pkg/video"
	"github.com/dixieflatline76/Easel/util"
)

// SavedImage describes one file written by a save operation.
type SavedImage struct {
	Filename  string `json:"filename"`
	Subfolder string `json:"subfolder"`
	Type      string `json:"type"`
}

// Saver writes image batches to the output directory with sequential
// counters, optional seed-tagged filenames, and embedded PNG metadata.
type Saver struct {
	outputDir string
	encoder   png.Encoder
}

// NewSaver creates a saver targeting outputDir. The compression level is
// the 0-9 zlib scale and maps onto the encoder's coarser presets.
func NewSaver(outputDir string, compression int) *Saver {
	return &Saver{
		outputDir: outputDir,
		encoder:   png.Encoder{CompressionLevel: compressionLevel(compression)},
	}
}

func compressionLevel(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

// Save writes every image in the batch as PNG. Filenames follow
// "prefix_00001_.png", or "prefix_00001_12345_.png" when a seed is given;
// the counter continues from the highest one already on disk for the
// prefix, whether or not those files carried seeds. Metadata values are
// JSON-encoded into tEXt chunks.
func (s *Saver) Save(ctx context.Context, images video.Batch, prefix string, seed *uint64, metadata map[string]any) ([]SavedImage, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: nothing to save", video.ErrEmptyBatch)
	}
	if prefix == "" {
		prefix = "Easel"
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	counter := util.NewSafeIntWithValue(s.nextCounter(prefix))

	textChunks, err := encodeMetadata(metadata)
	if err != nil {
		return nil, err
	}

	results := make([]SavedImage, 0, len(images))
	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var file string
		if seed != nil {
			file = fmt.Sprintf("%s_%05d_%d_.png", prefix, counter.Value(), *seed)
		} else {
			file = fmt.Sprintf("%s_%05d_.png", prefix, counter.Value())
		}

		if err := s.writePNG(filepath.Join(s.outputDir, file), img, textChunks); err != nil {
			return nil, err
		}

		results = append(results, SavedImage{Filename: file, Type: "output"})
		counter.Increment()
	}
	return results, nil
}

// nextCounter scans the output directory for files written under the prefix
// and returns one past the highest 5-digit counter found, or 1 when none
// exist.
func (s *Saver) nextCounter(prefix string) int {
	entries, err := os.ReadDir(s.outputDir)
	if err != nil {
		return 1
	}

	highest := 0
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix+"_") || !strings.HasSuffix(name, ".png") {
			continue
		}
		// prefix_00042_.png or prefix_00042_12345_.png; the counter is the
		// first 5-digit field after the prefix.
		rest := strings.TrimPrefix(strings.TrimSuffix(name, ".png"), prefix+"_")
		for _, part := range strings.Split(rest, "_") {
			if len(part) != 5 {
				continue
			}
			if n, err := strconv.Atoi(part); err == nil {
				if n > highest {
					highest = n
				}
			}
			break
		}
	}
	return highest + 1
}

func (s *Saver) writePNG(path string, img image.Image, textChunks []byte) error {
	var buf bytes.Buffer
	if err := s.encoder.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}

	data := buf.Bytes()
	if len(textChunks) > 0 {
		spliced, err := spliceAfterHeader(data, textChunks)
		if err != nil {
			return fmt.Errorf("embedding metadata in %s: %w", filepath.Base(path), err)
		}
		data = spliced
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// encodeMetadata builds raw tEXt chunks, one per key, with JSON-encoded
// values.
func encodeMetadata(metadata map[string]any) ([]byte, error) {
	if len(metadata) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	for key, value := range metadata {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding metadata %q: %w", key, err)
		}
		writeChunk(&buf, "tEXt", append(append([]byte(key), 0), encoded...))
	}
	return buf.Bytes(), nil
}

// pngHeaderLen is the 8-byte signature plus the fixed-size IHDR chunk.
const pngHeaderLen = 8 + 4 + 4 + 13 + 4

// spliceAfterHeader inserts raw chunks immediately after IHDR, which is
// where ancillary text chunks belong.
func spliceAfterHeader(data, chunks []byte) ([]byte, error) {
	if len(data) < pngHeaderLen {
		return nil, fmt.Errorf("truncated PNG")
	}
	out := make([]byte, 0, len(data)+len(chunks))
	out = append(out, data[:pngHeaderLen]...)
	out = append(out, chunks...)
	out = append(out, data[pngHeaderLen:]...)
	return out, nil
}

func writeChunk(buf *bytes.Buffer, chunkType string, data []byte) {
	var length [4]byte
	putUint32(length[:], uint32(len(data)))
	buf.Write(length[:])

	buf.WriteString(chunkType)
	buf.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(data)
	var sum [4]byte
	putUint32(sum[:], crc.Sum32())
	buf.Write(sum[:])
}

func putUint32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
