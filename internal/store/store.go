package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/fractree/internal/tree"
)

// Store keeps a gallery of finished renders, one directory per render
// with metadata.json next to the encoded image.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RenderMetadata struct {
	ID               string    `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	Seed             int64     `json:"seed"`
	Depth            int       `json:"depth"`
	Width            int       `json:"width"`
	Height           int       `json:"height"`
	Format           string    `json:"format"`
	Image            string    `json:"image"`
	Segments         int       `json:"segments"`
	CellsPainted     int       `json:"cells_painted"`
	SegmentsPerDepth []int     `json:"segments_per_depth"`
}

// Save writes the image bytes and metadata for one render and returns
// the generated render id.
func (s *Store) Save(seed int64, depth, width, height int, format string, stats tree.Stats, image []byte) (string, error) {
	renderID := fmt.Sprintf("tree_%d", time.Now().Unix())
	renderDir := filepath.Join(s.baseDir, renderID)

	if err := os.MkdirAll(renderDir, 0755); err != nil {
		return "", err
	}

	imageName := "tree." + format
	if err := os.WriteFile(filepath.Join(renderDir, imageName), image, 0644); err != nil {
		return "", err
	}

	meta := RenderMetadata{
		ID:               renderID,
		Timestamp:        time.Now(),
		Seed:             seed,
		Depth:            depth,
		Width:            width,
		Height:           height,
		Format:           format,
		Image:            imageName,
		Segments:         stats.Segments,
		CellsPainted:     stats.CellsPainted,
		SegmentsPerDepth: stats.SegmentsPerDepth,
	}

	metaFile, err := os.Create(filepath.Join(renderDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	return renderID, nil
}

func (s *Store) List() ([]RenderMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RenderMetadata{}, nil
		}
		return nil, err
	}

	renders := make([]RenderMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RenderMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		renders = append(renders, meta)
	}

	return renders, nil
}

func (s *Store) Load(renderID string) (*RenderMetadata, error) {
	metaPath := filepath.Join(s.baseDir, renderID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RenderMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}
