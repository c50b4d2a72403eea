package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/helix/internal/helix"
)

const (
	metadataFile = "metadata.json"
	geometryFile = "geometry.csv"
)

var ErrNotFound = errors.New("storage: snapshot not found")

// Store keeps helix snapshots on disk, one directory per snapshot.
type Store struct {
	baseDir string
	logger  *zap.Logger
	now     func() time.Time
}

func New(baseDir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{baseDir: baseDir, logger: logger, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID         string       `json:"id"`
	Timestamp  time.Time    `json:"timestamp"`
	Params     helix.Params `json:"params"`
	Rotation   float64      `json:"rotation"`
	Primitives int          `json:"primitives"`
}

// Row is one primitive of a stored geometry. For strand points the
// direction is zero.
type Row struct {
	Kind     string
	Index    int
	Position [3]float64
	Dir      [3]float64
}

var header = []string{"kind", "index", "x", "y", "z", "dx", "dy", "dz"}

// Save builds the helix for p and stores params and geometry. A failed
// save removes the snapshot directory.
func (s *Store) Save(p helix.Params, rotation float64) (id string, err error) {
	now := s.now()
	id = fmt.Sprintf("helix_%d", now.UnixMilli())
	dir := filepath.Join(s.baseDir, id)
	for n := 1; ; n++ {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			break
		}
		id = fmt.Sprintf("helix_%d_%d", now.UnixMilli(), n)
		dir = filepath.Join(s.baseDir, id)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			if rmErr := os.RemoveAll(dir); rmErr != nil {
				s.logger.Warn("removing partial snapshot", zap.String("id", id), zap.Error(rmErr))
			}
			id = ""
		}
	}()

	geom := helix.Build(p)
	meta := Metadata{
		ID:         id,
		Timestamp:  now,
		Params:     p,
		Rotation:   rotation,
		Primitives: geom.Len(),
	}
	if err := writeJSON(filepath.Join(dir, metadataFile), meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(dir, geometryFile))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := WriteGeometryCSV(f, geom); err != nil {
		return "", err
	}

	s.logger.Debug("snapshot saved", zap.String("id", id), zap.Int("primitives", meta.Primitives))
	return id, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteGeometryCSV writes strand A, strand B and connectors as rows.
func WriteGeometryCSV(w io.Writer, g helix.Geometry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, strand := range [][]helix.StrandPoint{g.StrandA, g.StrandB} {
		for _, p := range strand {
			if err := cw.Write(row("strand_"+p.Strand.String(), p.Index, p.Position.X, p.Position.Y, p.Position.Z, 0, 0, 0)); err != nil {
				return err
			}
		}
	}
	for _, c := range g.Connectors {
		if err := cw.Write(row("connector", c.Index, c.Position.X, c.Position.Y, c.Position.Z, c.Direction.X, c.Direction.Y, c.Direction.Z)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(kind string, index int, vals ...float64) []string {
	out := []string{kind, strconv.Itoa(index)}
	for _, v := range vals {
		out = append(out, strconv.FormatFloat(v, 'f', 6, 64))
	}
	return out
}

// List returns stored snapshots, oldest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	out := make([]Metadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			s.logger.Debug("skipping snapshot", zap.String("dir", entry.Name()), zap.Error(err))
			continue
		}
		out = append(out, *meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (s *Store) Load(id string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) GeometryPath(id string) string {
	return filepath.Join(s.baseDir, id, geometryFile)
}

func (s *Store) LoadGeometry(id string) ([]Row, error) {
	f, err := os.Open(s.GeometryPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	defer f.Close()
	return ReadGeometryCSV(f)
}

func ReadGeometryCSV(r io.Reader) ([]Row, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Row{}, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("storage: line %d: expected %d fields, got %d", i+2, len(header), len(rec))
		}
		idx, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("storage: line %d: %w", i+2, err)
		}
		r := Row{Kind: rec[0], Index: idx}
		for j := 0; j < 6; j++ {
			v, err := strconv.ParseFloat(rec[2+j], 64)
			if err != nil {
				return nil, fmt.Errorf("storage: line %d: %w", i+2, err)
			}
			if j < 3 {
				r.Position[j] = v
			} else {
				r.Dir[j-3] = v
			}
		}
		rows = append(rows, r)
	}
	return rows, nil
}
