package storage

import (
	"bytes"
	"errors"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/helix/internal/helix"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir(), nil)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	p := helix.DefaultParams()
	p.SegmentCount = 12
	id, err := st.Save(p, 0.5)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" {
		t.Error("expected non-empty snapshot id")
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if diff := cmp.Diff(p, meta.Params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
	if meta.Primitives != 36 {
		t.Errorf("expected 36 primitives, got %d", meta.Primitives)
	}
	if meta.Rotation != 0.5 {
		t.Errorf("expected rotation 0.5, got %f", meta.Rotation)
	}

	rows, err := st.LoadGeometry(id)
	if err != nil {
		t.Fatalf("load geometry failed: %v", err)
	}
	if len(rows) != 36 {
		t.Fatalf("expected 36 rows, got %d", len(rows))
	}
	geom := helix.Build(p)
	if math.Abs(rows[1].Position[0]-geom.StrandA[1].Position.X) > 1e-6 {
		t.Errorf("expected x %.6f, got %.6f", geom.StrandA[1].Position.X, rows[1].Position[0])
	}
	if rows[24].Kind != "connector" || rows[12].Kind != "strand_B" {
		t.Errorf("unexpected row kinds %q %q", rows[12].Kind, rows[24].Kind)
	}
}

func TestStoreUniqueIDs(t *testing.T) {
	st := New(t.TempDir(), nil)
	fixed := time.Unix(100, 0)
	st.now = func() time.Time { return fixed }

	a, err := st.Save(helix.DefaultParams(), 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.Save(helix.DefaultParams(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("expected distinct ids, got %s twice", a)
	}

	list, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 snapshots, got %d", len(list))
	}
}

func TestStoreNotFound(t *testing.T) {
	st := New(t.TempDir(), nil)
	if _, err := st.Load("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := st.LoadGeometry("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListMissingDir(t *testing.T) {
	st := New(t.TempDir()+"/nope", nil)
	list, err := st.List()
	if err != nil || len(list) != 0 {
		t.Errorf("expected empty list, got %v (%v)", list, err)
	}
}

func TestGeometryCSVRoundTrip(t *testing.T) {
	p := helix.DefaultParams()
	p.SegmentCount = 3
	var buf bytes.Buffer
	if err := WriteGeometryCSV(&buf, helix.Build(p)); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "kind,index,x,y,z,dx,dy,dz\n") {
		t.Errorf("unexpected header: %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}
	rows, err := ReadGeometryCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 9 {
		t.Errorf("expected 9 rows, got %d", len(rows))
	}
}

func TestReadGeometryCSVRejectsBadRows(t *testing.T) {
	bad := "kind,index,x,y,z,dx,dy,dz\nstrand_A,x,0,0,0,0,0,0\n"
	if _, err := ReadGeometryCSV(strings.NewReader(bad)); err == nil {
		t.Error("expected error for bad index")
	}
}

func TestSaveFailureRemovesDir(t *testing.T) {
	dir := t.TempDir()
	st := New(dir, nil)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	p := helix.DefaultParams()
	p.HelixRadius = math.NaN()
	id, err := st.Save(p, 0)
	if err == nil {
		t.Fatal("expected error saving NaN params")
	}
	if id != "" {
		t.Errorf("expected empty id on failure, got %q", id)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no snapshot dirs, got %d", len(entries))
	}
}
