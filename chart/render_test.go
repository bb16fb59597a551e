package chart

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	c "github.com/yaulin/trajplot/columns"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//fakeSource is a Source backed by a map. Column hands out the internal slices,
//so the tests can check nothing writes to them.
type fakeSource struct {
	name string
	cols map[string][]float64
}

func (f fakeSource) Name() string { return f.name }

func (f fakeSource) Column(field string) ([]float64, bool) {
	v, ok := f.cols[field]
	return v, ok
}

//trajectory returns a source with every schema column, n samples long,
//offset by off.
func trajectory(name string, n int, off float64) fakeSource {
	f := fakeSource{name: name, cols: make(map[string][]float64)}
	for j, col := range c.Required() {
		v := make([]float64, n)
		for i := range v {
			v[i] = off + float64(i*(j+1))
		}
		f.cols[col.Canonical] = v
	}
	return f
}

func lowRes() Style {
	st := DefaultStyle()
	st.DPI = 30
	st.Width, st.Height = 3, 2
	return st
}

func TestOverlaySeries(Te *testing.T) {
	srcs := []Source{trajectory("B", 5, 0), trajectory("A", 4, 1), trajectory("C", 3, 2)}
	st := lowRes()
	st.Palette = []color.Color{colornames.Red, colornames.Blue}
	ch, _ := Lookup("alt")
	F, err := Overlay(srcs, ch, st)
	if err != nil {
		Te.Fatal(err)
	}
	if !F.Legend || F.legendWidth() <= 0 {
		Te.Error("overlay without legend")
	}
	if len(F.Series) != 3 {
		Te.Fatalf("%d series, want 3", len(F.Series))
	}
	want := []string{"B", "A", "C"}
	colors := []color.Color{colornames.Red, colornames.Blue, colornames.Red}
	for i, s := range F.Series {
		if s.Label != want[i] {
			Te.Errorf("series %d labeled %s, want %s", i, s.Label, want[i])
		}
		if s.Color != colors[i] {
			Te.Errorf("series %d color %v, want %v", i, s.Color, colors[i])
		}
		if len(s.Points) != len(srcs[i].(fakeSource).cols[c.Time]) {
			Te.Errorf("series %d has %d points", i, len(s.Points))
		}
	}
	if F.Plot().X.Label.Text != "Time, s" || F.Plot().Y.Label.Text != "Altitude, km" {
		Te.Errorf("labels %q %q", F.Plot().X.Label.Text, F.Plot().Y.Label.Text)
	}
}

func TestSingle(Te *testing.T) {
	src := trajectory("A", 6, 0)
	st := lowRes()
	ch, _ := Lookup("vt")
	F, err := Single(src, ch, st)
	if err != nil {
		Te.Fatal(err)
	}
	if F.Legend || F.legendWidth() != 0 {
		Te.Error("single-record chart with a legend")
	}
	if len(F.Series) != 1 || F.Series[0].Color != colornames.Mediumvioletred {
		Te.Errorf("unexpected series %+v", F.Series)
	}
	for _, code := range []string{"agr", "end_2D", "end_3D"} {
		ch, _ := Lookup(code)
		if _, err := Single(src, ch, st); !errors.Is(err, ErrOverlayOnly) {
			Te.Errorf("%s: expected ErrOverlayOnly, got %v", code, err)
		}
	}
}

func TestFinalState(Te *testing.T) {
	A := trajectory("A", 3, 0)
	A.cols[c.Downrange] = []float64{0, 1, 5}
	A.cols[c.Crossrange] = []float64{0, 0.5, 1.2}
	B := trajectory("B", 2, 0)
	B.cols[c.Downrange] = []float64{2, 3}
	B.cols[c.Crossrange] = []float64{-1, -2}
	ch, _ := Lookup("end_2D")
	F, err := Overlay([]Source{A, B}, ch, lowRes())
	if err != nil {
		Te.Fatal(err)
	}
	want := []plotter.XY{{X: 5, Y: 1.2}, {X: 3, Y: -2}}
	for i, s := range F.Series {
		if len(s.Points) != 1 || s.Points[0] != want[i] {
			Te.Errorf("series %s points %v, want [%v]", s.Label, s.Points, want[i])
		}
	}
	ch, _ = Lookup("end_3D")
	F, err = Overlay([]Source{A, B}, ch, lowRes())
	if err != nil {
		Te.Fatal(err)
	}
	for _, s := range F.Series {
		if len(s.Points) != 1 || len(s.Data) != 3 || len(s.Data[0]) != 1 {
			Te.Errorf("series %s: %d points, data %v", s.Label, len(s.Points), s.Data)
		}
	}
}

func TestThreeD(Te *testing.T) {
	srcs := []Source{trajectory("A", 10, 0), trajectory("B", 10, 5)}
	for _, code := range []string{"xyz", "3D"} {
		ch, _ := Lookup(code)
		F, err := Overlay(srcs, ch, lowRes())
		if err != nil {
			Te.Fatal(err)
		}
		for _, s := range F.Series {
			for _, p := range s.Points {
				if math.Abs(p.X) > 1 || math.Abs(p.Y) > 1 {
					Te.Errorf("%s: point %v out of the unit cube", code, p)
				}
			}
		}
		if F.Plot().X.Label.Text != "" {
			Te.Errorf("%s: 3D chart with 2D axis labels", code)
		}
	}
}

func TestMissingField(Te *testing.T) {
	src := trajectory("A", 4, 0)
	delete(src.cols, c.Mach)
	st := lowRes()
	st.Save = true
	st.OutDir = Te.TempDir()
	ch, _ := Lookup("am")
	_, err := Overlay([]Source{trajectory("B", 4, 0), src}, ch, st)
	var ferr *FieldError
	if !errors.As(err, &ferr) {
		Te.Fatalf("expected a FieldError, got %v", err)
	}
	if ferr.Chart != "am" || ferr.Record != "A" || ferr.Field != c.Mach {
		Te.Errorf("unexpected field error %+v", ferr)
	}
	if entries, _ := os.ReadDir(st.OutDir); len(entries) != 0 {
		Te.Error("a file was written for a failed chart")
	}
}

func TestBadSeries(Te *testing.T) {
	ch, _ := Lookup("xt")
	empty := trajectory("E", 0, 0)
	var serr *SeriesError
	if _, err := Overlay([]Source{empty}, ch, lowRes()); !errors.As(err, &serr) || serr.Record != "E" {
		Te.Errorf("expected a SeriesError for an empty record, got %v", err)
	}
	nan := trajectory("N", 3, 0)
	nan.cols[c.XPosition][1] = math.NaN()
	if _, err := Overlay([]Source{nan}, ch, lowRes()); !errors.As(err, &serr) || serr.Record != "N" {
		Te.Errorf("expected a SeriesError for NaN data, got %v", err)
	}
	short := trajectory("S", 3, 0)
	short.cols[c.XPosition] = short.cols[c.XPosition][:2]
	if _, err := Overlay([]Source{short}, ch, lowRes()); !errors.As(err, &serr) {
		Te.Errorf("expected a SeriesError for columns of different length, got %v", err)
	}
	bad := Chart{Code: "bad", Kind: Line3D, Fields: []string{c.Time}}
	if _, err := Overlay([]Source{trajectory("A", 3, 0)}, bad, lowRes()); err == nil {
		Te.Error("ill-formed chart accepted")
	}
}

func TestEmptyOverlay(Te *testing.T) {
	for _, ch := range Catalog() {
		F, err := Overlay(nil, ch, lowRes())
		if err != nil {
			Te.Errorf("%s: %v", ch.Code, err)
			continue
		}
		if len(F.Series) != 0 || F.legendWidth() != 0 {
			Te.Errorf("%s: empty overlay with series or legend", ch.Code)
		}
	}
}

func TestSaveFiles(Te *testing.T) {
	dir := Te.TempDir()
	src := trajectory("A", 5, 0)
	before := append([]float64(nil), src.cols[c.Velocity]...)
	st := lowRes()
	st.Save = true
	st.OutDir = dir
	ch, _ := Lookup("av")
	if _, err := Single(src, ch, st); err != nil {
		Te.Fatal(err)
	}
	if _, err := Overlay([]Source{src}, ch, st); err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{"A_av.png", "combined_av.png"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			Te.Fatal(err)
		}
		if !bytes.HasPrefix(b, []byte("\x89PNG\r\n\x1a\n")) {
			Te.Errorf("%s is not a PNG file", name)
		}
	}
	//a second save replaces the file
	path := filepath.Join(dir, "combined_av.png")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		Te.Fatal(err)
	}
	if _, err := Overlay([]Source{src}, ch, st); err != nil {
		Te.Fatal(err)
	}
	if b, _ := os.ReadFile(path); bytes.Equal(b, []byte("stale")) {
		Te.Error("existing file not replaced")
	}
	for i, v := range src.cols[c.Velocity] {
		if v != before[i] {
			Te.Fatal("rendering modified the source data")
		}
	}
	//without saving, nothing new is written
	st.Save = false
	if _, err := Overlay([]Source{src}, mustLookup(Te, "mt"), st); err != nil {
		Te.Fatal(err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 2 {
		Te.Errorf("%d files in the output directory, want 2", len(entries))
	}
}

func TestWriteTo(Te *testing.T) {
	ch := mustLookup(Te, "xyz")
	F, err := Build([]Source{trajectory("A", 4, 0)}, ch, lowRes(), true)
	if err != nil {
		Te.Fatal(err)
	}
	var b bytes.Buffer
	n, err := F.WriteTo(&b)
	if err != nil {
		Te.Fatal(err)
	}
	if n != int64(b.Len()) || !bytes.HasPrefix(b.Bytes(), []byte("\x89PNG")) {
		Te.Errorf("WriteTo returned %d for %d bytes", n, b.Len())
	}
}

func mustLookup(Te *testing.T, code string) Chart {
	Te.Helper()
	ch, ok := Lookup(code)
	if !ok {
		Te.Fatalf("chart %s not in the catalog", code)
	}
	return ch
}

func TestLegendLayout(Te *testing.T) {
	st := lowRes()
	w, h := st.size()
	canvas := func() draw.Canvas {
		return draw.New(vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(st.dpi())))
	}
	ch := mustLookup(Te, "alt")
	F, err := Overlay([]Source{trajectory("A", 4, 0), trajectory("Longer name", 4, 1)}, ch, st)
	if err != nil {
		Te.Fatal(err)
	}
	cv := canvas()
	axes, strip, ok := F.layout(cv)
	if !ok {
		Te.Fatal("overlay without a legend strip")
	}
	near := func(a, b vg.Length) bool { return math.Abs(float64(a-b)) < 1e-9 }
	lw := F.legendWidth()
	if lw <= 0 || lw > w/2 {
		Te.Errorf("legend width %v for a %v wide figure", lw, w)
	}
	//the strip sits right of the axes, spanning the full height, and the legend hangs from its top
	if !near(axes.Min.X, cv.Min.X) || !near(axes.Max.X, strip.Min.X) || !near(strip.Max.X, cv.Max.X) {
		Te.Errorf("axes %v and legend strip %v do not split canvas %v", axes.Rectangle, strip.Rectangle, cv.Rectangle)
	}
	if !near(strip.Max.Y, cv.Max.Y) || !near(axes.Max.Y, cv.Max.Y) || !F.legend.Top || !F.legend.Left {
		Te.Error("legend not anchored at the top of its strip")
	}

	S, err := Single(trajectory("A", 4, 0), ch, st)
	if err != nil {
		Te.Fatal(err)
	}
	E, err := Overlay(nil, ch, st)
	if err != nil {
		Te.Fatal(err)
	}
	for name, G := range map[string]*Figure{"single": S, "empty": E} {
		cv := canvas()
		axes, _, ok := G.layout(cv)
		if ok || G.legendWidth() != 0 || axes.Rectangle != cv.Rectangle {
			Te.Errorf("%s chart reserves a legend strip", name)
		}
	}
}
