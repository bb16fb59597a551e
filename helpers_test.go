package trajplot

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/yaulin/trajplot/columns"
)

//sampleRow returns a row with all the required columns, in native units and
//schema order, for time step i.
func sampleRow(i int) []float64 {
	f := float64(i)
	return []float64{
		f,              //TTIME_S
		1000 * (f + 1), //TRXI_M
		250 * f,        //TRYI_M
		-125 * f,       //TRZI_M
		0.5 * f,        //TGRNKM_KM
		10 + f,         //TALTKM_KM
		2000 * f,       //TDRNGE_M
		40 * f,         //TCRNGE_M
		300 + 10*f,     //TVRMAG_M/S
		9.81,           //TAIMAG_M/S2
		1 + f,          //TABXB_M/S2
		-2 * f,         //TABYB_M/S2
		0.25,           //TABZB_M/S2
		45 - f,         //TPITCH_DEG
		90 + f,         //THEADG_DEG
		0.9 + 0.1*f,    //TAMACH
	}
}

func sampleRows(n int) [][]float64 {
	ret := make([][]float64, n)
	for i := range ret {
		ret[i] = sampleRow(i)
	}
	return ret
}

func csvText(header []string, rows [][]float64) string {
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\n")
	for _, r := range rows {
		s := make([]string, len(r))
		for i, v := range r {
			s[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		b.WriteString(strings.Join(s, ","))
		b.WriteString("\n")
	}
	return b.String()
}

//writeRaw writes content to dir/name and returns the path.
func writeRaw(Te testing.TB, dir, name, content string) string {
	Te.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		Te.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		Te.Fatal(err)
	}
	return path
}

//writeFixture writes a trajectory file with the native header and the given rows.
func writeFixture(Te testing.TB, dir, name string, rows [][]float64) string {
	Te.Helper()
	return writeRaw(Te, dir, name, csvText(columns.NativeNames(), rows))
}
