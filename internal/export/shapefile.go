package export

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"

	"github.com/sells-group/amsterdam-svi/pkg/amsterdam"
)

// WriteShapefile writes footprints as a POLYGON shapefile (.shp, .shx, .dbf)
// with a PAND_ID attribute. path must end in .shp.
func WriteShapefile(path string, polys amsterdam.Polygons) error {
	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		return eris.Wrapf(err, "export: create shapefile %s", path)
	}

	if err := writePolygons(w, polys); err != nil {
		w.Close()
		return err
	}
	w.Close()

	return fixDBFName(path)
}

func writePolygons(w *shp.Writer, polys amsterdam.Polygons) error {
	if err := w.SetFields([]shp.Field{shp.StringField("PAND_ID", 32)}); err != nil {
		return eris.Wrap(err, "export: shapefile fields")
	}

	for _, id := range sortedIDs(polys) {
		ring := polys[id]
		points := make([]shp.Point, 0, len(ring))
		for _, c := range ring {
			points = append(points, shp.Point{X: c.X(), Y: c.Y()})
		}
		poly := shp.Polygon(*shp.NewPolyLine([][]shp.Point{points}))
		row := w.Write(&poly)
		if err := w.WriteAttribute(int(row), 0, id); err != nil {
			return eris.Wrapf(err, "export: shapefile attribute %s", id)
		}
	}
	return nil
}

// fixDBFName moves go-shp's "<base>dbf" attribute table to "<base>.dbf" so
// readers (including shp.Open) find it next to the .shp.
func fixDBFName(path string) error {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	written := base + "dbf"
	if _, err := os.Stat(written); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return eris.Wrapf(err, "export: stat %s", written)
	}
	if err := os.Rename(written, base+".dbf"); err != nil {
		return eris.Wrap(err, "export: rename dbf")
	}
	return nil
}
