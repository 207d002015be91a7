package readfiles

import (
	"bufio"
	"io"
	"strconv"

	"github.com/notargets/delaunayplot/mesh"
)

// WriteMesh writes m in the format read by ReadMesh, single spaced with no trailing whitespace
func WriteMesh(w io.Writer, m *mesh.Mesh) error {
	var (
		bw  = bufio.NewWriter(w)
		buf []byte
	)
	line := func(vals ...int) {
		buf = buf[:0]
		for i, v := range vals {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	line(m.NumPoints(), m.NumTriangles())
	for _, p := range m.Points {
		buf = buf[:0]
		buf = strconv.AppendFloat(buf, p.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Z, 'g', -1, 64)
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	for k, tri := range m.Triangles {
		nbrs := m.Neighbors[k]
		line(tri[0], tri[1], tri[2], nbrs[0], nbrs[1], nbrs[2])
	}
	return bw.Flush()
}
