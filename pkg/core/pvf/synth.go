package pvf

// AvTraj grows a pseudo-average trajectory from start by repeatedly
// interpolating the stored vectors of the trident enclosing the current
// point, per §4.D. It reports ok=false (CoverageFailure) when the trident it
// reaches at any step, the start trident included, is entirely unvisited;
// this is not an error.
func (m *Model) AvTraj(start Point) ([]Point, bool) {
	r := []Point{start}
	var length float64

	for {
		p := r[len(r)-1]

		t := findTrident(p, m.spacing)
		if !inRange(t, m.nx, m.ny) {
			return r, true
		}

		nodes := [3]nodeIndex{t.Left, t.Right, t.Center}
		var vecs [3]Point
		var visited [3]bool
		k := 0
		for i, n := range nodes {
			vecs[i] = m.grid.at(n)
			visited[i] = !vecs[i].IsZero()
			if visited[i] {
				k++
			}
		}

		var next Point
		switch k {
		case 0:
			return nil, false

		case 1:
			var vi int
			for i := range nodes {
				if visited[i] {
					vi = i
					break
				}
			}
			target := coordFromInd(nodes[vi], m.spacing).Add(vecs[vi])
			for _, n := range nodes {
				v := target.Sub(coordFromInd(n, m.spacing))
				m.grid.updateNode(v, n)
			}
			next = p.Add(target.Sub(coordFromInd(nodes[0], m.spacing)))

		case 2:
			var ai, bi, ei int
			found := 0
			for i := range nodes {
				if visited[i] {
					if found == 0 {
						ai = i
					} else {
						bi = i
					}
					found++
				} else {
					ei = i
				}
			}
			da := p.Distance(coordFromInd(nodes[ai], m.spacing))
			db := p.Distance(coordFromInd(nodes[bi], m.spacing))

			var wa, wb float64
			if m.StrictComplementaryWeights {
				sum := da + db
				wa = db / sum
				wb = da / sum
			} else {
				// Source behavior: weight by the node's own distance, so
				// the farther node gets more influence (see design note).
				sum := da + db
				wa = da / sum
				wb = db / sum
			}

			next = p.Add(vecs[ai].Scale(wa)).Add(vecs[bi].Scale(wb))
			ve := next.Sub(coordFromInd(nodes[ei], m.spacing))
			m.grid.updateNode(ve, nodes[ei])

		case 3:
			dL := p.Distance(coordFromInd(nodes[0], m.spacing))
			dR := p.Distance(coordFromInd(nodes[1], m.spacing))
			dC := p.Distance(coordFromInd(nodes[2], m.spacing))
			d := dL + dR + dC

			wL := (dC + dR - dL) / d
			wR := (dC + dL - dR) / d
			wC := (dL + dR - dC) / d

			next = p.Add(vecs[0].Scale(wL)).Add(vecs[1].Scale(wR)).Add(vecs[2].Scale(wC))
		}

		delta := next.Distance(p)
		newLength := length + delta

		if next == p {
			return r, true
		}
		if float64(len(r)) > float64(m.maxCoord)*1.5 {
			return r, true
		}
		if m.minSeg > delta*1.5 {
			return r, true
		}
		if newLength > m.avgLen {
			return r, true
		}

		length = newLength
		r = append(r, next)
	}
}
