package pvf

// trajMetrics computes the shortest segment length, point count, and total
// path length of a trajectory. It is undefined for |traj| < 2; callers must
// guard (UpdateGrid does, via ErrShortTrajectory).
func trajMetrics(traj []Point) (shortest float64, count int, total float64) {
	count = len(traj)
	for i := 0; i < len(traj)-1; i++ {
		seg := traj[i+1].Distance(traj[i])
		total += seg
		if i == 0 || seg < shortest {
			shortest = seg
		}
	}
	return shortest, count, total
}
