package desktop

// Camera maps board pixels onto the framebuffer: the board is scaled to fit
// and centred, with letterboxing on the long axis.
type Camera struct {
	X, Y float64 // board-pixel point at the framebuffer centre
	Zoom float64 // framebuffer pixels per board pixel
}

func fitCamera(boardW, boardH, fbW, fbH int) Camera {
	cam := Camera{X: float64(boardW) / 2, Y: float64(boardH) / 2, Zoom: 1}
	if boardW <= 0 || boardH <= 0 || fbW <= 0 || fbH <= 0 {
		return cam
	}
	zx := float64(fbW) / float64(boardW)
	zy := float64(fbH) / float64(boardH)
	cam.Zoom = min(zx, zy)
	return cam
}
