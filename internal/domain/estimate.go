package domain

type Estimate struct {
	Games      int
	Score      float64
	Confidence float64

	EloDiff float64
	Lower   float64
	Upper   float64

	// LOS is the likelihood of superiority.
	LOS float64
}
