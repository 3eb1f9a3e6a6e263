// Package curve provides the closed-form parametric curves traced by curve
// scenes.
//
// Each curve is a [Kind] with a fixed parameter arity. Evaluation is pure:
//
//	k, _ := curve.Parse("hypocycloid")
//	p := k.Eval([]float64{120, 40, 0.8}, progress)
//
// Points are returned in the curve's own coordinate space, centred on the
// origin; callers translate them onto their surface.
//
// A parameter list that is too short evaluates to NaN rather than failing,
// so a misconfigured curve degrades into an invisible stroke. Unknown curve
// names are rejected by [Parse] with [ErrUnknownCurve].
package curve
