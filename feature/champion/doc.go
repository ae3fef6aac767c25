// Package champion is the champion asset kind: the model, its stat scaling
// and the decoders for the source's champion payload and the simple shape.
package champion
