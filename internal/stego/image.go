package stego

// Image is the minimal collaborator the encoder and decoder orchestrators
// need: a mutable flat channel buffer of length W()*H()*4 and its
// dimensions. internal/raster.Image satisfies this by exposing its
// *image.NRGBA's Pix slice directly, so writes through EncodeBits mutate
// the image in place with no extra copy.
type Image interface {
	Pix() []byte
	W() int
	H() int
}
