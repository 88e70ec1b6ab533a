// Package framer implements the scale-adaptive pixel compositing and
// effects engine behind the metadata frame styles: expanded canvases,
// diffuse drop shadows, rounded-corner glass panels, blurred aspect-fill
// backdrops and high-quality text rendering.
//
// The engine is purely in-process. It receives a decoded raster plus
// numeric geometry parameters and returns a composed raster or a typed
// error; decoding, EXIF resolution and final encoding belong to the
// surrounding packages (meta, assets, styles, batch).
//
// All effect parameters that scale with image size are expressed against a
// reference canvas dimension of 1000 px and rescaled at apply time, so one
// profile looks identical on a 600 px preview and a 60 MP original.
//
// Engine functions hold no shared mutable state: each photo owns its
// PixelBuffer, so distinct photos can be processed concurrently from the
// batch layer without locking.
package framer
