// Package meta resolves camera metadata into the clean shooting context
// the frame styles consume: a recognized brand, a display-ready model name
// and formatted shooting parameters. EXIF extraction lives here too, so
// the engine itself never touches files.
package meta
