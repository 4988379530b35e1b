// Package config manages the user-level configuration record stored at
// ~/.typst-templatr.yaml. The record names the library directory that holds
// the authoritative template copies. It is written wholesale by init and read
// by every other command; the library directory itself is never created here.
package config
