// Package speaker plays card tones on the local sound device. The oto
// backend needs cgo and the platform audio headers; build with -tags nosound
// to get a player that always reports the device as unavailable.
package speaker

import "errors"

// ErrNoDevice is returned by Open when the binary was built without sound.
var ErrNoDevice = errors.New("speaker: built without sound support")
