// Package panel holds the user-facing controllers mirroring the player state.
//
// Every panel has two paths. Update and ReceiveNotification apply state
// without sending anything; the remaining methods are user actions and send
// commands through the bus. Panels never reference each other.
package panel

import "errors"

// ErrDisabled is returned by user actions on a control that is disabled in
// the current play state.
var ErrDisabled = errors.New("control is disabled")
