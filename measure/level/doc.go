// Package level provides the decaying per-channel peak meter of the bass
// manager.
//
// The meter has two producers and one consumer. The audio goroutine calls
// [Meter.TryCapture] once per block for the input and once for the output
// side; it never waits: when the consumer holds the lock the capture is
// dropped. A monitor goroutine calls [Meter.Tick] (or [Meter.Run]) at a
// fixed rate, which decays the readable values and folds in the peaks
// captured since the previous tick. [Meter.Level] and [Meter.Snapshot]
// read the readable values without locking.
package level
