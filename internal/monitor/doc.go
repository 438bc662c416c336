// Package monitor runs a live terminal chart of a metric stream on a
// background goroutine.
//
// A host computation, typically a training loop, calls Submit (or Tick) with
// one scalar per step. The values travel through a non-blocking queue to the
// render goroutine, which keeps the most recent samples in a sliding window
// and redraws the chart on a fixed cadence. The host is never blocked by the
// display and never sees an error from it.
//
// # Architecture
//
// The render goroutine owns a Bubble Tea program. Bubble Tea follows The Elm
// Architecture (Model-Update-View):
//
//   - Model: the sliding window, chart options, and shutdown state
//   - Update: drains the queue on every tick, reacts to key presses and resizes
//   - View: renders the current window with the chart package
//
// The window is only touched by the render goroutine. The host talks to it
// through the queue and, for out-of-band shutdown, one atomic flag.
//
// # Render Cycle
//
//  1. tickMsg fires every Interval (default 16ms)
//  2. every queued message is drained in send order; values go into the window
//  3. the stop flag and the monitor context are checked
//  4. View() redraws the chart; the next tick is scheduled
//
// Any key press ends the session.
//
// # Shutdown
//
// Close sends a shutdown sentinel through the same queue as the samples, then
// waits for the render goroutine to exit. Because the sentinel is queued
// behind every earlier sample, all of them reach the window first. Stop and
// context cancellation set a flag instead: they are coarser and may leave
// trailing samples undrained.
//
// Whatever ends the session (sentinel, key press, flag, context, or a render
// failure), Bubble Tea restores the terminal exactly once when its Run
// returns, before Close returns. Samples submitted after that are discarded.
//
//	m, err := monitor.New(ctx, monitor.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	defer m.Close()
//
//	for step := 0; step < steps; step++ {
//		m.Submit(train(step))
//	}
package monitor
