// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// CommandRegistry owns the name to adapter table. CommandService is the
// invocation path transports use: text parsing, throttling, dispatch and
// history recording.
package services
