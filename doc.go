// Package trafficlight is the controller core of a road traffic signal.
//
// A single PhaseClock holds the phase, countdown and mode. Two tasks write
// it: the CountdownDriver, once a second, and the ModeController, on button
// presses. Three presenters read it on their own cadence and drive a lamp,
// a screen and a buzzer. Each presenter works from one Snapshot per cycle.
//
// Day cycle:
//
//	Green(9s) -> Yellow(3s) -> Red(6s) -> Green(9s) -> ...
//
// Night mode freezes the cycle; the lamp shows amber and the buzzer beats
// slowly. Leaving Night always restarts at Green.
package trafficlight // import "github.com/DrJosh9000/trafficlight"
