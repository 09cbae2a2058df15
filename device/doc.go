// Package device provides the signal's hardware collaborators on top of
// periph.io: the PWM colour lamp, the buzzer, push buttons and the system
// reset, plus console stand-ins for running without hardware.
package device // import "github.com/DrJosh9000/trafficlight/device"
